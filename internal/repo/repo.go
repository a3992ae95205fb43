package repo

import (
	"errors"

	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"gorm.io/gorm"
)

var ErrNilDatabase = errors.New("database cannot be nil")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	return &Repository{db: db}, nil
}

// Migrate ensures both journal tables exist. Safe to run on every start.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.TradingJournal{},
		&models.ProfitJournal{},
	)
}
