package repo

import (
	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"github.com/pkg/errors"
)

// GetAllTradingJournals returns every journal, newest created_at first.
// The slice is never nil so an empty table serializes as [].
func (r *Repository) GetAllTradingJournals() ([]models.TradingJournal, error) {
	journals := []models.TradingJournal{}
	if err := r.db.Order("created_at DESC").Find(&journals).Error; err != nil {
		return nil, errors.Wrap(err, "list trading journals")
	}
	return journals, nil
}

func (r *Repository) CreateTradingJournal(journal *models.TradingJournal) error {
	return errors.Wrap(r.db.Create(journal).Error, "create trading journal")
}

// UpdateTradingJournal overwrites the mutable columns of the row matching
// id. created_at is never touched. A zero-row match is not an error; the
// statement is unconditional by contract.
func (r *Repository) UpdateTradingJournal(id int64, journal *models.TradingJournal) error {
	err := r.db.Model(&models.TradingJournal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"type":       journal.Type,
		"title":      journal.Title,
		"content":    journal.Content,
		"updated_at": journal.UpdatedAt,
	}).Error
	return errors.Wrap(err, "update trading journal")
}

// DeleteTradingJournal removes the row matching id. Deleting an absent id
// succeeds the same as deleting a real one.
func (r *Repository) DeleteTradingJournal(id int64) error {
	return errors.Wrap(r.db.Delete(&models.TradingJournal{}, id).Error, "delete trading journal")
}
