package repo

import (
	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"github.com/pkg/errors"
)

// GetAllProfitJournals returns every trade record, newest buy_date first.
func (r *Repository) GetAllProfitJournals() ([]models.ProfitJournal, error) {
	journals := []models.ProfitJournal{}
	if err := r.db.Order("buy_date DESC").Find(&journals).Error; err != nil {
		return nil, errors.Wrap(err, "list profit journals")
	}
	return journals, nil
}

func (r *Repository) CreateProfitJournal(journal *models.ProfitJournal) error {
	return errors.Wrap(r.db.Create(journal).Error, "create profit journal")
}

// UpdateProfitJournal replaces every mutable column of the row matching id.
// The column map (rather than a struct update) guarantees omitted optional
// fields overwrite the stored value with NULL instead of being skipped as
// zero values. Match count is not inspected.
func (r *Repository) UpdateProfitJournal(id int64, journal *models.ProfitJournal) error {
	err := r.db.Model(&models.ProfitJournal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"symbol":     journal.Symbol,
		"buy_date":   journal.BuyDate,
		"sell_date":  journal.SellDate,
		"buy_price":  journal.BuyPrice,
		"sell_price": journal.SellPrice,
		"shares":     journal.Shares,
		"fee_rate":   journal.FeeRate,
		"note":       journal.Note,
		"buy_fee":    journal.BuyFee,
		"sell_fee":   journal.SellFee,
		"total_fees": journal.TotalFees,
		"net_profit": journal.NetProfit,
		"profit":     journal.Profit,
		"status":     journal.Status,
	}).Error
	return errors.Wrap(err, "update profit journal")
}

func (r *Repository) DeleteProfitJournal(id int64) error {
	return errors.Wrap(r.db.Delete(&models.ProfitJournal{}, id).Error, "delete profit journal")
}
