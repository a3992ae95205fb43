package models

// TradingJournal is a free-form journal note. The timestamps are TEXT
// columns holding ISO-8601 local time and are owned by the server: callers
// never set them, and created_at is immutable after insert.
type TradingJournal struct {
	ID        int64  `json:"id"         gorm:"primaryKey"`
	Type      string `json:"type"       binding:"required"`
	Title     string `json:"title"      binding:"required"`
	Content   string `json:"content"    binding:"required"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ProfitJournal is a structured trade record. All profit figures are
// caller-supplied and stored verbatim; the server never recomputes them.
// Required numerics are pointers so a legitimate zero (e.g. fee_rate 0)
// still passes presence validation.
type ProfitJournal struct {
	ID        int64    `json:"id"         gorm:"primaryKey"`
	Symbol    string   `json:"symbol"     binding:"required" gorm:"index"`
	BuyDate   string   `json:"buy_date"   binding:"required"`
	SellDate  *string  `json:"sell_date"`
	BuyPrice  *float64 `json:"buy_price"  binding:"required"`
	SellPrice *float64 `json:"sell_price"`
	Shares    *float64 `json:"shares"     binding:"required"`
	FeeRate   *float64 `json:"fee_rate"   binding:"required"`
	Note      *string  `json:"note"`
	BuyFee    *float64 `json:"buy_fee"`
	SellFee   *float64 `json:"sell_fee"`
	TotalFees *float64 `json:"total_fees"`
	NetProfit *float64 `json:"net_profit"`
	Profit    *float64 `json:"profit"`
	Status    string   `json:"status"     binding:"required"`
}

func (TradingJournal) TableName() string {
	return "trading_journals"
}

func (ProfitJournal) TableName() string {
	return "profit_journals"
}
