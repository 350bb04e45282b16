package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySummary is the derived per-day rollup of the sales and expenses
// ledgers. At most one row exists per (user, date). It is a cache, not a
// source of truth: every field must be re-derivable by summing the
// ledger rows for that day, and rows are only ever written by the
// summary synchronizer.
type DailySummary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_summaries_user_date" json:"user_id"`
	Date          Date            `gorm:"type:date;not null;uniqueIndex:idx_daily_summaries_user_date" json:"date"`
	TotalSales    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_sales"`
	TotalExpenses decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_expenses"`
	Balance       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"balance"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new summary row
func (d *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailySummary model
func (DailySummary) TableName() string {
	return "daily_summaries"
}
