package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense entry in the ledger. Category is
// free text; the UI suggests a fixed list but the server accepts any
// string.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	Category    string          `gorm:"size:255;not null" json:"category"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
