package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a single sale entry in the ledger. Total is supplied
// by the caller and stored as-is; it is nominally quantity*price but the
// server does not enforce that (discounts and rounding are the user's
// business).
type Sale struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date         Date            `gorm:"type:date;not null;index" json:"date"`
	CustomerID   *uuid.UUID      `gorm:"type:uuid" json:"customer_id,omitempty"`
	CustomerName *string         `gorm:"size:255" json:"customer_name,omitempty"`
	Product      string          `gorm:"size:255;not null" json:"product"`
	Quantity     int             `gorm:"not null;default:1" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Total        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
