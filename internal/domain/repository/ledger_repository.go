package repository

import (
	"context"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTrendPoint is one (date, summed sales) pair of the dashboard
// trend series.
type SalesTrendPoint struct {
	Date   entity.Date     `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleRepository defines the interface for sale ledger operations.
// Ownership scoping follows CustomerRepository: by-id lookups return nil
// for both missing and foreign rows.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// List returns the user's sales ordered by date descending.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// ListRecent returns the most recently dated sales, ties broken by
	// created_at then id, all descending.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Sale, error)
	// SumTotalByDate sums Sale.Total for an exact date match; zero when
	// no rows.
	SumTotalByDate(ctx context.Context, userID uuid.UUID, date string) (decimal.Decimal, error)
	// SumTotalByDateRange sums Sale.Total over from..to inclusive.
	SumTotalByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error)
	// CountByDateRange counts sales over from..to inclusive.
	CountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (int64, error)
	// TrendByDateRange returns per-distinct-date sums over from..to
	// inclusive, ordered by date ascending. Dates without sales are absent.
	TrendByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]SalesTrendPoint, error)
	// ListDistinctDates returns every date that has at least one sale.
	ListDistinctDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ExpenseRepository defines the interface for expense ledger operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// List returns the user's expenses ordered by date descending.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Expense, int64, error)
	// SumAmountByDate sums Expense.Amount for an exact date match; zero
	// when no rows.
	SumAmountByDate(ctx context.Context, userID uuid.UUID, date string) (decimal.Decimal, error)
	// SumAmountByDateRange sums Expense.Amount over from..to inclusive.
	SumAmountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error)
	// CountByDateRange counts expenses over from..to inclusive.
	CountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (int64, error)
	// ListDistinctDates returns every date that has at least one expense.
	ListDistinctDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}
