package repository

import (
	"context"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/google/uuid"
)

// DailySummaryRepository defines the interface for the derived per-day
// rollup table. Rows are only written by the summary synchronizer.
type DailySummaryRepository interface {
	Create(ctx context.Context, summary *entity.DailySummary) error
	Update(ctx context.Context, summary *entity.DailySummary) error
	// GetByDate returns the summary row for (user, date), nil when absent.
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailySummary, error)
	// List returns all summary rows for the user ordered by date descending.
	List(ctx context.Context, userID uuid.UUID) ([]entity.DailySummary, error)
}
