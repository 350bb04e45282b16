package repository

import (
	"context"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations.
// All lookups are scoped by the owning user: GetByID returns nil both
// when the id does not exist and when it belongs to another user, so
// callers cannot distinguish the two.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// List returns the user's customers ordered by creation time descending.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// CountByUser returns the number of customers the user has, unscoped by date.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
