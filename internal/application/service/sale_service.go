package service

import (
	"context"
	"time"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/dukabook/dukabook-api/pkg/apperror"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleService handles sale ledger operations. Every mutation finishes by
// resyncing the daily summary for the dates it touched.
type SaleService struct {
	saleRepo   repository.SaleRepository
	summarySvc *SummaryService
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, summarySvc *SummaryService) *SaleService {
	return &SaleService{saleRepo: saleRepo, summarySvc: summarySvc}
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return apperror.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return nil
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID       uuid.UUID
	Date         string
	CustomerID   *uuid.UUID
	CustomerName *string
	Product      string
	Quantity     int
	Price        decimal.Decimal
	Total        *decimal.Decimal
}

// CreateSale records a sale and resyncs its day's summary. Total defaults
// to quantity*price when the caller omits it, but a supplied total is
// stored as-is.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	total := input.Price.Mul(decimal.NewFromInt(int64(quantity)))
	if input.Total != nil {
		total = *input.Total
	}

	sale := &entity.Sale{
		UserID:       input.UserID,
		Date:         entity.Date(input.Date),
		CustomerID:   input.CustomerID,
		CustomerName: input.CustomerName,
		Product:      input.Product,
		Quantity:     quantity,
		Price:        input.Price,
		Total:        total,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if _, err := s.summarySvc.Sync(ctx, input.UserID, string(sale.Date)); err != nil {
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, userID, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists the user's sales, most recent date first
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// UpdateSaleInput represents the update sale input
type UpdateSaleInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	Date         *string
	CustomerID   *uuid.UUID
	CustomerName *string
	Product      *string
	Quantity     *int
	Price        *decimal.Decimal
	Total        *decimal.Decimal
}

// UpdateSale updates a sale and resyncs every day it touched. When the
// date moves, the old day is resynced too so its totals drop the moved
// entry.
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	oldDate := sale.Date

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		sale.Date = entity.Date(*input.Date)
	}
	if input.CustomerID != nil {
		sale.CustomerID = input.CustomerID
	}
	if input.CustomerName != nil {
		sale.CustomerName = input.CustomerName
	}
	if input.Product != nil {
		sale.Product = *input.Product
	}
	if input.Quantity != nil {
		sale.Quantity = *input.Quantity
	}
	if input.Price != nil {
		sale.Price = *input.Price
	}
	if input.Total != nil {
		sale.Total = *input.Total
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	if _, err := s.summarySvc.Sync(ctx, input.UserID, string(sale.Date)); err != nil {
		return nil, err
	}
	if oldDate != sale.Date {
		if _, err := s.summarySvc.Sync(ctx, input.UserID, string(oldDate)); err != nil {
			return nil, err
		}
	}

	return sale, nil
}

// DeleteSale deletes a sale and resyncs its day's summary. Deleting an
// absent or foreign id is a no-op.
func (s *SaleService) DeleteSale(ctx context.Context, userID, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if sale == nil {
		return nil
	}

	if err := s.saleRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	_, err = s.summarySvc.Sync(ctx, userID, string(sale.Date))
	return err
}
