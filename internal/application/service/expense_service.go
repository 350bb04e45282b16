package service

import (
	"context"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/dukabook/dukabook-api/pkg/apperror"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense ledger operations. Like SaleService,
// every mutation resyncs the daily summary for the dates it touched.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	summarySvc  *SummaryService
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, summarySvc *SummaryService) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, summarySvc: summarySvc}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Date        string
	Category    string
	Description *string
	Amount      decimal.Decimal
}

// CreateExpense records an expense and resyncs its day's summary
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		UserID:      input.UserID,
		Date:        entity.Date(input.Date),
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if _, err := s.summarySvc.Sync(ctx, input.UserID, string(expense.Date)); err != nil {
		return nil, err
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists the user's expenses, most recent date first
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ID          uuid.UUID
	Date        *string
	Category    *string
	Description *string
	Amount      *decimal.Decimal
}

// UpdateExpense updates an expense and resyncs every day it touched,
// including the old day when the date moves
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	oldDate := expense.Date

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		expense.Date = entity.Date(*input.Date)
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = input.Description
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	if _, err := s.summarySvc.Sync(ctx, input.UserID, string(expense.Date)); err != nil {
		return nil, err
	}
	if oldDate != expense.Date {
		if _, err := s.summarySvc.Sync(ctx, input.UserID, string(oldDate)); err != nil {
			return nil, err
		}
	}

	return expense, nil
}

// DeleteExpense deletes an expense and resyncs its day's summary.
// Deleting an absent or foreign id is a no-op.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if expense == nil {
		return nil
	}

	if err := s.expenseRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	_, err = s.summarySvc.Sync(ctx, userID, string(expense.Date))
	return err
}
