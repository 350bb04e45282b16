package repository

import (
	"context"
	"errors"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	domainRepo "github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *expenseRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) SumAmountByDate(ctx context.Context, userID uuid.UUID, date string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = ? AND date = ?
	`, userID, date).Scan(&sum).Error
	return sum, err
}

func (r *expenseRepository) SumAmountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = ? AND date BETWEEN ? AND ?
	`, userID, from, to).Scan(&sum).Error
	return sum, err
}

func (r *expenseRepository) CountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *expenseRepository) ListDistinctDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var dates []entity.Date
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Distinct("date").
		Where("user_id = ?", userID).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, string(d))
	}
	return out, nil
}
