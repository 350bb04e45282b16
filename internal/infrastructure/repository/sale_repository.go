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

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *saleRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) SumTotalByDate(ctx context.Context, userID uuid.UUID, date string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE user_id = ? AND date = ?
	`, userID, date).Scan(&sum).Error
	return sum, err
}

func (r *saleRepository) SumTotalByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE user_id = ? AND date BETWEEN ? AND ?
	`, userID, from, to).Scan(&sum).Error
	return sum, err
}

func (r *saleRepository) CountByDateRange(ctx context.Context, userID uuid.UUID, from, to string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *saleRepository) TrendByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domainRepo.SalesTrendPoint, error) {
	var points []domainRepo.SalesTrendPoint
	err := r.db.WithContext(ctx).Raw(`
		SELECT date, COALESCE(SUM(total), 0) as amount
		FROM sales
		WHERE user_id = ? AND date BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date ASC
	`, userID, from, to).Scan(&points).Error
	return points, err
}

func (r *saleRepository) ListDistinctDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var dates []entity.Date
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
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
