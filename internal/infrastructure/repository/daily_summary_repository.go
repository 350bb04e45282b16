package repository

import (
	"context"
	"errors"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	domainRepo "github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dailySummaryRepository struct {
	db *gorm.DB
}

// NewDailySummaryRepository creates a new daily summary repository
func NewDailySummaryRepository(db *gorm.DB) domainRepo.DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

func (r *dailySummaryRepository) Create(ctx context.Context, summary *entity.DailySummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *dailySummaryRepository) Update(ctx context.Context, summary *entity.DailySummary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

func (r *dailySummaryRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailySummary, error) {
	var summary entity.DailySummary
	err := r.db.WithContext(ctx).First(&summary, "user_id = ? AND date = ?", userID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &summary, err
}

func (r *dailySummaryRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.DailySummary, error) {
	var summaries []entity.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&summaries).Error
	return summaries, err
}
