package service

import (
	"context"
	"sort"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/google/uuid"
)

// SummaryService keeps the daily_summaries rollup in step with the sales
// and expenses ledgers. Every ledger mutation calls Sync for the dates it
// touched before the mutation is reported back to the client.
type SummaryService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	summaryRepo repository.DailySummaryRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	summaryRepo repository.DailySummaryRepository,
) *SummaryService {
	return &SummaryService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		summaryRepo: summaryRepo,
	}
}

// Sync recomputes the summary row for (user, date) from the ledgers and
// upserts it. Totals always come from full sums, never from deltas, so
// the operation is idempotent. A day whose last entry was removed keeps
// its row with zeroed totals.
func (s *SummaryService) Sync(ctx context.Context, userID uuid.UUID, date string) (*entity.DailySummary, error) {
	totalSales, err := s.saleRepo.SumTotalByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.SumAmountByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	balance := totalSales.Sub(totalExpenses)

	summary, err := s.summaryRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if summary == nil {
		summary = &entity.DailySummary{
			UserID:        userID,
			Date:          entity.Date(date),
			TotalSales:    totalSales,
			TotalExpenses: totalExpenses,
			Balance:       balance,
		}
		if err := s.summaryRepo.Create(ctx, summary); err != nil {
			return nil, err
		}
		return summary, nil
	}

	summary.TotalSales = totalSales
	summary.TotalExpenses = totalExpenses
	summary.Balance = balance
	if err := s.summaryRepo.Update(ctx, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// SyncAll rebuilds a summary row for every date that has at least one
// sale or expense. Days with rows but no remaining ledger entries are
// left untouched.
func (s *SummaryService) SyncAll(ctx context.Context, userID uuid.UUID) error {
	saleDates, err := s.saleRepo.ListDistinctDates(ctx, userID)
	if err != nil {
		return err
	}

	expenseDates, err := s.expenseRepo.ListDistinctDates(ctx, userID)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(saleDates)+len(expenseDates))
	dates := make([]string, 0, len(saleDates)+len(expenseDates))
	for _, d := range append(saleDates, expenseDates...) {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		if _, err := s.Sync(ctx, userID, date); err != nil {
			return err
		}
	}

	return nil
}

// ListSummaries returns the user's summary rows, date descending. When
// the table is empty but the ledgers are not (books imported before the
// rollup existed), it backfills via SyncAll first.
func (s *SummaryService) ListSummaries(ctx context.Context, userID uuid.UUID) ([]entity.DailySummary, error) {
	summaries, err := s.summaryRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(summaries) > 0 {
		return summaries, nil
	}

	if err := s.SyncAll(ctx, userID); err != nil {
		return nil, err
	}

	return s.summaryRepo.List(ctx, userID)
}
