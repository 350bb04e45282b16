package service

import (
	"context"
	"time"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/google/uuid"
)

// DashboardService provides dashboard statistics. Figures are always
// recomputed live from the ledgers, never read from the summary table,
// so a stale rollup can never surface here.
type DashboardService struct {
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	customerRepo repository.CustomerRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		customerRepo: customerRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TodaySales    float64          `json:"today_sales"`
	TodayExpenses float64          `json:"today_expenses"`
	TodayProfit   float64          `json:"today_profit"`
	MonthSales    float64          `json:"month_sales"`
	MonthExpenses float64          `json:"month_expenses"`
	MonthProfit   float64          `json:"month_profit"`
	YearSales     float64          `json:"year_sales"`
	YearExpenses  float64          `json:"year_expenses"`
	YearProfit    float64          `json:"year_profit"`
	CustomerCount int64            `json:"customer_count"`
	RecentSales   []entity.Sale    `json:"recent_sales"`
	SalesTrend    []SalesTrendItem `json:"sales_trend"`
}

// SalesTrendItem is one point of the month-to-date sales series. Days
// without sales are absent rather than zero-filled.
type SalesTrendItem struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// GetDashboardStats returns dashboard statistics for the user's books.
// Windows: today is the current date; month is the full calendar month;
// year runs from January 1st through today. The trend covers the month
// to date.
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	now := time.Now()
	today := now.Format(entity.DateLayout)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{}

	todaySales, err := s.saleRepo.SumTotalByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	todayExpenses, err := s.expenseRepo.SumAmountByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	stats.TodaySales = todaySales.InexactFloat64()
	stats.TodayExpenses = todayExpenses.InexactFloat64()
	stats.TodayProfit = todaySales.Sub(todayExpenses).InexactFloat64()

	monthSales, err := s.saleRepo.SumTotalByDateRange(ctx, userID,
		monthStart.Format(entity.DateLayout), monthEnd.Format(entity.DateLayout))
	if err != nil {
		return nil, err
	}
	monthExpenses, err := s.expenseRepo.SumAmountByDateRange(ctx, userID,
		monthStart.Format(entity.DateLayout), monthEnd.Format(entity.DateLayout))
	if err != nil {
		return nil, err
	}
	stats.MonthSales = monthSales.InexactFloat64()
	stats.MonthExpenses = monthExpenses.InexactFloat64()
	stats.MonthProfit = monthSales.Sub(monthExpenses).InexactFloat64()

	yearSales, err := s.saleRepo.SumTotalByDateRange(ctx, userID,
		yearStart.Format(entity.DateLayout), today)
	if err != nil {
		return nil, err
	}
	yearExpenses, err := s.expenseRepo.SumAmountByDateRange(ctx, userID,
		yearStart.Format(entity.DateLayout), today)
	if err != nil {
		return nil, err
	}
	stats.YearSales = yearSales.InexactFloat64()
	stats.YearExpenses = yearExpenses.InexactFloat64()
	stats.YearProfit = yearSales.Sub(yearExpenses).InexactFloat64()

	customerCount, err := s.customerRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.CustomerCount = customerCount

	recentSales, err := s.saleRepo.ListRecent(ctx, userID, 5)
	if err != nil {
		return nil, err
	}
	stats.RecentSales = recentSales

	trend, err := s.saleRepo.TrendByDateRange(ctx, userID,
		monthStart.Format(entity.DateLayout), today)
	if err != nil {
		return nil, err
	}
	stats.SalesTrend = make([]SalesTrendItem, 0, len(trend))
	for _, p := range trend {
		stats.SalesTrend = append(stats.SalesTrend, SalesTrendItem{
			Date:   string(p.Date),
			Amount: p.Amount.InexactFloat64(),
		})
	}

	return stats, nil
}
