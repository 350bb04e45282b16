package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/google/uuid"
)

func newTestDashboardService() (*DashboardService, *fakeSaleRepo, *fakeExpenseRepo, *fakeCustomerRepo) {
	saleRepo := newFakeSaleRepo()
	expenseRepo := newFakeExpenseRepo()
	customerRepo := newFakeCustomerRepo()
	return NewDashboardService(saleRepo, expenseRepo, customerRepo), saleRepo, expenseRepo, customerRepo
}

func TestDashboardStatsToday(t *testing.T) {
	svc, saleRepo, expenseRepo, customerRepo := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()
	today := time.Now().Format(entity.DateLayout)

	saleRepo.Create(ctx, &entity.Sale{
		UserID: userID, Date: entity.Date(today), Product: "Soda",
		Quantity: 1, Price: dec("100"), Total: dec("100"),
	})
	expenseRepo.Create(ctx, &entity.Expense{
		UserID: userID, Date: entity.Date(today), Category: "Transport", Amount: dec("40"),
	})
	customerRepo.Create(ctx, &entity.Customer{UserID: userID, Name: "Wanjiku"})
	customerRepo.Create(ctx, &entity.Customer{UserID: userID, Name: "Otieno"})

	stats, err := svc.GetDashboardStats(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.TodaySales != 100 || stats.TodayExpenses != 40 || stats.TodayProfit != 60 {
		t.Fatalf("today = %v/%v/%v, want 100/40/60",
			stats.TodaySales, stats.TodayExpenses, stats.TodayProfit)
	}
	// Today falls inside both the month and year windows
	if stats.MonthSales != 100 || stats.MonthProfit != 60 {
		t.Fatalf("month = %v/%v, want 100/60", stats.MonthSales, stats.MonthProfit)
	}
	if stats.YearSales != 100 || stats.YearProfit != 60 {
		t.Fatalf("year = %v/%v, want 100/60", stats.YearSales, stats.YearProfit)
	}
	if stats.CustomerCount != 2 {
		t.Fatalf("customer count = %d, want 2", stats.CustomerCount)
	}
}

func TestDashboardStatsExcludesOtherYears(t *testing.T) {
	svc, saleRepo, _, _ := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()

	saleRepo.Create(ctx, &entity.Sale{
		UserID: userID, Date: "2000-06-15", Product: "Old sale",
		Quantity: 1, Price: dec("999"), Total: dec("999"),
	})

	stats, err := svc.GetDashboardStats(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.YearSales != 0 {
		t.Fatalf("year sales = %v, want 0 (ancient sale leaked into this year)", stats.YearSales)
	}
	if stats.TodaySales != 0 || stats.MonthSales != 0 {
		t.Fatalf("today/month = %v/%v, want 0/0", stats.TodaySales, stats.MonthSales)
	}
}

func TestDashboardRecentSalesLimitedToFive(t *testing.T) {
	svc, saleRepo, _, _ := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()
	today := time.Now().Format(entity.DateLayout)

	for i := 0; i < 6; i++ {
		saleRepo.Create(ctx, &entity.Sale{
			UserID: userID, Date: entity.Date(today), Product: fmt.Sprintf("Item %d", i),
			Quantity: 1, Price: dec("10"), Total: dec("10"),
		})
	}

	stats, err := svc.GetDashboardStats(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if len(stats.RecentSales) != 5 {
		t.Fatalf("recent sales = %d, want 5", len(stats.RecentSales))
	}
	// Newest entry first
	if stats.RecentSales[0].Product != "Item 5" {
		t.Fatalf("first recent sale = %q, want Item 5", stats.RecentSales[0].Product)
	}
}

func TestDashboardSalesTrend(t *testing.T) {
	svc, saleRepo, _, _ := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()
	today := time.Now().Format(entity.DateLayout)

	for _, total := range []string{"30", "70"} {
		saleRepo.Create(ctx, &entity.Sale{
			UserID: userID, Date: entity.Date(today), Product: "Soda",
			Quantity: 1, Price: dec(total), Total: dec(total),
		})
	}

	stats, err := svc.GetDashboardStats(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if len(stats.SalesTrend) != 1 {
		t.Fatalf("trend points = %d, want 1 (days without sales are not zero-filled)", len(stats.SalesTrend))
	}
	point := stats.SalesTrend[0]
	if point.Date != today || point.Amount != 100 {
		t.Fatalf("trend point = %s/%v, want %s/100", point.Date, point.Amount, today)
	}
}

func TestDashboardStatsScopedToUser(t *testing.T) {
	svc, saleRepo, _, customerRepo := newTestDashboardService()
	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	today := time.Now().Format(entity.DateLayout)

	saleRepo.Create(ctx, &entity.Sale{
		UserID: userB, Date: entity.Date(today), Product: "Soda",
		Quantity: 1, Price: dec("100"), Total: dec("100"),
	})
	customerRepo.Create(ctx, &entity.Customer{UserID: userB, Name: "Njeri"})

	stats, err := svc.GetDashboardStats(ctx, userA)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TodaySales != 0 || stats.CustomerCount != 0 || len(stats.RecentSales) != 0 {
		t.Fatalf("another user's books leaked into the dashboard: %+v", stats)
	}
}
