package service

import (
	"context"
	"sort"
	"time"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/dukabook/dukabook-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory fakes for the repository interfaces. They keep everything in
// slices and reimplement the store's ordering rules so service tests run
// without a database.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) next() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeSaleRepo struct {
	clock fakeClock
	sales []entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{clock: fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = r.clock.next()
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id && r.sales[i].UserID == userID {
			s := r.sales[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	for i := range r.sales {
		if r.sales[i].ID == sale.ID {
			r.sales[i] = *sale
			return nil
		}
	}
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range r.sales {
		if r.sales[i].ID == id && r.sales[i].UserID == userID {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSaleRepo) byUser(userID uuid.UUID) []entity.Sale {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}

func (r *fakeSaleRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	sales := r.byUser(userID)
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Date != sales[j].Date {
			return sales[i].Date > sales[j].Date
		}
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
	total := int64(len(sales))

	params.Validate()
	offset := params.Offset()
	if offset >= len(sales) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(sales) {
		end = len(sales)
	}
	return sales[offset:end], total, nil
}

func (r *fakeSaleRepo) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]entity.Sale, error) {
	sales := r.byUser(userID)
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Date != sales[j].Date {
			return sales[i].Date > sales[j].Date
		}
		if !sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].CreatedAt.After(sales[j].CreatedAt)
		}
		return sales[i].ID.String() > sales[j].ID.String()
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

func (r *fakeSaleRepo) SumTotalByDate(_ context.Context, userID uuid.UUID, date string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range r.byUser(userID) {
		if string(s.Date) == date {
			sum = sum.Add(s.Total)
		}
	}
	return sum, nil
}

func (r *fakeSaleRepo) SumTotalByDateRange(_ context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range r.byUser(userID) {
		if d := string(s.Date); d >= from && d <= to {
			sum = sum.Add(s.Total)
		}
	}
	return sum, nil
}

func (r *fakeSaleRepo) CountByDateRange(_ context.Context, userID uuid.UUID, from, to string) (int64, error) {
	var count int64
	for _, s := range r.byUser(userID) {
		if d := string(s.Date); d >= from && d <= to {
			count++
		}
	}
	return count, nil
}

func (r *fakeSaleRepo) TrendByDateRange(_ context.Context, userID uuid.UUID, from, to string) ([]repository.SalesTrendPoint, error) {
	byDate := make(map[string]decimal.Decimal)
	for _, s := range r.byUser(userID) {
		if d := string(s.Date); d >= from && d <= to {
			byDate[d] = byDate[d].Add(s.Total)
		}
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	points := make([]repository.SalesTrendPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, repository.SalesTrendPoint{Date: entity.Date(d), Amount: byDate[d]})
	}
	return points, nil
}

func (r *fakeSaleRepo) ListDistinctDates(_ context.Context, userID uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{})
	var dates []string
	for _, s := range r.byUser(userID) {
		d := string(s.Date)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	return dates, nil
}

type fakeExpenseRepo struct {
	clock    fakeClock
	expenses []entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{clock: fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	expense.CreatedAt = r.clock.next()
	r.expenses = append(r.expenses, *expense)
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	for i := range r.expenses {
		if r.expenses[i].ID == id && r.expenses[i].UserID == userID {
			e := r.expenses[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	for i := range r.expenses {
		if r.expenses[i].ID == expense.ID {
			r.expenses[i] = *expense
			return nil
		}
	}
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range r.expenses {
		if r.expenses[i].ID == id && r.expenses[i].UserID == userID {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeExpenseRepo) byUser(userID uuid.UUID) []entity.Expense {
	var out []entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (r *fakeExpenseRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Expense, int64, error) {
	expenses := r.byUser(userID)
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date != expenses[j].Date {
			return expenses[i].Date > expenses[j].Date
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	total := int64(len(expenses))

	params.Validate()
	offset := params.Offset()
	if offset >= len(expenses) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(expenses) {
		end = len(expenses)
	}
	return expenses[offset:end], total, nil
}

func (r *fakeExpenseRepo) SumAmountByDate(_ context.Context, userID uuid.UUID, date string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.byUser(userID) {
		if string(e.Date) == date {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *fakeExpenseRepo) SumAmountByDateRange(_ context.Context, userID uuid.UUID, from, to string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.byUser(userID) {
		if d := string(e.Date); d >= from && d <= to {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *fakeExpenseRepo) CountByDateRange(_ context.Context, userID uuid.UUID, from, to string) (int64, error) {
	var count int64
	for _, e := range r.byUser(userID) {
		if d := string(e.Date); d >= from && d <= to {
			count++
		}
	}
	return count, nil
}

func (r *fakeExpenseRepo) ListDistinctDates(_ context.Context, userID uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{})
	var dates []string
	for _, e := range r.byUser(userID) {
		d := string(e.Date)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	return dates, nil
}

type fakeSummaryRepo struct {
	rows []entity.DailySummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{}
}

func (r *fakeSummaryRepo) Create(_ context.Context, summary *entity.DailySummary) error {
	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	summary.UpdatedAt = time.Now()
	r.rows = append(r.rows, *summary)
	return nil
}

func (r *fakeSummaryRepo) Update(_ context.Context, summary *entity.DailySummary) error {
	for i := range r.rows {
		if r.rows[i].ID == summary.ID {
			summary.UpdatedAt = time.Now()
			r.rows[i] = *summary
			return nil
		}
	}
	return nil
}

func (r *fakeSummaryRepo) GetByDate(_ context.Context, userID uuid.UUID, date string) (*entity.DailySummary, error) {
	for i := range r.rows {
		if r.rows[i].UserID == userID && string(r.rows[i].Date) == date {
			s := r.rows[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSummaryRepo) List(_ context.Context, userID uuid.UUID) ([]entity.DailySummary, error) {
	var out []entity.DailySummary
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

type fakeCustomerRepo struct {
	clock     fakeClock
	customers []entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{clock: fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = r.clock.next()
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id && r.customers[i].UserID == userID {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range r.customers {
		if r.customers[i].ID == id && r.customers[i].UserID == userID {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))

	params.Validate()
	offset := params.Offset()
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *fakeCustomerRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.customers {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}
