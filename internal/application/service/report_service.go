package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dukabook/dukabook-api/internal/domain/entity"
	"github.com/dukabook/dukabook-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ReportService builds monthly rollup reports from the ledgers
type ReportService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// MonthlyReport is one month's rollup: total sales, total expenses,
// profit, and the number of ledger entries in the month
type MonthlyReport struct {
	Month            string  `json:"month"`
	TotalSales       float64 `json:"total_sales"`
	TotalExpenses    float64 `json:"total_expenses"`
	Profit           float64 `json:"profit"`
	TransactionCount int64   `json:"transaction_count"`
}

// GetMonthlyReports returns one report per month of the given year,
// January first. Months with no activity report zeroes.
func (s *ReportService) GetMonthlyReports(ctx context.Context, userID uuid.UUID, year int) ([]MonthlyReport, error) {
	reports := make([]MonthlyReport, 0, 12)

	for month := time.January; month <= time.December; month++ {
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		fromStr := from.Format(entity.DateLayout)
		toStr := to.Format(entity.DateLayout)

		sales, err := s.saleRepo.SumTotalByDateRange(ctx, userID, fromStr, toStr)
		if err != nil {
			return nil, err
		}
		expenses, err := s.expenseRepo.SumAmountByDateRange(ctx, userID, fromStr, toStr)
		if err != nil {
			return nil, err
		}
		saleCount, err := s.saleRepo.CountByDateRange(ctx, userID, fromStr, toStr)
		if err != nil {
			return nil, err
		}
		expenseCount, err := s.expenseRepo.CountByDateRange(ctx, userID, fromStr, toStr)
		if err != nil {
			return nil, err
		}

		reports = append(reports, MonthlyReport{
			Month:            from.Format("2006-01"),
			TotalSales:       sales.InexactFloat64(),
			TotalExpenses:    expenses.InexactFloat64(),
			Profit:           sales.Sub(expenses).InexactFloat64(),
			TransactionCount: saleCount + expenseCount,
		})
	}

	return reports, nil
}

// ExportMonthlyReports renders the year's monthly reports as an XLSX
// workbook and returns its bytes
func (s *ReportService) ExportMonthlyReports(ctx context.Context, userID uuid.UUID, year int) ([]byte, error) {
	reports, err := s.GetMonthlyReports(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Monthly Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Month", "Total Sales", "Total Expenses", "Profit", "Transactions"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return nil, err
	}

	for i, r := range reports {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Month); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.TotalSales); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.TotalExpenses); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Profit); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.TransactionCount); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
