package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dukabook/dukabook-api/internal/application/service"
	"github.com/dukabook/dukabook-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportYear(c *gin.Context) (int, bool) {
	yearStr := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()))
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, "Invalid year")
		return 0, false
	}
	return year, true
}

// GetMonthly handles getting the monthly rollups for a year
func (h *ReportHandler) GetMonthly(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	year, ok := reportYear(c)
	if !ok {
		return
	}

	reports, err := h.reportService.GetMonthlyReports(c.Request.Context(), *userID, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly reports retrieved successfully", reports)
}

// ExportMonthly streams the year's monthly rollups as an XLSX workbook
func (h *ReportHandler) ExportMonthly(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	year, ok := reportYear(c)
	if !ok {
		return
	}

	data, err := h.reportService.ExportMonthlyReports(c.Request.Context(), *userID, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("monthly-report-%d.xlsx", year)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
