package handler

import (
	"github.com/dukabook/dukabook-api/internal/application/service"
	"github.com/dukabook/dukabook-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	summaryService   *service.SummaryService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, summaryService *service.SummaryService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		summaryService:   summaryService,
	}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// ListDailySummaries handles listing the per-day rollups, newest first
func (h *DashboardHandler) ListDailySummaries(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	summaries, err := h.summaryService.ListSummaries(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summaries retrieved successfully", summaries)
}
