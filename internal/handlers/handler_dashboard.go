package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/middleware"
)

// dashboardHandler handles HTTP requests for dashboard statistics.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
	}
}

// registerDashboardRoutes registers the dashboard statistics routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns invoice counts scoped to the caller's role. Admin responses add staff and client totals; staff responses add per-currency earnings.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to compute dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
