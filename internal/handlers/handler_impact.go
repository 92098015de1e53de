package handlers

import (
	"log/slog"
	"net/http"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/arogyamitram/am_backend/internal/dto"
	"github.com/arogyamitram/am_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// impactHandler handles HTTP requests for the impact dashboard and analytics.
type impactHandler struct {
	impactService portssvc.ImpactSvcFacade
}

// newImpactHandler creates a new impactHandler.
func newImpactHandler(is portssvc.ImpactSvcFacade) *impactHandler {
	return &impactHandler{impactService: is}
}

// registerImpactRoutes registers the impact dashboard routes. The snapshot is
// visible to every role; the distributions are an admin view.
func registerImpactRoutes(rg *gin.RouterGroup, impactService portssvc.ImpactSvcFacade) {
	h := newImpactHandler(impactService)

	rg.GET("/impact", h.getImpact)
	rg.GET("/analytics", middleware.RequireRole(domain.RoleAdmin), h.getAnalytics)
}

// getImpact godoc
// @Summary Impact dashboard snapshot
// @Description Returns the running redistribution totals plus derived dashboard figures.
// @Tags impact
// @Produce json
// @Success 200 {object} dto.ImpactResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /impact [get]
func (h *impactHandler) getImpact(c *gin.Context) {
	stats, err := h.impactService.GetImpactStats(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to load impact stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load impact stats"})
		return
	}
	c.JSON(http.StatusOK, dto.ToImpactResponse(stats))
}

// getAnalytics godoc
// @Summary Listing analytics
// @Description Returns status, category, and monthly-submission distributions recomputed from the listing table.
// @Tags impact
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics [get]
func (h *impactHandler) getAnalytics(c *gin.Context) {
	analytics, err := h.impactService.GetAnalytics(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(analytics))
}
