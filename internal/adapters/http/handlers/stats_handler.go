package handlers

import (
	"kampus-admin/internal/core/services"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles revenue statistics endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetFinancialStats handles financial statistics
// @Summary Financial statistics
// @Description Revenue, customer count, and averages per day, week, month, year, and all time (requires manage financial)
// @Tags Stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /financial/stats [get]
func (h *StatsHandler) GetFinancialStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetFinancialStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute financial statistics")
	}

	return response.Success(c, "Financial statistics retrieved successfully", stats)
}

// GetCustomerRevenue handles the per-customer revenue ledger
// @Summary Customer revenue ledger
// @Description Per-customer revenue sorted by descending revenue (requires manage financial)
// @Tags Stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /financial/customer-revenue [get]
func (h *StatsHandler) GetCustomerRevenue(c *fiber.Ctx) error {
	ledger, err := h.statsService.GetCustomerRevenue(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute customer revenue")
	}

	return response.Success(c, "Customer revenue retrieved successfully", fiber.Map{
		"customers": ledger,
	})
}

// GetCollaborationStats handles per-code statistics
// @Summary Collaboration code statistics
// @Description Customer count and revenue per active collaboration code, plus customers without a code (requires view collaboration stats)
// @Tags Stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /collaboration-stats [get]
func (h *StatsHandler) GetCollaborationStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetCollaborationStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute collaboration statistics")
	}

	return response.Success(c, "Collaboration statistics retrieved successfully", stats)
}
