package handlers

import (
	"kampus-admin/internal/adapters/http/middleware"
	"kampus-admin/internal/core/domain"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the dashboard overview endpoint
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// GetOverview returns which dashboard modules the caller can see. The
// frontend renders its navigation from this instead of hardcoding flag
// names.
// @Summary Dashboard overview
// @Description Module visibility snapshot for the authenticated user
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	caps := identity.Capabilities

	return response.Success(c, "Dashboard overview retrieved successfully", fiber.Map{
		"email": identity.Email,
		"modules": fiber.Map{
			"customers":           caps.Has(domain.CapManageCustomers),
			"financial":           caps.Has(domain.CapManageFinancial),
			"collaboration_codes": caps.Has(domain.CapManageCodes),
			"collaboration_stats": caps.Has(domain.CapViewCollabStats),
			"access":              caps.Has(domain.CapManageAccess),
		},
	})
}
