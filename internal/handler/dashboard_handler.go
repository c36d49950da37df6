package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"onboard/internal/middleware"
	"onboard/internal/service"
)

// DashboardHandler handles aggregate read endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Broker godoc
// @Summary Dashboard scoped to the acting broker
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.BrokerDashboard
// @Router /dashboard [get]
func (h *DashboardHandler) Broker(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	dashboard, err := h.dashboardService.ForBroker(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// Admin godoc
// @Summary Global dashboard (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminDashboard
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	dashboard, err := h.dashboardService.ForAdmin(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
