package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "onboard/internal/errors"
	"onboard/internal/model"
	"onboard/internal/service"
)

// AdminHandler handles broker administration endpoints. The router guards
// every route here with the ADMIN role.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateBrokerRequest represents an admin broker-creation request. This is
// the only path where a role may be assigned; it defaults to BROKER.
type CreateBrokerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GSTIN    string `json:"gstin" validate:"required,gstin"`
	Password string `json:"password" validate:"required,min=8,password"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN BROKER"`
}

// UpdateBrokerRequest represents an admin broker-update request.
type UpdateBrokerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	GSTIN string `json:"gstin" validate:"required,gstin"`
}

// CreateBroker godoc
// @Summary Create a broker
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBrokerRequest true "Broker data"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /admin/brokers [post]
func (h *AdminHandler) CreateBroker(c echo.Context) error {
	var req CreateBrokerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := service.BrokerInput{
		Name:     req.Name,
		Email:    req.Email,
		GSTIN:    req.GSTIN,
		Password: req.Password,
		Role:     model.Role(req.Role),
	}
	broker, err := h.adminService.CreateBroker(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, broker)
}

// ListBrokers godoc
// @Summary List all brokers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /admin/brokers [get]
func (h *AdminHandler) ListBrokers(c echo.Context) error {
	brokers, err := h.adminService.ListBrokers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brokers)
}

// ListUsers godoc
// @Summary List all users with their customers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateBroker godoc
// @Summary Update a broker
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Broker ID"
// @Param request body UpdateBrokerRequest true "Broker data"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/brokers/{id} [put]
func (h *AdminHandler) UpdateBroker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrBrokerNotFound
	}

	var req UpdateBrokerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := service.BrokerInput{Name: req.Name, Email: req.Email, GSTIN: req.GSTIN}
	broker, err := h.adminService.UpdateBroker(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, broker)
}

// DeleteBroker godoc
// @Summary Delete a broker and its customers
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Broker ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/brokers/{id} [delete]
func (h *AdminHandler) DeleteBroker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrBrokerNotFound
	}

	if err := h.adminService.DeleteBroker(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
