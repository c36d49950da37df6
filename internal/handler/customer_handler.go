package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "onboard/internal/errors"
	"onboard/internal/middleware"
	"onboard/internal/service"
)

// CustomerHandler handles customer CRUD endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomerRequest represents a customer creation request. broker_id is
// only meaningful for admins, who must supply the owning broker explicitly.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GSTIN    string `json:"gstin" validate:"required,gstin"`
	BrokerID string `json:"broker_id" validate:"omitempty,uuid"`
}

// UpdateCustomerRequest represents a customer update request.
type UpdateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	GSTIN string `json:"gstin" validate:"required,gstin"`
}

// Create godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCustomerRequest true "Customer data"
// @Success 201 {object} model.Customer
// @Failure 400 {object} map[string]interface{}
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var brokerID *uuid.UUID
	if req.BrokerID != "" {
		id, err := uuid.Parse(req.BrokerID)
		if err != nil {
			return apperrors.ErrInvalidBroker
		}
		brokerID = &id
	}

	in := service.CustomerInput{Name: req.Name, Email: req.Email, GSTIN: req.GSTIN}
	customer, err := h.customerService.Create(c.Request().Context(), claims.UserID, claims.Role, in, brokerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// List godoc
// @Summary List the acting broker's customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Customer
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	customers, err := h.customerService.ListForBroker(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// ListAll godoc
// @Summary List all customers (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Customer
// @Failure 403 {object} map[string]string
// @Router /admin/customers [get]
func (h *CustomerHandler) ListAll(c echo.Context) error {
	customers, err := h.customerService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Update godoc
// @Summary Update a customer (owner or admin)
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body UpdateCustomerRequest true "Customer data"
// @Success 200 {object} model.Customer
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrCustomerNotFound
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := service.CustomerInput{Name: req.Name, Email: req.Email, GSTIN: req.GSTIN}
	customer, err := h.customerService.Update(c.Request().Context(), claims.UserID, claims.Role, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer (owner or admin)
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrCustomerNotFound
	}

	if err := h.customerService.Delete(c.Request().Context(), claims.UserID, claims.Role, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
