package handlers

import (
	"errors"
	"strconv"
	"strings"

	"kampus-admin/internal/core/services"
	"kampus-admin/internal/pkg/pagination"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles customer management endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers handles listing customers
// @Summary List customers
// @Description Get a paginated list of customers, newest first (requires manage customers)
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param includeDeleted query bool false "Include soft-deleted customers" default(false)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	includeDeleted, _ := strconv.ParseBool(c.Query("includeDeleted", "false"))

	input := &services.ListCustomersInput{
		IncludeDeleted: includeDeleted,
		Offset:         params.Offset,
		Limit:          params.Limit,
	}

	customers, total, err := h.customerService.ListCustomers(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list customers")
	}

	return response.Success(c, "Customers retrieved successfully",
		pagination.NewResponse(customers, params, total))
}

// GetCustomer handles getting a customer by ID
// @Summary Get customer by ID
// @Description Get a specific customer by ID (requires manage customers)
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid customer ID")
	}

	customer, err := h.customerService.GetCustomerByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to get customer")
	}

	return response.Success(c, "Customer retrieved successfully", fiber.Map{
		"customer": customer,
	})
}

// CreateCustomerRequest represents create customer request body
type CreateCustomerRequest struct {
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Grade        string  `json:"grade"`
	Camps        string  `json:"camps"`
	Prices       string  `json:"prices"`
	Code         *string `json:"code"`
	PreviousRank *string `json:"previous_rank"`
	City         string  `json:"city"`
}

// CreateCustomer handles creating a new customer
// @Summary Create customer
// @Description Register a new customer; a cited collaboration code must be active (requires manage customers)
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCustomerRequest true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Surname == "" {
		return response.BadRequest(c, "Surname is required")
	}
	if req.Phone == "" {
		return response.BadRequest(c, "Phone is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Grade == "" {
		return response.BadRequest(c, "Grade is required")
	}
	if req.Camps == "" {
		return response.BadRequest(c, "Camps is required")
	}
	if req.Prices == "" {
		return response.BadRequest(c, "Prices is required")
	}
	if req.City == "" {
		return response.BadRequest(c, "City is required")
	}

	input := &services.CreateCustomerInput{
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Grade:        strings.TrimSpace(req.Grade),
		Camps:        req.Camps,
		Prices:       req.Prices,
		Code:         req.Code,
		PreviousRank: req.PreviousRank,
		City:         strings.TrimSpace(req.City),
	}

	customer, err := h.customerService.CreateCustomer(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCode) {
			return response.BadRequest(c, "Collaboration code not found or inactive")
		}
		return response.InternalServerError(c, "Failed to create customer")
	}

	return response.Created(c, "Customer created successfully", fiber.Map{
		"customer": customer,
	})
}

// DeleteCustomer handles soft deleting a customer
// @Summary Delete customer
// @Description Soft delete a customer with an optional reason; the record stays but drops out of listings and revenue (requires manage customers)
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param reason query string false "Deletion reason"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid customer ID")
	}

	// Missing or empty reason falls back to the default in the service
	reason := strings.TrimSpace(c.Query("reason"))

	customer, err := h.customerService.DeleteCustomer(c.Context(), id, reason)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to delete customer")
	}

	return response.Success(c, "Customer deleted successfully", fiber.Map{
		"customer": customer,
	})
}
