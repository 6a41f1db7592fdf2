package handlers

import (
	"errors"
	"strings"

	"kampus-admin/internal/adapters/http/middleware"
	"kampus-admin/internal/core/services"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles listing all users
// @Summary List all users
// @Description Get all users with their capability flags (requires manage access)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": users,
	})
}

// GetUser handles getting a user by ID
// @Summary Get user by ID
// @Description Get a specific user by ID (requires manage access)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFoundSvc) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user,
	})
}

// CreateUserRequest represents create user request body
type CreateUserRequest struct {
	Email                       string `json:"email"`
	Password                    string `json:"password"`
	CanManageCustomers          bool   `json:"can_manage_customers"`
	CanManageFinancial          bool   `json:"can_manage_financial"`
	CanManageCollaborationCodes bool   `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool   `json:"can_view_collaboration_stats"`
	CanManageAccess             bool   `json:"can_manage_access"`
	CanDeleteUsers              bool   `json:"can_delete_users"`
}

// CreateUser handles creating a new user
// @Summary Create user
// @Description Create a new user with capability flags (requires manage access)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.CreateUserInput{
		Email:                       strings.TrimSpace(req.Email),
		Password:                    req.Password,
		CanManageCustomers:          req.CanManageCustomers,
		CanManageFinancial:          req.CanManageFinancial,
		CanManageCollaborationCodes: req.CanManageCollaborationCodes,
		CanViewCollaborationStats:   req.CanViewCollaborationStats,
		CanManageAccess:             req.CanManageAccess,
		CanDeleteUsers:              req.CanDeleteUsers,
	}

	user, err := h.userService.CreateUser(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return response.Conflict(c, "Email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User created successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUserRequest represents update user request body; nil fields keep
// their current values
type UpdateUserRequest struct {
	Email                       *string `json:"email"`
	Password                    *string `json:"password"`
	CanManageCustomers          *bool   `json:"can_manage_customers"`
	CanManageFinancial          *bool   `json:"can_manage_financial"`
	CanManageCollaborationCodes *bool   `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   *bool   `json:"can_view_collaboration_stats"`
	CanManageAccess             *bool   `json:"can_manage_access"`
	CanDeleteUsers              *bool   `json:"can_delete_users"`
}

// UpdateUser handles updating a user
// @Summary Update user
// @Description Update a user's email, password, or capability flags (requires manage access)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body UpdateUserRequest true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Password != nil && *req.Password != "" && len(*req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.UpdateUserInput{
		Email:                       req.Email,
		Password:                    req.Password,
		CanManageCustomers:          req.CanManageCustomers,
		CanManageFinancial:          req.CanManageFinancial,
		CanManageCollaborationCodes: req.CanManageCollaborationCodes,
		CanViewCollaborationStats:   req.CanViewCollaborationStats,
		CanManageAccess:             req.CanManageAccess,
		CanDeleteUsers:              req.CanDeleteUsers,
	}

	user, err := h.userService.UpdateUser(c.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrEmailAlreadyExists):
			return response.Conflict(c, "Email already exists")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser handles deleting a user
// @Summary Delete user
// @Description Permanently delete a user (requires manage access and delete users)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid user ID")
	}

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	err := h.userService.DeleteUser(c.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrDeleteNotAllowed):
			return response.Forbidden(c, "You don't have permission to delete users")
		case errors.Is(err, services.ErrProtectedUser):
			return response.Forbidden(c, "This account is protected and cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}
