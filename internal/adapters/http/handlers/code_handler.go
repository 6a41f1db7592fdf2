package handlers

import (
	"errors"
	"strings"

	"kampus-admin/internal/core/services"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CodeHandler handles collaboration code endpoints
type CodeHandler struct {
	codeService *services.CodeService
}

// NewCodeHandler creates a new collaboration code handler
func NewCodeHandler(codeService *services.CodeService) *CodeHandler {
	return &CodeHandler{
		codeService: codeService,
	}
}

// ListCodes handles listing all collaboration codes
// @Summary List collaboration codes
// @Description Get all collaboration codes, newest first (requires manage collaboration codes)
// @Tags CollaborationCodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /collaboration-codes [get]
func (h *CodeHandler) ListCodes(c *fiber.Ctx) error {
	codes, err := h.codeService.ListCodes(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list collaboration codes")
	}

	return response.Success(c, "Collaboration codes retrieved successfully", fiber.Map{
		"codes": codes,
	})
}

// CreateCodeRequest represents create code request body
type CreateCodeRequest struct {
	Code     string `json:"code"`
	IsActive *bool  `json:"is_active"`
}

// CreateCode handles creating a new collaboration code
// @Summary Create collaboration code
// @Description Create a new collaboration code, active by default (requires manage collaboration codes)
// @Tags CollaborationCodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCodeRequest true "Code data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /collaboration-codes [post]
func (h *CodeHandler) CreateCode(c *fiber.Ctx) error {
	var req CreateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Code) == "" {
		return response.BadRequest(c, "Code is required")
	}

	input := &services.CreateCodeInput{
		Code:     req.Code,
		IsActive: req.IsActive,
	}

	code, err := h.codeService.CreateCode(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrCodeAlreadyExists) {
			return response.Conflict(c, "Collaboration code already exists")
		}
		return response.InternalServerError(c, "Failed to create collaboration code")
	}

	return response.Created(c, "Collaboration code created successfully", fiber.Map{
		"code": code,
	})
}

// ToggleCodeRequest represents toggle code request body
type ToggleCodeRequest struct {
	IsActive bool `json:"is_active"`
}

// ToggleCode handles activating or deactivating a collaboration code
// @Summary Toggle collaboration code
// @Description Set a code's active flag; existing customer records are untouched (requires manage collaboration codes)
// @Tags CollaborationCodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Code ID"
// @Param body body ToggleCodeRequest true "Active flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /collaboration-codes/{id} [patch]
func (h *CodeHandler) ToggleCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid code ID")
	}

	var req ToggleCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	code, err := h.codeService.ToggleCode(c.Context(), id, req.IsActive)
	if err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			return response.NotFound(c, "Collaboration code not found")
		}
		return response.InternalServerError(c, "Failed to update collaboration code")
	}

	return response.Success(c, "Collaboration code updated successfully", fiber.Map{
		"code": code,
	})
}

// DeleteCode handles deleting a collaboration code
// @Summary Delete collaboration code
// @Description Permanently delete a collaboration code; customer records keep the code text (requires manage collaboration codes)
// @Tags CollaborationCodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Code ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /collaboration-codes/{id} [delete]
func (h *CodeHandler) DeleteCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Invalid code ID")
	}

	if err := h.codeService.DeleteCode(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			return response.NotFound(c, "Collaboration code not found")
		}
		return response.InternalServerError(c, "Failed to delete collaboration code")
	}

	return response.Success(c, "Collaboration code deleted successfully", nil)
}
