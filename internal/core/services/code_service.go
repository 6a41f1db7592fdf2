package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"kampus-admin/internal/adapters/persistence/models"
	"kampus-admin/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Collaboration code service errors
var (
	ErrCodeNotFound      = errors.New("collaboration code not found")
	ErrCodeAlreadyExists = errors.New("collaboration code already exists")
)

// CodeService handles collaboration code business logic
type CodeService struct {
	codeRepo repositories.CodeRepository
}

// NewCodeService creates a new collaboration code service
func NewCodeService(codeRepo repositories.CodeRepository) *CodeService {
	return &CodeService{codeRepo: codeRepo}
}

// CreateCodeInput represents create code input
type CreateCodeInput struct {
	Code     string `json:"code" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

// ListCodes lists all collaboration codes, newest first
func (s *CodeService) ListCodes(ctx context.Context) ([]*models.CollaborationCode, error) {
	return s.codeRepo.List(ctx)
}

// CreateCode creates a new collaboration code. The code string must be
// unique among all codes, active or not.
func (s *CodeService) CreateCode(ctx context.Context, input *CreateCodeInput) (*models.CollaborationCode, error) {
	value := strings.TrimSpace(input.Code)

	exists, err := s.codeRepo.ExistsByCode(ctx, value)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodeAlreadyExists
	}

	code := &models.CollaborationCode{
		Code:     value,
		IsActive: true,
	}
	if input.IsActive != nil {
		code.IsActive = *input.IsActive
	}

	if err := s.codeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	log.Printf("✅ Collaboration code created: %s", code.Code)
	return code, nil
}

// ToggleCode sets a code's active flag. Customers already associated with
// the code keep their text snapshot either way.
func (s *CodeService) ToggleCode(ctx context.Context, id string, isActive bool) (*models.CollaborationCode, error) {
	code, err := s.codeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	code.IsActive = isActive
	if err := s.codeRepo.Update(ctx, code); err != nil {
		return nil, err
	}

	log.Printf("✅ Collaboration code %s set active=%t", code.Code, isActive)
	return code, nil
}

// DeleteCode hard deletes a collaboration code. Customer records keep the
// orphaned code string as plain text.
func (s *CodeService) DeleteCode(ctx context.Context, id string) error {
	code, err := s.codeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	if err := s.codeRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Collaboration code deleted: %s", code.Code)
	return nil
}
