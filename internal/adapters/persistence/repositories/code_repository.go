package repositories

import (
	"context"

	"kampus-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// codeRepository implements CodeRepository interface
type codeRepository struct {
	db *gorm.DB
}

// NewCodeRepository creates a new collaboration code repository
func NewCodeRepository(db *gorm.DB) CodeRepository {
	return &codeRepository{db: db}
}

// Create creates a new collaboration code
func (r *codeRepository) Create(ctx context.Context, code *models.CollaborationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// GetByID gets a collaboration code by ID
func (r *codeRepository) GetByID(ctx context.Context, id string) (*models.CollaborationCode, error) {
	var code models.CollaborationCode
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// GetByCode gets a collaboration code by its code string
func (r *codeRepository) GetByCode(ctx context.Context, codeValue string) (*models.CollaborationCode, error) {
	var code models.CollaborationCode
	err := r.db.WithContext(ctx).Where("code = ?", codeValue).First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// ExistsByCode checks if a code string exists, active or not
func (r *codeRepository) ExistsByCode(ctx context.Context, codeValue string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CollaborationCode{}).Where("code = ?", codeValue).Count(&count).Error
	return count > 0, err
}

// Update updates a collaboration code
func (r *codeRepository) Update(ctx context.Context, code *models.CollaborationCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

// Delete hard deletes a collaboration code. Customer rows keep the orphaned
// code string; there is no cascade.
func (r *codeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CollaborationCode{}, "id = ?", id).Error
}

// List lists all collaboration codes, newest first
func (r *codeRepository) List(ctx context.Context) ([]*models.CollaborationCode, error) {
	var codes []*models.CollaborationCode
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// ListActive lists currently active codes, newest first
func (r *codeRepository) ListActive(ctx context.Context) ([]*models.CollaborationCode, error) {
	var codes []*models.CollaborationCode
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
