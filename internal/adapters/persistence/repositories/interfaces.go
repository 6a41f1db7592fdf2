package repositories

import (
	"context"

	"kampus-admin/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.User, error)
}

// CustomerRepository defines customer repository interface.
// Customers are never hard-deleted; List honors the include-deleted flag and
// ListActive returns the full non-deleted snapshot aggregations run over.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context, includeDeleted bool, offset, limit int) ([]*models.Customer, int64, error)
	ListActive(ctx context.Context) ([]*models.Customer, error)
}

// CodeRepository defines collaboration code repository interface
type CodeRepository interface {
	Create(ctx context.Context, code *models.CollaborationCode) error
	GetByID(ctx context.Context, id string) (*models.CollaborationCode, error)
	GetByCode(ctx context.Context, code string) (*models.CollaborationCode, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, code *models.CollaborationCode) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.CollaborationCode, error)
	ListActive(ctx context.Context) ([]*models.CollaborationCode, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
