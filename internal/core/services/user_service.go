package services

import (
	"context"
	"errors"
	"log"

	"kampus-admin/internal/adapters/persistence/models"
	"kampus-admin/internal/adapters/persistence/repositories"
	"kampus-admin/internal/core/domain"
	"kampus-admin/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrUserNotFoundSvc    = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrProtectedUser      = errors.New("user account is protected")
	ErrDeleteNotAllowed   = errors.New("missing delete users capability")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents create user input
type CreateUserInput struct {
	Email                       string `json:"email" validate:"required,email"`
	Password                    string `json:"password" validate:"required,min=8"`
	CanManageCustomers          bool   `json:"can_manage_customers"`
	CanManageFinancial          bool   `json:"can_manage_financial"`
	CanManageCollaborationCodes bool   `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool   `json:"can_view_collaboration_stats"`
	CanManageAccess             bool   `json:"can_manage_access"`
	CanDeleteUsers              bool   `json:"can_delete_users"`
}

// UpdateUserInput represents update user input; nil fields are untouched
type UpdateUserInput struct {
	Email                       *string `json:"email"`
	Password                    *string `json:"password"`
	CanManageCustomers          *bool   `json:"can_manage_customers"`
	CanManageFinancial          *bool   `json:"can_manage_financial"`
	CanManageCollaborationCodes *bool   `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   *bool   `json:"can_view_collaboration_stats"`
	CanManageAccess             *bool   `json:"can_manage_access"`
	CanDeleteUsers              *bool   `json:"can_delete_users"`
}

// ListUsers lists all users, newest first, without password hashes
func (s *UserService) ListUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// CreateUser creates a new user with the given capability flags.
// The email uniqueness check races the insert; the unique index on
// users.email is the backstop.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:                       input.Email,
		Password:                    hashed,
		CanManageCustomers:          input.CanManageCustomers,
		CanManageFinancial:          input.CanManageFinancial,
		CanManageCollaborationCodes: input.CanManageCollaborationCodes,
		CanViewCollaborationStats:   input.CanViewCollaborationStats,
		CanManageAccess:             input.CanManageAccess,
		CanDeleteUsers:              input.CanDeleteUsers,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s", user.Email)
	return user.ToResponse(), nil
}

// UpdateUser updates a user's email, password, or capability flags
func (s *UserService) UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}

	if input.Password != nil && *input.Password != "" {
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if input.CanManageCustomers != nil {
		user.CanManageCustomers = *input.CanManageCustomers
	}
	if input.CanManageFinancial != nil {
		user.CanManageFinancial = *input.CanManageFinancial
	}
	if input.CanManageCollaborationCodes != nil {
		user.CanManageCollaborationCodes = *input.CanManageCollaborationCodes
	}
	if input.CanViewCollaborationStats != nil {
		user.CanViewCollaborationStats = *input.CanViewCollaborationStats
	}
	if input.CanManageAccess != nil {
		user.CanManageAccess = *input.CanManageAccess
	}
	if input.CanDeleteUsers != nil {
		user.CanDeleteUsers = *input.CanDeleteUsers
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User updated: %s", user.Email)
	return user.ToResponse(), nil
}

// DeleteUser hard deletes a user. The caller needs both the manage-access
// and delete-users capabilities, and the protected founder accounts cannot
// be deleted regardless of the caller's flags.
func (s *UserService) DeleteUser(ctx context.Context, id string, caller domain.Identity) error {
	if !caller.Capabilities.HasAll(domain.CapManageAccess, domain.CapDeleteUsers) {
		return ErrDeleteNotAllowed
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFoundSvc
		}
		return err
	}

	if domain.IsProtectedEmail(user.Email) {
		return ErrProtectedUser
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ User deleted: %s", user.Email)
	return nil
}
