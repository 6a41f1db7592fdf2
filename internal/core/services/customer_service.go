package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"kampus-admin/internal/adapters/persistence/models"
	"kampus-admin/internal/adapters/persistence/repositories"
	"kampus-admin/internal/pkg/pricing"

	"gorm.io/gorm"
)

// Customer service errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCode      = errors.New("collaboration code not found or inactive")
)

// DefaultDeletedReason is recorded when a customer is removed without an
// explicit reason
const DefaultDeletedReason = "payment not received"

// CustomerService handles customer management business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	codeRepo     repositories.CodeRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	codeRepo repositories.CodeRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		codeRepo:     codeRepo,
	}
}

// CreateCustomerInput represents create customer input
type CreateCustomerInput struct {
	Name         string  `json:"name" validate:"required"`
	Surname      string  `json:"surname" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Grade        string  `json:"grade" validate:"required"`
	Camps        string  `json:"camps" validate:"required"`
	Prices       string  `json:"prices" validate:"required"`
	Code         *string `json:"code"`
	PreviousRank *string `json:"previous_rank"`
	City         string  `json:"city" validate:"required"`
}

// ListCustomersInput represents list customers input
type ListCustomersInput struct {
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// ListCustomers lists customers, newest first. Soft-deleted rows appear only
// when IncludeDeleted is set.
func (s *CustomerService) ListCustomers(ctx context.Context, input *ListCustomersInput) ([]*models.Customer, int64, error) {
	return s.customerRepo.List(ctx, input.IncludeDeleted, input.Offset, input.Limit)
}

// GetCustomerByID gets a customer by ID
func (s *CustomerService) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// CreateCustomer creates a new customer. A cited collaboration code must
// match a currently active code or the creation is rejected. The check and
// the insert are separate statements, so a code deactivated in between can
// slip through; accepted trade-off, same as email uniqueness.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*models.Customer, error) {
	// 1. Validate collaboration code if supplied
	if input.Code != nil && *input.Code != "" {
		code, err := s.codeRepo.GetByCode(ctx, *input.Code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCode
			}
			return nil, err
		}
		if !code.IsActive {
			return nil, ErrInvalidCode
		}
	}

	// 2. Normalize the price field to a JSON array string
	customer := &models.Customer{
		Name:         input.Name,
		Surname:      input.Surname,
		Phone:        input.Phone,
		Email:        input.Email,
		Grade:        input.Grade,
		Camps:        input.Camps,
		Prices:       normalizePrices(input.Prices),
		Code:         input.Code,
		PreviousRank: input.PreviousRank,
		City:         input.City,
	}

	// 3. Create customer
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("✅ Customer created: %s (%s)", customer.FullName(), customer.Email)
	return customer, nil
}

// DeleteCustomer soft deletes a customer: the row stays, flagged with a
// reason, and drops out of active listings and every revenue aggregate.
// There is no way back to the active state.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string, reason string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if reason == "" {
		reason = DefaultDeletedReason
	}

	customer.IsDeleted = true
	customer.DeletedReason = &reason

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("✅ Customer soft-deleted: %s (reason: %s)", customer.FullName(), reason)
	return customer, nil
}

// normalizePrices stores prices as a JSON array string. Input that is
// already valid JSON is kept verbatim; comma-separated input is parsed
// tolerantly and re-encoded.
func normalizePrices(raw string) string {
	var probe interface{}
	if err := json.Unmarshal([]byte(raw), &probe); err == nil {
		return raw
	}

	encoded, err := json.Marshal(pricing.Parse(raw))
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
