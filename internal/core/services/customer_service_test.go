package services

import (
	"context"
	"testing"

	"kampus-admin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture() (*CustomerService, *fakeCustomerRepo, *fakeCodeRepo) {
	customerRepo := newFakeCustomerRepo()
	codeRepo := newFakeCodeRepo()
	return NewCustomerService(customerRepo, codeRepo), customerRepo, codeRepo
}

func customerInput(code *string, prices string) *CreateCustomerInput {
	return &CreateCustomerInput{
		Name:    "Ali",
		Surname: "Yilmaz",
		Phone:   "+90 555 000 0000",
		Email:   "ali@example.com",
		Grade:   "12",
		Camps:   "summer",
		Prices:  prices,
		Code:    code,
		City:    "Istanbul",
	}
}

func TestCreateCustomerWithoutCode(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	customer, err := svc.CreateCustomer(context.Background(), customerInput(nil, "[100, 200]"))
	require.NoError(t, err)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Ali Yilmaz", customer.FullName())
	assert.False(t, customer.HasCode())
}

func TestCreateCustomerNormalizesCommaSeparatedPrices(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	customer, err := svc.CreateCustomer(context.Background(), customerInput(nil, "100, 200, 50.5"))
	require.NoError(t, err)

	// Stored as a JSON array string
	assert.Equal(t, "[100,200,50.5]", customer.Prices)
}

func TestCreateCustomerKeepsValidJSONPrices(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	customer, err := svc.CreateCustomer(context.Background(), customerInput(nil, "[100, 200]"))
	require.NoError(t, err)

	assert.Equal(t, "[100, 200]", customer.Prices)
}

func TestCreateCustomerWithActiveCode(t *testing.T) {
	svc, _, codeRepo := newCustomerFixture()

	require.NoError(t, codeRepo.Create(context.Background(), &models.CollaborationCode{
		Code:     "SUMMER26",
		IsActive: true,
	}))

	code := "SUMMER26"
	customer, err := svc.CreateCustomer(context.Background(), customerInput(&code, "[100]"))
	require.NoError(t, err)

	assert.True(t, customer.HasCode())
	assert.Equal(t, "SUMMER26", *customer.Code)
}

func TestCreateCustomerRejectsInactiveCode(t *testing.T) {
	svc, _, codeRepo := newCustomerFixture()

	require.NoError(t, codeRepo.Create(context.Background(), &models.CollaborationCode{
		Code:     "OLD25",
		IsActive: false,
	}))

	code := "OLD25"
	_, err := svc.CreateCustomer(context.Background(), customerInput(&code, "[100]"))
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCreateCustomerRejectsUnknownCode(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	code := "NOPE"
	_, err := svc.CreateCustomer(context.Background(), customerInput(&code, "[100]"))
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDeleteCustomerDefaultReason(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	created, err := svc.CreateCustomer(context.Background(), customerInput(nil, "[100]"))
	require.NoError(t, err)

	deleted, err := svc.DeleteCustomer(context.Background(), created.ID, "")
	require.NoError(t, err)

	assert.True(t, deleted.IsDeleted)
	require.NotNil(t, deleted.DeletedReason)
	assert.Equal(t, DefaultDeletedReason, *deleted.DeletedReason)
}

func TestDeleteCustomerExplicitReason(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	created, err := svc.CreateCustomer(context.Background(), customerInput(nil, "[100]"))
	require.NoError(t, err)

	deleted, err := svc.DeleteCustomer(context.Background(), created.ID, "duplicate record")
	require.NoError(t, err)

	require.NotNil(t, deleted.DeletedReason)
	assert.Equal(t, "duplicate record", *deleted.DeletedReason)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	_, err := svc.DeleteCustomer(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestDeletedCustomerDropsOutOfActiveListing(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	created, err := svc.CreateCustomer(context.Background(), customerInput(nil, "[100]"))
	require.NoError(t, err)
	_, err = svc.DeleteCustomer(context.Background(), created.ID, "")
	require.NoError(t, err)

	visible, total, err := svc.ListCustomers(context.Background(), &ListCustomersInput{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, visible)
	assert.Equal(t, int64(0), total)

	all, total, err := svc.ListCustomers(context.Background(), &ListCustomersInput{IncludeDeleted: true, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, int64(1), total)
}
