package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodeFixture() (*CodeService, *fakeCodeRepo) {
	codeRepo := newFakeCodeRepo()
	return NewCodeService(codeRepo), codeRepo
}

func TestCreateCodeActiveByDefault(t *testing.T) {
	svc, _ := newCodeFixture()

	code, err := svc.CreateCode(context.Background(), &CreateCodeInput{Code: "  SUMMER26  "})
	require.NoError(t, err)

	assert.Equal(t, "SUMMER26", code.Code)
	assert.True(t, code.IsActive)
	assert.NotEmpty(t, code.ID)
}

func TestCreateCodeInactive(t *testing.T) {
	svc, _ := newCodeFixture()

	inactive := false
	code, err := svc.CreateCode(context.Background(), &CreateCodeInput{Code: "DRAFT", IsActive: &inactive})
	require.NoError(t, err)

	assert.False(t, code.IsActive)
}

func TestCreateCodeDuplicate(t *testing.T) {
	svc, _ := newCodeFixture()

	_, err := svc.CreateCode(context.Background(), &CreateCodeInput{Code: "SUMMER26"})
	require.NoError(t, err)

	_, err = svc.CreateCode(context.Background(), &CreateCodeInput{Code: "SUMMER26"})
	assert.ErrorIs(t, err, ErrCodeAlreadyExists)
}

func TestToggleCode(t *testing.T) {
	svc, _ := newCodeFixture()

	created, err := svc.CreateCode(context.Background(), &CreateCodeInput{Code: "SUMMER26"})
	require.NoError(t, err)

	toggled, err := svc.ToggleCode(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleCode(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestToggleCodeNotFound(t *testing.T) {
	svc, _ := newCodeFixture()

	_, err := svc.ToggleCode(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestDeleteCode(t *testing.T) {
	svc, repo := newCodeFixture()

	created, err := svc.CreateCode(context.Background(), &CreateCodeInput{Code: "SUMMER26"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCode(context.Background(), created.ID))

	codes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestDeleteCodeNotFound(t *testing.T) {
	svc, _ := newCodeFixture()

	err := svc.DeleteCode(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
