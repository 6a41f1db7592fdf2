package jwt

import (
	"testing"

	"kampus-admin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testIdentity() domain.Identity {
	return domain.Identity{
		UserID: "user-1",
		Email:  "someone@kampus.com",
		Capabilities: domain.NewCapabilitySet(
			domain.CapManageCustomers,
			domain.CapManageFinancial,
		),
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testIdentity(), testSecret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "someone@kampus.com", claims.Email)
	assert.ElementsMatch(t, []string{"manage_customers", "manage_financial"}, claims.Capabilities)

	identity := claims.Identity()
	assert.True(t, identity.Capabilities.Has(domain.CapManageCustomers))
	assert.True(t, identity.Capabilities.Has(domain.CapManageFinancial))
	assert.False(t, identity.Capabilities.Has(domain.CapDeleteUsers))
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testIdentity(), testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(testIdentity(), testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("user-1", "token-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "token-1", claims.TokenID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	// An access token must not validate as a refresh token when the
	// secrets differ
	token, err := GenerateAccessToken(testIdentity(), testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(token, "refresh-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
