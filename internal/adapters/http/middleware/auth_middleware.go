package middleware

import (
	"strings"

	"kampus-admin/internal/config"
	"kampus-admin/internal/core/domain"
	"kampus-admin/internal/pkg/jwt"
	"kampus-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the locals key the authenticated identity is stored under
const IdentityKey = "identity"

// AuthMiddleware creates authentication middleware. The identity carries
// the capability snapshot from the token, not a live database read.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set identity in context
		c.Locals(IdentityKey, claims.Identity())

		return c.Next()
	}
}

// RequirePermission creates capability-based authorization middleware.
// The caller must hold every listed capability.
func RequirePermission(caps ...domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(IdentityKey).(domain.Identity)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !identity.Capabilities.HasAll(caps...) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// GetIdentity extracts the authenticated identity from the request context
func GetIdentity(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(IdentityKey).(domain.Identity)
	return identity, ok
}
