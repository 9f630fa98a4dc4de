package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"jumpingkids/internal/auth"
)

// AuthUserLocalKey stores the authenticated claims in Fiber's context locals.
const AuthUserLocalKey = "auth_user"

// RequireAuth rejects requests that do not carry a valid bearer token
// and stores the parsed claims in the context locals for handlers.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(AuthUserLocalKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by RequireAuth, or nil when
// the route did not pass through it.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(AuthUserLocalKey).(*auth.Claims)
	return claims
}
