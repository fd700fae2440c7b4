package auth

import (
	"strings"

	"site-cms/core/auth"
	"site-cms/core/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the Fiber locals key holding the verified *auth.Claims.
const ClaimsKey = "admin_claims"

// Verifier validates a bearer token.
type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Config configures the admin guard.
type Config struct {
	Verifier Verifier
}

// New returns a middleware that rejects requests without a valid admin bearer token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return response.Fail(c, response.Unauthorized("Missing bearer token"))
		}

		claims, err := cfg.Verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			return response.Fail(c, response.Unauthorized("Invalid or expired token"))
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Claims returns the verified claims stored by the guard, or nil.
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}
