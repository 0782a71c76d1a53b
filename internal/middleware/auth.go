package middleware

import (
	"strings"

	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// RequireAuth verifies the bearer credential on every request; there is
// no session state. Missing or unverifiable credentials short-circuit
// with 401 before any store access.
func RequireAuth(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Missing bearer credentials",
			})
		}

		ident, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Invalid authentication credentials",
			})
		}

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// IdentityFrom returns the verified identity set by RequireAuth, or nil
// on routes without it.
func IdentityFrom(c *fiber.Ctx) *identity.Identity {
	ident, _ := c.Locals(identityKey).(*identity.Identity)
	return ident
}
