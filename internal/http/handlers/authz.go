package handlers

import (
	"errors"

	applog "resellx/internal/log"
	"resellx/internal/repos"
	"resellx/internal/services"

	"github.com/gofiber/fiber/v2"
)

// forbidden is the one body every authorization failure shares, so a
// probing caller cannot tell a bad token from a wrong role or an
// unknown account.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
}

// RequireRole verifies the bearer token and then checks the caller's
// current role with a live identity lookup. Role lives only in the
// store, never in the token, so a role change is effective on the
// next request. On success the verified email lands in c.Locals.
func RequireRole(tokens *services.TokenService, identities *repos.IdentityRepo, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := tokens.ExtractBearer(c.Get(fiber.HeaderAuthorization))
		if errors.Is(err, services.ErrMissingCredential) {
			applog.Security(c, "access.denied.nocred", nil)
			return c.Status(fiber.StatusUnauthorized).SendString("unauthorized access")
		}

		email, err := tokens.Verify(token)
		if err != nil {
			applog.Security(c, "access.denied.token", map[string]any{"reason": err.Error()})
			return forbidden(c)
		}

		id, err := identities.ByEmail(email)
		if err != nil {
			return err
		}
		if id == nil || id.Role != role {
			applog.Security(c, "access.denied.role", map[string]any{"email": email, "need": role})
			return forbidden(c)
		}

		c.Locals("email", email)
		return c.Next()
	}
}
