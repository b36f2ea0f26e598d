package handlers

import (
	"errors"

	"resellx/internal/domain"
	applog "resellx/internal/log"
	"resellx/internal/services"

	"github.com/gofiber/fiber/v2"
)

type IdentityHandler struct {
	Identity *services.IdentityService
	Tokens   *services.TokenService
}

// Register saves a new identity; repeated registrations of the same
// email are a no-op answered with {"exists":true}.
func (h *IdentityHandler) Register(c *fiber.Ctx) error {
	var id domain.Identity
	if err := c.BodyParser(&id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	res, err := h.Identity.Register(id)
	if err != nil {
		return err
	}
	if res.Exists {
		return c.JSON(fiber.Map{"exists": true})
	}
	applog.Audit(c, "identity.register", map[string]any{"email": id.Email, "role": id.Role})
	return c.JSON(res.Identity)
}

// IssueToken hands out a signed token only to registered emails; a
// miss answers 403 with an empty token rather than a 404.
func (h *IdentityHandler) IssueToken(c *fiber.Ctx) error {
	email := c.Query("email")

	token, err := h.Tokens.Issue(email)
	if errors.Is(err, services.ErrNotFound) {
		applog.Security(c, "token.issue.unknown", map[string]any{"email": email})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"accessToken": ""})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "token.issue", map[string]any{"email": email})
	return c.JSON(fiber.Map{"accessToken": token})
}

func (h *IdentityHandler) UserType(c *fiber.Ctx) error {
	role, err := h.Identity.RoleFor(c.Query("email"))
	if err != nil {
		return err
	}
	if role == "" {
		return c.JSON(fiber.Map{"userType": nil})
	}
	return c.JSON(fiber.Map{"userType": role})
}
