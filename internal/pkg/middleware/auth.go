package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/identity"
)

// RequireCitizen ensures a logged-in citizen session; redirects to the
// citizen login with a warning otherwise.
func RequireCitizen(c *fiber.Ctx) error {
	if !identity.Get(c).IsCitizen() {
		fm := fiber.Map{"type": "warning", "message": "Please log in first."}
		return flash.WithWarn(c, fm).Redirect(constants.RouteLogin, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireOfficer ensures a logged-in officer session; redirects to the
// officer login with a warning otherwise.
func RequireOfficer(c *fiber.Ctx) error {
	if !identity.Get(c).IsOfficer() {
		fm := fiber.Map{"type": "warning", "message": "Please log in first."}
		return flash.WithWarn(c, fm).Redirect(constants.RouteOfficerLogin, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireOfficerAPI ensures a logged-in officer session for API routes and
// returns JSON 401 instead of a redirect.
func RequireOfficerAPI(c *fiber.Ctx) error {
	if !identity.Get(c).IsOfficer() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "officer login required",
		})
	}
	return c.Next()
}

// RequireCitizenAPI ensures a logged-in citizen session for API routes and
// returns JSON 401 instead of a redirect.
func RequireCitizenAPI(c *fiber.Ctx) error {
	if !identity.Get(c).IsCitizen() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "citizen login required",
		})
	}
	return c.Next()
}
