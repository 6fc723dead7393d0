package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmarg/CivicPortal/internal/pkg/identity"
	"github.com/janmarg/CivicPortal/internal/pkg/statistics"
)

// HandleHome renders the landing page with the portal counters.
func HandleHome(c *fiber.Ctx) error {
	id := identity.Get(c)
	stats := statistics.GetStatisticsData()

	return c.Render("index", fiber.Map{
		"Title":     "City Complaint Portal",
		"Flash":     flash.Get(c),
		"Identity":  id,
		"Stats":     stats,
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}
