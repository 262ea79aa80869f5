package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/routes/auth"
	"personal-management/app/routes/respond"
)

// GetDashboard renders the dashboard shell; the page fetches its data from
// the stats API.
func GetDashboard(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Personal Management",
		"CurrentPage": "dashboard",
		"Username":    username,
	})
}

// GetDashboardStatsAPI returns the summary counters. The aggregator never
// fails as a whole; broken fields come back zeroed.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats := database.GetDashboardStats(config.GetDB(), auth.OwnerID(c))
	return respond.Success(c, stats)
}
