package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.RequireAuth, GetDashboard)
	app.Get("/api/dashboard/stats", auth.SessionMiddleware, GetDashboardStatsAPI)
}
