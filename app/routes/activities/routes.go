package activities

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupActivitiesRoutes(app *fiber.App) {
	api := app.Group("/api/activities")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetActivitiesAPI)
	api.Delete("/", ClearActivitiesAPI)
}
