package journeys

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupJourneysRoutes(app *fiber.App) {
	api := app.Group("/api/journeys")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetJourneysAPI)
	api.Post("/", CreateJourneyAPI)
	api.Put("/:id/status", UpdateJourneyStatusAPI)
	api.Put("/:id", UpdateJourneyAPI)
	api.Delete("/:id", DeleteJourneyAPI)
}
