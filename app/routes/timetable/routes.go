package timetable

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetTimetableAPI)
	api.Post("/", CreateEntryAPI)
	api.Put("/:id", UpdateEntryAPI)
	api.Delete("/:id", DeleteEntryAPI)
}
