package appointments

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupAppointmentsRoutes(app *fiber.App) {
	api := app.Group("/api/appointments")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetAppointmentsAPI)
	api.Post("/", CreateAppointmentAPI)
	api.Put("/:id/complete", CompleteAppointmentAPI)
	api.Put("/:id/status", UpdateStatusAPI)
	api.Delete("/:id", DeleteAppointmentAPI)
}
