package fees

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/school-fees")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetFeesAPI)
	api.Post("/", CreateFeeAPI)
	api.Put("/:id", UpdateFeeAPI)
	api.Delete("/:id", DeleteFeeAPI)
}
