package savings

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupSavingsRoutes(app *fiber.App) {
	api := app.Group("/api/savings")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetSavingsAPI)
	api.Post("/", CreateSavingsAPI)
	api.Delete("/:id", DeleteSavingsAPI)
}
