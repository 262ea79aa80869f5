package money

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupMoneyRoutes(app *fiber.App) {
	api := app.Group("/api/money")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetMoneyAPI)
	api.Post("/", CreateMoneyAPI)
	api.Put("/:id/return", MarkReturnedAPI)
	api.Delete("/:id", DeleteMoneyAPI)
}
