package modules

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupModulesRoutes(app *fiber.App) {
	api := app.Group("/api/modules")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetModulesAPI)
	api.Post("/", CreateModuleAPI)
	api.Put("/:id", UpdateModuleAPI)
	api.Delete("/:id", DeleteModuleAPI)
}
