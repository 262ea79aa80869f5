package marks

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/routes/auth"
)

func SetupMarksRoutes(app *fiber.App) {
	api := app.Group("/api/marks")
	api.Use(auth.SessionMiddleware)
	api.Get("/", GetMarksAPI)
	api.Post("/", CreateMarkAPI)
	api.Put("/:id", UpdateMarkAPI)
	api.Delete("/:id", DeleteMarkAPI)

	app.Get("/api/ca-marks-progress", auth.SessionMiddleware, GetProgressAPI)
}
