package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/routes/activities"
	"personal-management/app/routes/appointments"
	"personal-management/app/routes/auth"
	"personal-management/app/routes/dashboard"
	"personal-management/app/routes/fees"
	"personal-management/app/routes/journeys"
	"personal-management/app/routes/marks"
	"personal-management/app/routes/modules"
	"personal-management/app/routes/money"
	"personal-management/app/routes/savings"
	"personal-management/app/routes/timetable"
	"personal-management/app/services"
)

// customErrorHandler keeps API errors as JSON and sends web requests to the
// login page on auth failures.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 401, 403:
		return c.Redirect("/auth/login")
	case 404:
		return c.Status(404).SendString("Page not found")
	default:
		return c.Status(code).SendString("An error occurred: " + err.Error())
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.Debug(false)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	modules.SetupModulesRoutes(app)
	timetable.SetupTimetableRoutes(app)
	marks.SetupMarksRoutes(app)
	money.SetupMoneyRoutes(app)
	savings.SetupSavingsRoutes(app)
	appointments.SetupAppointmentsRoutes(app)
	journeys.SetupJourneysRoutes(app)
	activities.SetupActivitiesRoutes(app)
	fees.SetupFeesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
