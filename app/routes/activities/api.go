package activities

import (
	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/routes/auth"
	"personal-management/app/routes/respond"
)

func GetActivitiesAPI(c *fiber.Ctx) error {
	entries, err := database.GetRecentActivities(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, entries)
}

// ClearActivitiesAPI wipes the activity trail; the clear itself is logged as
// a fresh entry.
func ClearActivitiesAPI(c *fiber.Ctx) error {
	cleared, err := database.ClearAllActivities(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message":      "Activities cleared successfully",
		"clearedCount": cleared,
	})
}
