package savings

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/models"
	"personal-management/app/routes/auth"
	"personal-management/app/routes/respond"
)

type savingsRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func GetSavingsAPI(c *fiber.Ctx) error {
	entries, err := GetAllEntries(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, entries)
}

func CreateSavingsAPI(c *fiber.Ctx) error {
	var req savingsRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Amount == 0 || req.Date == "" {
		return respond.ValidationError(c, "Missing required fields: amount, date")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	e := &models.SavingsEntry{
		Amount: req.Amount,
		Date:   req.Date,
		UserID: ownerID,
	}
	if err := CreateEntry(db, e); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added savings: %.0f TZS", e.Amount), "savings", "added")

	return respond.Created(c, fiber.Map{
		"id":      e.ID,
		"message": "Savings record added successfully",
	})
}

func DeleteSavingsAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid savings record ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteEntry(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted savings record", "savings", "deleted")

	return respond.Success(c, fiber.Map{"message": "Savings record deleted successfully"})
}
