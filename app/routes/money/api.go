package money

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

type moneyRequest struct {
	Person     string  `json:"person"`
	Amount     float64 `json:"amount"`
	BorrowDate string  `json:"borrowDate"`
	ReturnDate string  `json:"returnDate"`
}

func GetMoneyAPI(c *fiber.Ctx) error {
	records, err := GetAllRecords(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, records)
}

func CreateMoneyAPI(c *fiber.Ctx) error {
	var req moneyRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Person == "" || req.Amount == 0 || req.BorrowDate == "" {
		return respond.ValidationError(c, "Missing required fields: person, amount, borrowDate")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	r := &models.MoneyRecord{
		PersonName: req.Person,
		Amount:     req.Amount,
		BorrowDate: req.BorrowDate,
		UserID:     ownerID,
	}
	if req.ReturnDate != "" {
		r.ExpectedReturnDate = &req.ReturnDate
	}
	if err := CreateRecord(db, r); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added money record: %s owes %.0f TZS", r.PersonName, r.Amount),
		"money", "added")

	return respond.Created(c, fiber.Map{
		"id":      r.ID,
		"message": "Money record added successfully",
	})
}

// MarkReturnedAPI handles the pending -> returned status transition.
func MarkReturnedAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid money record ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := MarkReturned(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Marked money as returned", "money", "returned")

	return respond.Success(c, fiber.Map{"message": "Money marked as returned"})
}

func DeleteMoneyAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid money record ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteRecord(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted money record", "money", "deleted")

	return respond.Success(c, fiber.Map{"message": "Money record deleted successfully"})
}
