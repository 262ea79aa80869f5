package fees

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

type feeRequest struct {
	Year          int     `json:"year"`
	Semester      string  `json:"semester"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
}

func (r *feeRequest) validate() string {
	if r.Year == 0 || r.Semester == "" || r.Amount == 0 || r.PaymentDate == "" {
		return "Year, semester, amount, and payment date are required"
	}
	if r.Amount <= 0 || r.Amount > models.MaxSemesterFee {
		return fmt.Sprintf("Amount must be between 0 and %d TZS", models.MaxSemesterFee)
	}
	return ""
}

func GetFeesAPI(c *fiber.Ctx) error {
	fees, err := GetAllFees(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, fees)
}

func CreateFeeAPI(c *fiber.Ctx) error {
	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return respond.ValidationError(c, msg)
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	f := &models.SchoolFee{
		Year:          req.Year,
		Semester:      req.Semester,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		UserID:        ownerID,
	}
	if err := CreateFee(db, f); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added school fee payment: Year %d %s - %.0f TZS", f.Year, f.Semester, f.Amount),
		"school-fees", "added")

	return respond.Created(c, fiber.Map{
		"id":      f.ID,
		"message": "School fee payment added successfully",
	})
}

func UpdateFeeAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid school fee payment ID")
	}

	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return respond.ValidationError(c, msg)
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	f := &models.SchoolFee{
		ID:            id,
		Year:          req.Year,
		Semester:      req.Semester,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		UserID:        ownerID,
	}
	if err := UpdateFee(db, f); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated school fee payment: Year %d %s - %.0f TZS", f.Year, f.Semester, f.Amount),
		"school-fees", "updated")

	return respond.Success(c, fiber.Map{"message": "School fee payment updated successfully"})
}

func DeleteFeeAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid school fee payment ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)

	// Fetch first so the activity entry can describe what was removed
	f, err := GetFeeByID(db, id, ownerID)
	if err != nil {
		return respond.Error(c, err)
	}

	if err := DeleteFee(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Deleted school fee payment: Year %d %s - %.0f TZS", f.Year, f.Semester, f.Amount),
		"school-fees", "deleted")

	return respond.Success(c, fiber.Map{"message": "School fee payment deleted successfully"})
}
