package marks

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/models"
	"personal-management/app/routes/auth"
	"personal-management/app/routes/modules"
	"personal-management/app/routes/respond"
)

type markRequest struct {
	ModuleID int     `json:"moduleId"`
	Category string  `json:"category"`
	Marks    float64 `json:"marks"`
}

var validCategories = map[string]bool{
	models.MarkCategoryGroupAssignment:      true,
	models.MarkCategoryIndividualAssignment: true,
	models.MarkCategoryTest01:               true,
	models.MarkCategoryTest02:               true,
	models.MarkCategoryPresentation:         true,
}

func GetMarksAPI(c *fiber.Ctx) error {
	entries, err := GetAllMarks(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, entries)
}

// GetProgressAPI serves the CA marks progress report.
func GetProgressAPI(c *fiber.Ctx) error {
	totals, err := GetModuleMarkTotals(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, BuildProgressReport(totals))
}

func CreateMarkAPI(c *fiber.Ctx) error {
	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.ModuleID == 0 || req.Marks == 0 {
		return respond.ValidationError(c, "Module and marks are required fields")
	}
	if req.Category == "" {
		req.Category = models.MarkCategoryTest01
	}
	if !validCategories[req.Category] {
		return respond.ValidationError(c, "Invalid assessment category")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)

	// Snapshot name and lecturer from the module at insert time; later
	// module edits must not rewrite historical mark rows.
	module, err := modules.GetModuleByID(db, req.ModuleID, ownerID)
	if err != nil {
		return respond.Error(c, err)
	}

	e := &models.MarkEntry{
		ModuleID:   module.ID,
		ModuleName: module.Name,
		Lecturer:   module.Lecturer,
		Category:   req.Category,
		Marks:      req.Marks,
		UserID:     ownerID,
	}
	if err := CreateMark(db, e); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added %s marks: %g for %s (%s)", e.Category, e.Marks, module.Name, module.Code),
		"marks", "added")

	return respond.Created(c, fiber.Map{
		"id":      e.ID,
		"message": "Marks added successfully",
	})
}

func UpdateMarkAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid marks ID")
	}

	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.ModuleID == 0 || req.Marks == 0 {
		return respond.ValidationError(c, "Module and marks are required fields")
	}
	if req.Category == "" {
		req.Category = models.MarkCategoryTest01
	}
	if !validCategories[req.Category] {
		return respond.ValidationError(c, "Invalid assessment category")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)

	module, err := modules.GetModuleByID(db, req.ModuleID, ownerID)
	if err != nil {
		return respond.Error(c, err)
	}

	e := &models.MarkEntry{
		ID:         id,
		ModuleID:   module.ID,
		ModuleName: module.Name,
		Lecturer:   module.Lecturer,
		Category:   req.Category,
		Marks:      req.Marks,
		UserID:     ownerID,
	}
	if err := UpdateMark(db, e); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated marks: %g for %s (%s)", e.Marks, module.Name, module.Code),
		"marks", "updated")

	return respond.Success(c, fiber.Map{"message": "Marks updated successfully"})
}

func DeleteMarkAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid marks ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteMark(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted marks entry", "marks", "deleted")

	return respond.Success(c, fiber.Map{"message": "Marks deleted successfully"})
}
