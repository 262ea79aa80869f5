package modules

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

type moduleRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Lecturer string `json:"lecturer"`
	Semester int    `json:"semester"`
	Year     int    `json:"year"`
}

func GetModulesAPI(c *fiber.Ctx) error {
	mods, err := GetAllModules(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, mods)
}

func CreateModuleAPI(c *fiber.Ctx) error {
	var req moduleRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Code == "" || req.Name == "" {
		return respond.ValidationError(c, "Module code and name are required fields")
	}
	if req.Semester == 0 {
		req.Semester = 1
	}
	if req.Year == 0 {
		req.Year = 1
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	m := &models.Module{
		Code:     req.Code,
		Name:     req.Name,
		Lecturer: req.Lecturer,
		Semester: req.Semester,
		Year:     req.Year,
		UserID:   ownerID,
	}
	if err := CreateModule(db, m); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added module: %s (%s)", m.Name, m.Code), "module", "added")

	return respond.Created(c, fiber.Map{
		"id":      m.ID,
		"message": "Module added successfully",
	})
}

func UpdateModuleAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid module ID")
	}

	var req moduleRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Code == "" || req.Name == "" {
		return respond.ValidationError(c, "Module code and name are required fields")
	}
	if req.Semester == 0 {
		req.Semester = 1
	}
	if req.Year == 0 {
		req.Year = 1
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	m := &models.Module{
		ID:       id,
		Code:     req.Code,
		Name:     req.Name,
		Lecturer: req.Lecturer,
		Semester: req.Semester,
		Year:     req.Year,
		UserID:   ownerID,
	}
	if err := UpdateModule(db, m); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated module: %s (%s)", m.Name, m.Code), "module", "updated")

	return respond.Success(c, fiber.Map{"message": "Module updated successfully"})
}

func DeleteModuleAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid module ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteModule(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted module", "module", "deleted")

	return respond.Success(c, fiber.Map{"message": "Module deleted successfully"})
}
