package timetable

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

type entryRequest struct {
	ModuleCode string `json:"moduleCode"`
	ModuleName string `json:"moduleName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
}

func (r *entryRequest) validate() string {
	if r.ModuleCode == "" || r.ModuleName == "" || r.Date == "" || r.Time == "" {
		return "Missing required fields: moduleCode, moduleName, date, time"
	}
	return ""
}

func GetTimetableAPI(c *fiber.Ctx) error {
	entries, err := GetAllEntries(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, entries)
}

func CreateEntryAPI(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return respond.ValidationError(c, msg)
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	e := &models.ExamEntry{
		ModuleCode: req.ModuleCode,
		ModuleName: req.ModuleName,
		ExamDate:   req.Date,
		ExamTime:   req.Time,
		Venue:      req.Venue,
		UserID:     ownerID,
	}
	if err := CreateEntry(db, e); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added exam: %s (%s) on %s", e.ModuleName, e.ModuleCode, e.ExamDate),
		"timetable", "added")

	return respond.Created(c, fiber.Map{
		"id":      e.ID,
		"message": "Timetable entry added successfully",
	})
}

func UpdateEntryAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid timetable entry ID")
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return respond.ValidationError(c, msg)
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	e := &models.ExamEntry{
		ID:         id,
		ModuleCode: req.ModuleCode,
		ModuleName: req.ModuleName,
		ExamDate:   req.Date,
		ExamTime:   req.Time,
		Venue:      req.Venue,
		UserID:     ownerID,
	}
	if err := UpdateEntry(db, e); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated exam: %s (%s)", e.ModuleName, e.ModuleCode), "timetable", "updated")

	return respond.Success(c, fiber.Map{"message": "Timetable entry updated successfully"})
}

func DeleteEntryAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid timetable entry ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteEntry(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted exam entry", "timetable", "deleted")

	return respond.Success(c, fiber.Map{"message": "Timetable entry deleted successfully"})
}
