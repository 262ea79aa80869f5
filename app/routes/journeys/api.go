package journeys

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

// journeyRequest deliberately has no total field: the total is derived from
// transport + food and never trusted from the client.
type journeyRequest struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	TransportCost float64 `json:"transportCost"`
	FoodCost      float64 `json:"foodCost"`
	Status        string  `json:"status"`
}

var validStatuses = map[string]bool{
	models.JourneyStatusPending:   true,
	models.JourneyStatusCompleted: true,
	models.JourneyStatusCancelled: true,
}

func GetJourneysAPI(c *fiber.Ctx) error {
	journeys, err := GetAllJourneys(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, journeys)
}

func CreateJourneyAPI(c *fiber.Ctx) error {
	var req journeyRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.From == "" || req.To == "" || req.Date == "" {
		return respond.ValidationError(c, "Missing required fields: from, to, date")
	}
	if req.Time == "" {
		req.Time = "00:00"
	}
	if req.Status == "" {
		req.Status = models.JourneyStatusPending
	}
	if !validStatuses[req.Status] {
		return respond.ValidationError(c, "Status must be one of: pending, completed, cancelled")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	j := &models.Journey{
		From:          req.From,
		To:            req.To,
		JourneyDate:   req.Date,
		JourneyTime:   req.Time,
		TransportCost: req.TransportCost,
		FoodCost:      req.FoodCost,
		Status:        req.Status,
		UserID:        ownerID,
	}
	if err := CreateJourney(db, j); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added journey: %s to %s on %s", j.From, j.To, j.JourneyDate),
		"journey", "added")

	return respond.Created(c, fiber.Map{
		"id":      j.ID,
		"message": "Journey added successfully",
	})
}

func UpdateJourneyAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid journey ID")
	}

	var req journeyRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.From == "" || req.To == "" || req.Date == "" {
		return respond.ValidationError(c, "Missing required fields: from, to, date")
	}
	if req.Time == "" {
		req.Time = "00:00"
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	j := &models.Journey{
		ID:            id,
		From:          req.From,
		To:            req.To,
		JourneyDate:   req.Date,
		JourneyTime:   req.Time,
		TransportCost: req.TransportCost,
		FoodCost:      req.FoodCost,
		UserID:        ownerID,
	}
	if err := UpdateJourney(db, j); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated journey: %s to %s", j.From, j.To), "journey", "updated")

	return respond.Success(c, fiber.Map{"message": "Journey updated successfully"})
}

// UpdateJourneyStatusAPI sets any valid status; unlike appointments this is
// a freely settable transition.
func UpdateJourneyStatusAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid journey ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if !validStatuses[req.Status] {
		return respond.ValidationError(c, "Status must be one of: pending, completed, cancelled")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := UpdateJourneyStatus(db, id, ownerID, req.Status); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated journey status to %s", req.Status), "journey", "status_updated")

	return respond.Success(c, fiber.Map{"message": fmt.Sprintf("Journey marked as %s", req.Status)})
}

func DeleteJourneyAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid journey ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteJourney(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted journey", "journey", "deleted")

	return respond.Success(c, fiber.Map{"message": "Journey deleted successfully"})
}
