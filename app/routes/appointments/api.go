package appointments

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

type appointmentRequest struct {
	Name         string `json:"name"`
	Place        string `json:"place"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Aim          string `json:"aim"`
	Notification string `json:"notification"`
}

var validNotifications = map[string]bool{
	models.Notification30Min: true,
	models.Notification2Hrs:  true,
	models.Notification1Day:  true,
	models.NotificationNone:  true,
}

var validStatuses = map[string]bool{
	models.AppointmentStatusUpcoming:  true,
	models.AppointmentStatusCompleted: true,
	models.AppointmentStatusCancelled: true,
}

func GetAppointmentsAPI(c *fiber.Ctx) error {
	appts, err := GetAllAppointments(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Success(c, appts)
}

func CreateAppointmentAPI(c *fiber.Ctx) error {
	var req appointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Name == "" || req.Date == "" || req.Time == "" {
		return respond.ValidationError(c, "Missing required fields: name, date, time")
	}
	if req.Notification == "" {
		req.Notification = models.NotificationNone
	}
	if !validNotifications[req.Notification] {
		return respond.ValidationError(c, "Notification must be one of: 30min, 2hours, 1day, none")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	a := &models.Appointment{
		Name:            req.Name,
		Place:           req.Place,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		Aim:             req.Aim,
		Notification:    req.Notification,
		UserID:          ownerID,
	}
	if err := CreateAppointment(db, a); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Added appointment: %s on %s at %s", a.Name, a.AppointmentDate, a.AppointmentTime),
		"appointment", "added")

	return respond.Created(c, fiber.Map{
		"id":      a.ID,
		"message": "Appointment added successfully",
	})
}

// CompleteAppointmentAPI is the upcoming -> completed transition.
func CompleteAppointmentAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid appointment ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := UpdateStatus(db, id, ownerID, models.AppointmentStatusCompleted); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Completed appointment", "appointment", "completed")

	return respond.Success(c, fiber.Map{"message": "Appointment marked as completed"})
}

// UpdateStatusAPI sets any valid status.
func UpdateStatusAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid appointment ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if !validStatuses[req.Status] {
		return respond.ValidationError(c, "Status must be one of: upcoming, completed, cancelled")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := UpdateStatus(db, id, ownerID, req.Status); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID,
		fmt.Sprintf("Updated appointment status to %s", req.Status), "appointment", "updated")

	return respond.Success(c, fiber.Map{
		"message": fmt.Sprintf("Appointment status updated to %s", req.Status),
		"status":  req.Status,
	})
}

func DeleteAppointmentAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.ValidationError(c, "Invalid appointment ID")
	}

	db := config.GetDB()
	ownerID := auth.OwnerID(c)
	if err := DeleteAppointment(db, id, ownerID); err != nil {
		return respond.Error(c, err)
	}

	database.LogActivity(db, ownerID, "Deleted appointment", "appointment", "deleted")

	return respond.Success(c, fiber.Map{"message": "Appointment deleted successfully"})
}
