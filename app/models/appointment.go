package models

import "time"

// Appointment statuses
const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Notification lead times
const (
	Notification30Min = "30min"
	Notification2Hrs  = "2hours"
	Notification1Day  = "1day"
	NotificationNone  = "none"
)

type Appointment struct {
	ID              int       `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Place           string    `json:"place,omitempty" db:"place"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	Aim             string    `json:"aim,omitempty" db:"aim"`
	Notification    string    `json:"notification" db:"notification"`
	Status          string    `json:"status" db:"status"`
	UserID          int       `json:"user_id" db:"user_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
