package models

import "time"

// Journey statuses
const (
	JourneyStatusPending   = "pending"
	JourneyStatusCompleted = "completed"
	JourneyStatusCancelled = "cancelled"
)

// Journey is a planned or completed trip. TotalCost is a generated column
// (transport + food) and is never written directly.
type Journey struct {
	ID            int       `json:"id" db:"id"`
	From          string    `json:"journey_from" db:"journey_from"`
	To            string    `json:"journey_to" db:"journey_to"`
	JourneyDate   string    `json:"journey_date" db:"journey_date"`
	JourneyTime   string    `json:"journey_time" db:"journey_time"`
	TransportCost float64   `json:"transport_cost" db:"transport_cost"`
	FoodCost      float64   `json:"food_cost" db:"food_cost"`
	TotalCost     float64   `json:"total_cost" db:"total_cost"`
	Status        string    `json:"status" db:"status"`
	UserID        int       `json:"user_id" db:"user_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
