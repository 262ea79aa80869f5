package models

import "time"

// SavingsEntry is a single deposit into savings.
type SavingsEntry struct {
	ID        int       `json:"id" db:"id"`
	Amount    float64   `json:"amount" db:"amount"`
	Date      string    `json:"date" db:"date"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
