package models

import "time"

// ActivityLogEntry is one row of the append-only activity trail. Rows older
// than 30 days are pruned lazily after successful writes.
type ActivityLogEntry struct {
	ID          int       `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
	Status      string    `json:"status" db:"status"`
	UserID      int       `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
