package models

import "time"

// Module represents a course module the user is enrolled in
type Module struct {
	ID        int       `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Name      string    `json:"name" db:"name"`
	Lecturer  string    `json:"lecturer,omitempty" db:"lecturer"`
	Semester  int       `json:"semester" db:"semester"`
	Year      int       `json:"year" db:"year"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
