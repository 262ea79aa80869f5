package models

import "time"

// SchoolFee is a tuition payment for a given year and semester.
type SchoolFee struct {
	ID            int       `json:"id" db:"id"`
	Year          int       `json:"year" db:"year"`
	Semester      string    `json:"semester" db:"semester"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentDate   string    `json:"payment_date" db:"payment_date"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	UserID        int       `json:"user_id" db:"user_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// MaxSemesterFee caps a single semester payment (TZS).
const MaxSemesterFee = 500000
