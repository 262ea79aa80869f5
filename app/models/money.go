package models

import "time"

// Money record statuses
const (
	MoneyStatusPending   = "pending"
	MoneyStatusReturned  = "returned"
	MoneyStatusCancelled = "cancelled"
)

// MoneyRecord tracks money lent out to a person.
type MoneyRecord struct {
	ID                 int       `json:"id" db:"id"`
	PersonName         string    `json:"person_name" db:"person_name"`
	Amount             float64   `json:"amount" db:"amount"`
	BorrowDate         string    `json:"borrow_date" db:"borrow_date"`
	ExpectedReturnDate *string   `json:"expected_return_date,omitempty" db:"expected_return_date"`
	Status             string    `json:"status" db:"status"`
	UserID             int       `json:"user_id" db:"user_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
