package models

import "time"

// ExamEntry is a row in the exam timetable. Module code and name are copied
// from the form at insert time, so later module edits do not rewrite history.
type ExamEntry struct {
	ID         int       `json:"id" db:"id"`
	ModuleCode string    `json:"module_code" db:"module_code"`
	ModuleName string    `json:"module_name" db:"module_name"`
	ExamDate   string    `json:"exam_date" db:"exam_date"`
	ExamTime   string    `json:"exam_time" db:"exam_time"`
	Venue      string    `json:"venue,omitempty" db:"venue"`
	UserID     int       `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
