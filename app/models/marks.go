package models

import "time"

// Valid assessment categories for a mark entry
const (
	MarkCategoryGroupAssignment      = "group-assignment"
	MarkCategoryIndividualAssignment = "individual-assignment"
	MarkCategoryTest01               = "test01"
	MarkCategoryTest02               = "test02"
	MarkCategoryPresentation         = "presentation"
)

// MarkEntry is a single CA assessment result. Module name and lecturer are
// denormalized snapshots taken when the entry is recorded.
type MarkEntry struct {
	ID         int       `json:"id" db:"id"`
	ModuleID   int       `json:"module_id" db:"module_id"`
	ModuleName string    `json:"module_name" db:"module_name"`
	ModuleCode string    `json:"module_code,omitempty"`
	Lecturer   string    `json:"lecturer,omitempty" db:"lecturer"`
	Category   string    `json:"category" db:"category"`
	Marks      float64   `json:"marks" db:"marks"`
	MarksDate  string    `json:"marks_date" db:"marks_date"`
	UserID     int       `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// ModuleMarks is the grouped aggregate of all mark entries for one module.
type ModuleMarks struct {
	ModuleID        int     `json:"module_id"`
	ModuleName      string  `json:"module_name"`
	ModuleCode      string  `json:"module_code"`
	TotalMarks      float64 `json:"total_marks"`
	AssessmentCount int     `json:"assessment_count"`
}

// ModuleProgress is the classified per-module CA progress record.
type ModuleProgress struct {
	ModuleID        int     `json:"moduleId"`
	ModuleName      string  `json:"moduleName"`
	ModuleCode      string  `json:"moduleCode"`
	TotalMarks      float64 `json:"totalMarks"`
	AssessmentCount int     `json:"assessmentCount"`
	Percentage      int     `json:"percentage"`
	RemainingMarks  float64 `json:"remainingMarks"`
	Status          string  `json:"status"`
	StatusColor     string  `json:"statusColor"`
}

// ProgressReport summarizes CA progress across all modules with marks.
type ProgressReport struct {
	TotalModules      int              `json:"totalModules"`
	ExcellentModules  int              `json:"excellentModules"`
	GoodModules       int              `json:"goodModules"`
	FailedModules     int              `json:"failedModules"`
	MaxMarksPerModule float64          `json:"maxMarksPerModule"`
	Percentage        int              `json:"percentage"`
	Status            string           `json:"status"`
	StatusColor       string           `json:"statusColor"`
	Modules           []ModuleProgress `json:"modules"`
}
