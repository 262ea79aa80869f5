package marks

import (
	"math"

	"personal-management/app/models"
)

// MaxCAMarks is the CA ceiling per module. Marks accumulate without an upper
// bound at write time; percentages clamp here.
const MaxCAMarks = 40.0

// Per-module status bands by total marks
const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusFailed    = "failed"
)

const (
	colorExcellent = "#28a745"
	colorGood      = "#ffc107"
	colorFailed    = "#dc3545"
)

// classifyModule assigns the status band for a module's accumulated marks.
// Totals above the 40-mark ceiling stay in the excellent band.
func classifyModule(totalMarks float64) (status, color string) {
	switch {
	case totalMarks >= 26:
		return StatusExcellent, colorExcellent
	case totalMarks >= 21:
		return StatusGood, colorGood
	default:
		return StatusFailed, colorFailed
	}
}

// BuildProgressReport turns the grouped per-module totals into the CA
// progress report. Pure function: deterministic, no I/O.
func BuildProgressReport(totals []models.ModuleMarks) *models.ProgressReport {
	report := &models.ProgressReport{
		MaxMarksPerModule: MaxCAMarks,
		Status:            StatusFailed,
		StatusColor:       colorFailed,
		Modules:           []models.ModuleProgress{},
	}

	percentageSum := 0
	for _, mm := range totals {
		percentage := int(math.Round(math.Min(mm.TotalMarks/MaxCAMarks*100, 100)))
		status, color := classifyModule(mm.TotalMarks)

		switch status {
		case StatusExcellent:
			report.ExcellentModules++
		case StatusGood:
			report.GoodModules++
		default:
			report.FailedModules++
		}
		report.TotalModules++
		percentageSum += percentage

		report.Modules = append(report.Modules, models.ModuleProgress{
			ModuleID:        mm.ModuleID,
			ModuleName:      mm.ModuleName,
			ModuleCode:      mm.ModuleCode,
			TotalMarks:      mm.TotalMarks,
			AssessmentCount: mm.AssessmentCount,
			Percentage:      percentage,
			RemainingMarks:  math.Max(MaxCAMarks-mm.TotalMarks, 0),
			Status:          status,
			StatusColor:     color,
		})
	}

	if report.TotalModules == 0 {
		return report
	}

	report.Percentage = int(math.Round(float64(percentageSum) / float64(report.TotalModules)))

	// Overall band from the distribution of per-module bands: all excellent
	// wins outright; otherwise 60% of modules at good-or-better earns good.
	goodOrBetter := report.ExcellentModules + report.GoodModules
	switch {
	case report.ExcellentModules == report.TotalModules:
		report.Status = StatusExcellent
		report.StatusColor = colorExcellent
	case goodOrBetter > 0 && float64(goodOrBetter) >= 0.6*float64(report.TotalModules):
		report.Status = StatusGood
		report.StatusColor = colorGood
	default:
		report.Status = StatusFailed
		report.StatusColor = colorFailed
	}

	return report
}
