package marks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-management/app/models"
)

func TestClassifyModule_Bands(t *testing.T) {
	tests := []struct {
		name       string
		totalMarks float64
		wantStatus string
		wantColor  string
	}{
		{"zero marks is failed", 0, StatusFailed, "#dc3545"},
		{"twenty is still failed", 20, StatusFailed, "#dc3545"},
		{"twenty one enters good", 21, StatusGood, "#ffc107"},
		{"twenty five is top of good", 25, StatusGood, "#ffc107"},
		{"twenty six enters excellent", 26, StatusExcellent, "#28a745"},
		{"forty is excellent", 40, StatusExcellent, "#28a745"},
		{"above the ceiling stays excellent", 43.5, StatusExcellent, "#28a745"},
		{"fractional boundary rounds down a band", 20.5, StatusFailed, "#dc3545"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, color := classifyModule(tt.totalMarks)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}

func TestBuildProgressReport_SingleModule(t *testing.T) {
	report := BuildProgressReport([]models.ModuleMarks{
		{ModuleID: 3, ModuleName: "Networks", ModuleCode: "CS202", TotalMarks: 27, AssessmentCount: 2},
	})

	require.Len(t, report.Modules, 1)
	mod := report.Modules[0]
	assert.Equal(t, 3, mod.ModuleID)
	assert.Equal(t, 27.0, mod.TotalMarks)
	assert.Equal(t, 68, mod.Percentage)
	assert.Equal(t, 13.0, mod.RemainingMarks)
	assert.Equal(t, StatusExcellent, mod.Status)

	assert.Equal(t, 1, report.TotalModules)
	assert.Equal(t, 1, report.ExcellentModules)
	assert.Equal(t, StatusExcellent, report.Status)
	assert.Equal(t, 68, report.Percentage)
	assert.Equal(t, 40.0, report.MaxMarksPerModule)
}

func TestBuildProgressReport_PercentageClampsAtHundred(t *testing.T) {
	report := BuildProgressReport([]models.ModuleMarks{
		{ModuleID: 1, ModuleName: "Maths", TotalMarks: 46, AssessmentCount: 5},
	})

	require.Len(t, report.Modules, 1)
	assert.Equal(t, 100, report.Modules[0].Percentage)
	assert.Equal(t, 0.0, report.Modules[0].RemainingMarks)
	assert.Equal(t, StatusExcellent, report.Modules[0].Status)
}

func TestBuildProgressReport_OverallStatus(t *testing.T) {
	tests := []struct {
		name       string
		totals     []float64
		wantStatus string
	}{
		{
			name:       "all excellent wins outright",
			totals:     []float64{30, 28, 40},
			wantStatus: StatusExcellent,
		},
		{
			name:       "one good among excellent drops to good",
			totals:     []float64{30, 28, 22},
			wantStatus: StatusGood,
		},
		{
			name:       "sixty percent good or better is good",
			totals:     []float64{22, 26, 30, 10, 5},
			wantStatus: StatusGood,
		},
		{
			name:       "below sixty percent is failed",
			totals:     []float64{22, 26, 10, 5, 3},
			wantStatus: StatusFailed,
		},
		{
			name:       "all failed is failed",
			totals:     []float64{10, 5},
			wantStatus: StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := make([]models.ModuleMarks, len(tt.totals))
			for i, tm := range tt.totals {
				totals[i] = models.ModuleMarks{ModuleID: i + 1, TotalMarks: tm}
			}
			report := BuildProgressReport(totals)
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, len(tt.totals), report.TotalModules)
		})
	}
}

func TestBuildProgressReport_OverallPercentageAveragesRoundedValues(t *testing.T) {
	// 27/40 -> 68%, 33/40 -> 83%; mean 75.5 rounds to 76.
	report := BuildProgressReport([]models.ModuleMarks{
		{ModuleID: 1, TotalMarks: 27},
		{ModuleID: 2, TotalMarks: 33},
	})

	assert.Equal(t, 76, report.Percentage)
}

func TestBuildProgressReport_NoModules(t *testing.T) {
	report := BuildProgressReport(nil)

	assert.Equal(t, 0, report.TotalModules)
	assert.Equal(t, 0, report.Percentage)
	assert.Equal(t, StatusFailed, report.Status)
	assert.NotNil(t, report.Modules)
	assert.Empty(t, report.Modules)
}

func TestBuildProgressReport_PreservesInputOrder(t *testing.T) {
	report := BuildProgressReport([]models.ModuleMarks{
		{ModuleID: 9, TotalMarks: 38},
		{ModuleID: 4, TotalMarks: 24},
		{ModuleID: 2, TotalMarks: 11},
	})

	require.Len(t, report.Modules, 3)
	assert.Equal(t, []int{9, 4, 2}, []int{
		report.Modules[0].ModuleID,
		report.Modules[1].ModuleID,
		report.Modules[2].ModuleID,
	})
}
