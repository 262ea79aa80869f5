package models

// DashboardStats is the fixed-shape summary shown on the dashboard. Every
// field is filled independently; a failed sub-query leaves its zero value.
type DashboardStats struct {
	ModuleCount          int     `json:"moduleCount"`
	AppointmentCount     int     `json:"appointmentCount"`
	AppointmentCompleted int     `json:"appointmentCompleted"`
	MoneyOwed            float64 `json:"moneyOwed"`
	MoneyReturned        float64 `json:"moneyReturned"`
	JourneyCount         int     `json:"journeyCount"`
	JourneyCompleted     int     `json:"journeyCompleted"`
	SavingsTotal         float64 `json:"savingsTotal"`
	ExamCount            int     `json:"examCount"`
	RecentActivityCount  int     `json:"recentActivityCount"`
}
