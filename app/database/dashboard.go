package database

import (
	"database/sql"
	"log"
	"personal-management/app/models"
)

// GetDashboardStats fills the dashboard summary with one independent query
// per field. A failing sub-query leaves its field at zero and is logged; the
// call itself never returns an error, so a single broken table cannot blank
// the whole dashboard.
func GetDashboardStats(db *sql.DB, ownerID int) *models.DashboardStats {
	stats := &models.DashboardStats{}

	countInto(db, &stats.ModuleCount, "modules",
		`SELECT COUNT(*) FROM modules WHERE user_id = $1`, ownerID)

	countInto(db, &stats.AppointmentCount, "upcoming appointments",
		`SELECT COUNT(*) FROM appointments WHERE user_id = $1 AND status = 'upcoming'`, ownerID)

	countInto(db, &stats.AppointmentCompleted, "completed appointments",
		`SELECT COUNT(*) FROM appointments WHERE user_id = $1 AND status = 'completed'`, ownerID)

	sumInto(db, &stats.MoneyOwed, "money owed",
		`SELECT COALESCE(SUM(amount), 0) FROM money_records WHERE user_id = $1 AND status = 'pending'`, ownerID)

	sumInto(db, &stats.MoneyReturned, "money returned",
		`SELECT COALESCE(SUM(amount), 0) FROM money_records WHERE user_id = $1 AND status = 'returned'`, ownerID)

	countInto(db, &stats.JourneyCount, "journeys",
		`SELECT COUNT(*) FROM journeys WHERE user_id = $1`, ownerID)

	countInto(db, &stats.JourneyCompleted, "completed journeys",
		`SELECT COUNT(*) FROM journeys WHERE user_id = $1 AND status = 'completed'`, ownerID)

	sumInto(db, &stats.SavingsTotal, "savings total",
		`SELECT COALESCE(SUM(amount), 0) FROM savings WHERE user_id = $1`, ownerID)

	countInto(db, &stats.ExamCount, "exam timetable entries",
		`SELECT COUNT(*) FROM timetable WHERE user_id = $1`, ownerID)

	countInto(db, &stats.RecentActivityCount, "recent activities",
		`SELECT COUNT(*) FROM activities WHERE user_id = $1 AND created_at >= NOW() - INTERVAL '7 days'`, ownerID)

	return stats
}

func countInto(db *sql.DB, dst *int, what, query string, args ...interface{}) {
	if err := db.QueryRow(query, args...).Scan(dst); err != nil {
		log.Printf("Dashboard: failed to count %s: %v", what, err)
		*dst = 0
	}
}

func sumInto(db *sql.DB, dst *float64, what, query string, args ...interface{}) {
	if err := db.QueryRow(query, args...).Scan(dst); err != nil {
		log.Printf("Dashboard: failed to sum %s: %v", what, err)
		*dst = 0
	}
}
