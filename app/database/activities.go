package database

import (
	"database/sql"
	"log"
	"personal-management/app/models"
)

// Activity rows older than this many days are eligible for pruning.
const activityRetentionDays = 30

// How many entries the activity feed returns.
const activityFeedLimit = 10

// LogActivity appends one activity row. It is fire-and-forget: a failure is
// logged and swallowed, because the mutation it describes has already been
// durably written. Each successful write also triggers an opportunistic
// prune of expired rows.
func LogActivity(db *sql.DB, ownerID int, description, activityType, status string) {
	_, err := db.Exec(
		`INSERT INTO activities (description, type, status, user_id) VALUES ($1, $2, $3, $4)`,
		description, activityType, status, ownerID,
	)
	if err != nil {
		log.Printf("Failed to log activity %q: %v", description, err)
		return
	}

	if pruned, err := PruneOldActivities(db); err != nil {
		log.Printf("Failed to prune old activities: %v", err)
	} else if pruned > 0 {
		log.Printf("Pruned %d activities older than %d days", pruned, activityRetentionDays)
	}
}

// PruneOldActivities deletes rows past the retention window and reports how
// many were removed.
func PruneOldActivities(db *sql.DB) (int64, error) {
	result, err := db.Exec(
		`DELETE FROM activities WHERE created_at < NOW() - INTERVAL '30 days'`,
	)
	if err != nil {
		return 0, Classify(err)
	}
	return result.RowsAffected()
}

// GetRecentActivities returns the newest entries, capped at the feed limit.
func GetRecentActivities(db *sql.DB, ownerID int) ([]*models.ActivityLogEntry, error) {
	rows, err := db.Query(
		`SELECT id, description, type, status, user_id, created_at
		 FROM activities WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		ownerID, activityFeedLimit,
	)
	if err != nil {
		return nil, Classify(err)
	}
	defer rows.Close()

	activities := []*models.ActivityLogEntry{}
	for rows.Next() {
		a := &models.ActivityLogEntry{}
		if err := rows.Scan(&a.ID, &a.Description, &a.Type, &a.Status, &a.UserID, &a.CreatedAt); err != nil {
			return nil, Classify(err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// ClearAllActivities deletes every activity row for the owner, then logs one
// entry describing the clear itself.
func ClearAllActivities(db *sql.DB, ownerID int) (int64, error) {
	result, err := db.Exec(`DELETE FROM activities WHERE user_id = $1`, ownerID)
	if err != nil {
		return 0, Classify(err)
	}
	cleared, err := result.RowsAffected()
	if err != nil {
		return 0, Classify(err)
	}

	LogActivity(db, ownerID, "Cleared all recent activities", "system", "cleared")
	return cleared, nil
}
