package services

import (
	"database/sql"
	"log"
	"time"

	"personal-management/app/database"
)

// StartScheduler runs background maintenance. Pruning already happens
// opportunistically on every activity write; this sweep covers long idle
// periods where nothing is being logged.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Nightly sweep at 03:00
			if now.Hour() == 3 && now.Minute() == 0 {
				log.Println("Running scheduled activity prune [03:00]...")

				if pruned, err := database.PruneOldActivities(db); err != nil {
					log.Printf("Scheduled activity prune failed: %v", err)
				} else if pruned > 0 {
					log.Printf("Scheduled prune removed %d old activities", pruned)
				}
			}
		}
	}()
}
