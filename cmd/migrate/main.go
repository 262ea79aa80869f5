package main

import (
	"log"

	"personal-management/app/config"
	"personal-management/app/database"
)

// Standalone migration runner for deployments that bootstrap the schema
// before starting the server.
func main() {
	log.Println("Starting manual migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
