package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"personal-management/app/config"
)

// Creates or resets an application user from the command line.
func main() {
	username := flag.String("username", "admin", "username to create or update")
	password := flag.String("password", "", "password to set (required)")
	email := flag.String("email", "", "email address")
	flag.Parse()

	if *password == "" {
		log.Fatal("A password is required: -password <value>")
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (username, password, email) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, updated_at = NOW()
	`, *username, string(hash), *email)
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User %q created or updated successfully\n", *username)
}
