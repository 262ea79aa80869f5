package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	Port      string
}

var AppConfig *Config

// DefaultOwnerID is the owner every record falls back to when no session is
// present. The schema carries a real user_id column, but this is a
// single-user deployment.
const DefaultOwnerID = 1

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	// .env is optional; deployments usually set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var psqlInfo string
	if url := os.Getenv("DATABASE_URL"); url != "" {
		psqlInfo = url
		log.Println("Using DATABASE_URL for PostgreSQL connection")
	} else {
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnv("DB_NAME", "personal_management")
		sslmode := getEnv("DB_SSLMODE", "disable")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=10",
			host, port, user, dbname, sslmode)
		if password != "" {
			psqlInfo += " password=" + password
		}
		log.Printf("Connecting to PostgreSQL at %s:%s/%s", host, port, dbname)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Small fixed pool; excess requests queue inside database/sql
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("\n=== DATABASE CONNECTION FAILED ===")
		log.Println("To run with a local PostgreSQL database:")
		log.Println("1. Install PostgreSQL locally")
		log.Println("2. Create database: createdb personal_management")
		log.Println("3. Set DB_HOST/DB_USER/DB_PASSWORD (or DATABASE_URL)")
		log.Println("4. Run the application again")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: getEnv("JWT_SECRET", "personal-management-secret-key"),
		Port:      getEnv("PORT", "8080"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
