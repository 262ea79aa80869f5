package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations bootstraps the schema and seeds the default user. Every
// statement is idempotent so startup can run this unconditionally.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			email VARCHAR(100),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS modules (
			id SERIAL PRIMARY KEY,
			code VARCHAR(20) NOT NULL,
			name VARCHAR(100) NOT NULL,
			lecturer VARCHAR(100) DEFAULT '',
			semester INT NOT NULL DEFAULT 1,
			year INT NOT NULL DEFAULT 1,
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS timetable (
			id SERIAL PRIMARY KEY,
			module_code VARCHAR(20) NOT NULL,
			module_name VARCHAR(100) NOT NULL,
			exam_date DATE NOT NULL,
			exam_time TIME NOT NULL,
			venue VARCHAR(100) DEFAULT '',
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS marks (
			id SERIAL PRIMARY KEY,
			module_id INT NOT NULL,
			module_name VARCHAR(100) NOT NULL,
			lecturer VARCHAR(100) DEFAULT '',
			category VARCHAR(30) NOT NULL DEFAULT 'test01'
				CHECK (category IN ('group-assignment', 'individual-assignment', 'test01', 'test02', 'presentation')),
			marks DECIMAL(5,2) NOT NULL,
			marks_date DATE NOT NULL DEFAULT CURRENT_DATE,
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS money_records (
			id SERIAL PRIMARY KEY,
			person_name VARCHAR(100) NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			borrow_date DATE NOT NULL,
			expected_return_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'returned', 'cancelled')),
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS savings (
			id SERIAL PRIMARY KEY,
			amount DECIMAL(10,2) NOT NULL,
			date DATE NOT NULL,
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			place VARCHAR(100) DEFAULT '',
			appointment_date DATE NOT NULL,
			appointment_time TIME NOT NULL,
			aim TEXT DEFAULT '',
			notification VARCHAR(10) NOT NULL DEFAULT 'none'
				CHECK (notification IN ('30min', '2hours', '1day', 'none')),
			status VARCHAR(20) NOT NULL DEFAULT 'upcoming'
				CHECK (status IN ('upcoming', 'completed', 'cancelled')),
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS journeys (
			id SERIAL PRIMARY KEY,
			journey_from VARCHAR(100) NOT NULL,
			journey_to VARCHAR(100) NOT NULL,
			journey_date DATE NOT NULL,
			journey_time TIME DEFAULT '00:00:00',
			transport_cost DECIMAL(10,2) NOT NULL DEFAULT 0,
			food_cost DECIMAL(10,2) NOT NULL DEFAULT 0,
			total_cost DECIMAL(10,2) GENERATED ALWAYS AS (transport_cost + food_cost) STORED,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'completed', 'cancelled')),
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS activities (
			id SERIAL PRIMARY KEY,
			description VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS school_fees (
			id SERIAL PRIMARY KEY,
			year INT NOT NULL,
			semester VARCHAR(20) NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			payment_date DATE NOT NULL,
			payment_method VARCHAR(30) NOT NULL DEFAULT 'cash',
			user_id INT DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Migration failed: %v", err)
			return Classify(err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_marks_module_id ON marks(module_id)`,
		`CREATE INDEX IF NOT EXISTS idx_marks_user_id ON marks(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_money_records_status ON money_records(status)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_journeys_status ON journeys(status)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			// Duplicate index races are harmless on older PG versions
			log.Printf("Index migration warning: %v", err)
		}
	}

	if err := seedDefaultUser(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedDefaultUser inserts the single-tenant deployment user if absent.
func seedDefaultUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE username = $1`, "admin").Scan(&count); err != nil {
		return Classify(err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), 14)
	if err != nil {
		return &Error{Kind: KindUnknown, Err: err}
	}

	_, err = db.Exec(
		`INSERT INTO users (username, password, email) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING`,
		"admin", string(hash), "admin@example.com",
	)
	if err != nil {
		return Classify(err)
	}
	log.Println("Seeded default user 'admin' (password 'changeme')")
	return nil
}
