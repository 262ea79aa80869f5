package database

import (
	"database/sql"
	"personal-management/app/models"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, COALESCE(email, ''), created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, Classify(err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, COALESCE(email, ''), created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, Classify(err)
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	result, err := db.Exec(
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID,
	)
	if err != nil {
		return Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return Classify(err)
	}
	if rows == 0 {
		return NotFound("user")
	}
	return nil
}
