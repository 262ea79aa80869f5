package savings

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllEntries(db *sql.DB, ownerID int) ([]*models.SavingsEntry, error) {
	query := `SELECT id, amount, to_char(date, 'YYYY-MM-DD'), user_id, created_at
			  FROM savings WHERE user_id = $1 ORDER BY date DESC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	entries := []*models.SavingsEntry{}
	for rows.Next() {
		e := &models.SavingsEntry{}
		if err := rows.Scan(&e.ID, &e.Amount, &e.Date, &e.UserID, &e.CreatedAt); err != nil {
			return nil, database.Classify(err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func CreateEntry(db *sql.DB, e *models.SavingsEntry) error {
	query := `INSERT INTO savings (amount, date, user_id) VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	err := db.QueryRow(query, e.Amount, e.Date, e.UserID).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func DeleteEntry(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM savings WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("savings entry")
	}
	return nil
}
