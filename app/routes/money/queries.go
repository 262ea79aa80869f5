package money

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllRecords(db *sql.DB, ownerID int) ([]*models.MoneyRecord, error) {
	query := `SELECT id, person_name, amount, to_char(borrow_date, 'YYYY-MM-DD'),
			  to_char(expected_return_date, 'YYYY-MM-DD'), status, user_id, created_at, updated_at
			  FROM money_records WHERE user_id = $1 ORDER BY borrow_date`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	records := []*models.MoneyRecord{}
	for rows.Next() {
		r := &models.MoneyRecord{}
		var returnDate sql.NullString
		err := rows.Scan(&r.ID, &r.PersonName, &r.Amount, &r.BorrowDate, &returnDate,
			&r.Status, &r.UserID, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		if returnDate.Valid {
			r.ExpectedReturnDate = &returnDate.String
		}
		records = append(records, r)
	}
	return records, nil
}

func CreateRecord(db *sql.DB, r *models.MoneyRecord) error {
	query := `INSERT INTO money_records (person_name, amount, borrow_date, expected_return_date, user_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, status, created_at, updated_at`

	err := db.QueryRow(query, r.PersonName, r.Amount, r.BorrowDate, r.ExpectedReturnDate, r.UserID).
		Scan(&r.ID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

// MarkReturned flips a record to returned. Concurrent calls on the same id
// are last-write-wins; the transition is not serialized.
func MarkReturned(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(
		`UPDATE money_records SET status = 'returned', updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("money record")
	}
	return nil
}

func DeleteRecord(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM money_records WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("money record")
	}
	return nil
}
