package fees

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllFees(db *sql.DB, ownerID int) ([]*models.SchoolFee, error) {
	query := `SELECT id, year, semester, amount, to_char(payment_date, 'YYYY-MM-DD'),
			  payment_method, user_id, created_at, updated_at
			  FROM school_fees WHERE user_id = $1 ORDER BY year, semester`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	fees := []*models.SchoolFee{}
	for rows.Next() {
		f := &models.SchoolFee{}
		err := rows.Scan(&f.ID, &f.Year, &f.Semester, &f.Amount, &f.PaymentDate,
			&f.PaymentMethod, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		fees = append(fees, f)
	}
	return fees, nil
}

func GetFeeByID(db *sql.DB, id, ownerID int) (*models.SchoolFee, error) {
	f := &models.SchoolFee{}
	query := `SELECT id, year, semester, amount, to_char(payment_date, 'YYYY-MM-DD'),
			  payment_method, user_id, created_at, updated_at
			  FROM school_fees WHERE id = $1 AND user_id = $2`

	err := db.QueryRow(query, id, ownerID).Scan(
		&f.ID, &f.Year, &f.Semester, &f.Amount, &f.PaymentDate,
		&f.PaymentMethod, &f.UserID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err)
	}
	return f, nil
}

func CreateFee(db *sql.DB, f *models.SchoolFee) error {
	query := `INSERT INTO school_fees (year, semester, amount, payment_date, payment_method, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, f.Year, f.Semester, f.Amount, f.PaymentDate, f.PaymentMethod, f.UserID).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateFee(db *sql.DB, f *models.SchoolFee) error {
	query := `UPDATE school_fees
			  SET year = $1, semester = $2, amount = $3, payment_date = $4, payment_method = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, f.Year, f.Semester, f.Amount, f.PaymentDate, f.PaymentMethod, f.ID, f.UserID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("school fee payment")
	}
	return nil
}

func DeleteFee(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM school_fees WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("school fee payment")
	}
	return nil
}
