package timetable

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllEntries(db *sql.DB, ownerID int) ([]*models.ExamEntry, error) {
	query := `SELECT id, module_code, module_name, to_char(exam_date, 'YYYY-MM-DD'),
			  to_char(exam_time, 'HH24:MI'), COALESCE(venue, ''), user_id, created_at, updated_at
			  FROM timetable WHERE user_id = $1 ORDER BY exam_date`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	entries := []*models.ExamEntry{}
	for rows.Next() {
		e := &models.ExamEntry{}
		err := rows.Scan(&e.ID, &e.ModuleCode, &e.ModuleName, &e.ExamDate, &e.ExamTime,
			&e.Venue, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func CreateEntry(db *sql.DB, e *models.ExamEntry) error {
	query := `INSERT INTO timetable (module_code, module_name, exam_date, exam_time, venue, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, e.ModuleCode, e.ModuleName, e.ExamDate, e.ExamTime, e.Venue, e.UserID).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateEntry(db *sql.DB, e *models.ExamEntry) error {
	query := `UPDATE timetable
			  SET module_code = $1, module_name = $2, exam_date = $3, exam_time = $4, venue = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, e.ModuleCode, e.ModuleName, e.ExamDate, e.ExamTime, e.Venue, e.ID, e.UserID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("timetable entry")
	}
	return nil
}

func DeleteEntry(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM timetable WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("timetable entry")
	}
	return nil
}
