package marks

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllMarks(db *sql.DB, ownerID int) ([]*models.MarkEntry, error) {
	query := `SELECT m.id, m.module_id, m.module_name, COALESCE(m.lecturer, ''), m.category,
			  m.marks, to_char(m.marks_date, 'YYYY-MM-DD'), m.user_id, m.created_at, m.updated_at,
			  COALESCE(mo.code, '')
			  FROM marks m
			  LEFT JOIN modules mo ON m.module_id = mo.id
			  WHERE m.user_id = $1
			  ORDER BY m.marks_date DESC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	entries := []*models.MarkEntry{}
	for rows.Next() {
		e := &models.MarkEntry{}
		err := rows.Scan(&e.ID, &e.ModuleID, &e.ModuleName, &e.Lecturer, &e.Category,
			&e.Marks, &e.MarksDate, &e.UserID, &e.CreatedAt, &e.UpdatedAt, &e.ModuleCode)
		if err != nil {
			return nil, database.Classify(err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CreateMark inserts one assessment result. Module name and lecturer must
// already be snapshotted onto the entry by the caller.
func CreateMark(db *sql.DB, e *models.MarkEntry) error {
	query := `INSERT INTO marks (module_id, module_name, lecturer, category, marks, marks_date, user_id)
			  VALUES ($1, $2, $3, $4, $5, CURRENT_DATE, $6)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, e.ModuleID, e.ModuleName, e.Lecturer, e.Category, e.Marks, e.UserID).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateMark(db *sql.DB, e *models.MarkEntry) error {
	query := `UPDATE marks
			  SET module_id = $1, module_name = $2, lecturer = $3, category = $4, marks = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, e.ModuleID, e.ModuleName, e.Lecturer, e.Category, e.Marks, e.ID, e.UserID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("marks entry")
	}
	return nil
}

func DeleteMark(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM marks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("marks entry")
	}
	return nil
}

// GetModuleMarkTotals groups all mark entries for the owner by module,
// summing marks and counting assessments, ordered by total descending.
// Modules with no marks recorded never appear in the result.
func GetModuleMarkTotals(db *sql.DB, ownerID int) ([]models.ModuleMarks, error) {
	query := `SELECT m.module_id, m.module_name, COALESCE(mo.code, ''),
			  SUM(m.marks) AS total_marks, COUNT(*) AS assessment_count
			  FROM marks m
			  LEFT JOIN modules mo ON m.module_id = mo.id
			  WHERE m.user_id = $1
			  GROUP BY m.module_id, m.module_name, mo.code
			  ORDER BY total_marks DESC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	totals := []models.ModuleMarks{}
	for rows.Next() {
		var mm models.ModuleMarks
		err := rows.Scan(&mm.ModuleID, &mm.ModuleName, &mm.ModuleCode, &mm.TotalMarks, &mm.AssessmentCount)
		if err != nil {
			return nil, database.Classify(err)
		}
		totals = append(totals, mm)
	}
	return totals, nil
}
