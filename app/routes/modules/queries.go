package modules

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllModules(db *sql.DB, ownerID int) ([]*models.Module, error) {
	query := `SELECT id, code, name, COALESCE(lecturer, ''), semester, year, user_id, created_at, updated_at
			  FROM modules WHERE user_id = $1 ORDER BY code`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	mods := []*models.Module{}
	for rows.Next() {
		m := &models.Module{}
		err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Lecturer, &m.Semester, &m.Year,
			&m.UserID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

func GetModuleByID(db *sql.DB, id, ownerID int) (*models.Module, error) {
	m := &models.Module{}
	query := `SELECT id, code, name, COALESCE(lecturer, ''), semester, year, user_id, created_at, updated_at
			  FROM modules WHERE id = $1 AND user_id = $2`

	err := db.QueryRow(query, id, ownerID).Scan(
		&m.ID, &m.Code, &m.Name, &m.Lecturer, &m.Semester, &m.Year,
		&m.UserID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err)
	}
	return m, nil
}

func CreateModule(db *sql.DB, m *models.Module) error {
	query := `INSERT INTO modules (code, name, lecturer, semester, year, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, m.Code, m.Name, m.Lecturer, m.Semester, m.Year, m.UserID).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateModule(db *sql.DB, m *models.Module) error {
	query := `UPDATE modules
			  SET code = $1, name = $2, lecturer = $3, semester = $4, year = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, m.Code, m.Name, m.Lecturer, m.Semester, m.Year, m.ID, m.UserID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("module")
	}
	return nil
}

func DeleteModule(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM modules WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("module")
	}
	return nil
}
