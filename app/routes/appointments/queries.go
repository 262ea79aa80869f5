package appointments

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

func GetAllAppointments(db *sql.DB, ownerID int) ([]*models.Appointment, error) {
	query := `SELECT id, name, COALESCE(place, ''), to_char(appointment_date, 'YYYY-MM-DD'),
			  to_char(appointment_time, 'HH24:MI'), COALESCE(aim, ''), notification, status,
			  user_id, created_at, updated_at
			  FROM appointments WHERE user_id = $1 ORDER BY appointment_date, appointment_time`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	appts := []*models.Appointment{}
	for rows.Next() {
		a := &models.Appointment{}
		err := rows.Scan(&a.ID, &a.Name, &a.Place, &a.AppointmentDate, &a.AppointmentTime,
			&a.Aim, &a.Notification, &a.Status, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

func CreateAppointment(db *sql.DB, a *models.Appointment) error {
	query := `INSERT INTO appointments (name, place, appointment_date, appointment_time, aim, notification, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, status, created_at, updated_at`

	err := db.QueryRow(query, a.Name, a.Place, a.AppointmentDate, a.AppointmentTime,
		a.Aim, a.Notification, a.UserID).
		Scan(&a.ID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateStatus(db *sql.DB, id, ownerID int, status string) error {
	result, err := db.Exec(
		`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		status, id, ownerID,
	)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("appointment")
	}
	return nil
}

func DeleteAppointment(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM appointments WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("appointment")
	}
	return nil
}
