package journeys

import (
	"database/sql"

	"personal-management/app/database"
	"personal-management/app/models"
)

// total_cost is a generated column; it is read back, never written.

func GetAllJourneys(db *sql.DB, ownerID int) ([]*models.Journey, error) {
	query := `SELECT id, journey_from, journey_to, to_char(journey_date, 'YYYY-MM-DD'),
			  to_char(journey_time, 'HH24:MI'), transport_cost, food_cost, total_cost,
			  status, user_id, created_at, updated_at
			  FROM journeys WHERE user_id = $1 ORDER BY journey_date`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	journeys := []*models.Journey{}
	for rows.Next() {
		j := &models.Journey{}
		err := rows.Scan(&j.ID, &j.From, &j.To, &j.JourneyDate, &j.JourneyTime,
			&j.TransportCost, &j.FoodCost, &j.TotalCost, &j.Status,
			&j.UserID, &j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, database.Classify(err)
		}
		journeys = append(journeys, j)
	}
	return journeys, nil
}

func CreateJourney(db *sql.DB, j *models.Journey) error {
	query := `INSERT INTO journeys (journey_from, journey_to, journey_date, journey_time,
			  transport_cost, food_cost, status, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, total_cost, created_at, updated_at`

	err := db.QueryRow(query, j.From, j.To, j.JourneyDate, j.JourneyTime,
		j.TransportCost, j.FoodCost, j.Status, j.UserID).
		Scan(&j.ID, &j.TotalCost, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func UpdateJourney(db *sql.DB, j *models.Journey) error {
	query := `UPDATE journeys
			  SET journey_from = $1, journey_to = $2, journey_date = $3, journey_time = $4,
			  transport_cost = $5, food_cost = $6, updated_at = NOW()
			  WHERE id = $7 AND user_id = $8
			  RETURNING total_cost`

	err := db.QueryRow(query, j.From, j.To, j.JourneyDate, j.JourneyTime,
		j.TransportCost, j.FoodCost, j.ID, j.UserID).Scan(&j.TotalCost)
	if err != nil {
		if database.Classify(err).Kind == database.KindNotFound {
			return database.NotFound("journey")
		}
		return database.Classify(err)
	}
	return nil
}

func UpdateJourneyStatus(db *sql.DB, id, ownerID int, status string) error {
	result, err := db.Exec(
		`UPDATE journeys SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
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
		return database.NotFound("journey")
	}
	return nil
}

func DeleteJourney(db *sql.DB, id, ownerID int) error {
	result, err := db.Exec(`DELETE FROM journeys WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.Classify(err)
	}
	if rows == 0 {
		return database.NotFound("journey")
	}
	return nil
}
