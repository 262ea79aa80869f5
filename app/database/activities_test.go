package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogActivity_WritesThenPrunes(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO activities`).
		WithArgs("Added module: Networks (CS202)", "module", "added", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM activities WHERE created_at <`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	LogActivity(db, 1, "Added module: Networks (CS202)", "module", "added")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogActivity_InsertFailureSkipsPrune(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO activities`).
		WithArgs("Added savings: 5000 TZS", "savings", "added", 1).
		WillReturnError(errors.New("connection reset"))

	// Must not panic or error out; the failure is swallowed.
	LogActivity(db, 1, "Added savings: 5000 TZS", "savings", "added")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneOldActivities_ReportsCount(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM activities WHERE created_at < NOW\(\) - INTERVAL '30 days'`).
		WillReturnResult(sqlmock.NewResult(0, 7))

	pruned, err := PruneOldActivities(db)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentActivities_CapsAtFeedLimit(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "description", "type", "status", "user_id", "created_at"}).
		AddRow(12, "Added module: Networks (CS202)", "module", "added", 1, now).
		AddRow(11, "Deleted savings record", "savings", "deleted", 1, now.Add(-time.Hour))

	mock.ExpectQuery(`FROM activities WHERE user_id = \$1`).
		WithArgs(1, 10).
		WillReturnRows(rows)

	activities, err := GetRecentActivities(db, 1)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, 12, activities[0].ID)
	assert.Equal(t, "Added module: Networks (CS202)", activities[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentActivities_EmptyFeedIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM activities`).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "type", "status", "user_id", "created_at"}))

	activities, err := GetRecentActivities(db, 1)
	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestClearAllActivities_LogsTheClearItself(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM activities WHERE user_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec(`INSERT INTO activities`).
		WithArgs("Cleared all recent activities", "system", "cleared", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM activities WHERE created_at <`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	cleared, err := ClearAllActivities(db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cleared)
	assert.NoError(t, mock.ExpectationsWereMet())
}
