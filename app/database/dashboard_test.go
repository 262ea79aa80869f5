package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats_AllFieldsPopulated(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	count := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}
	sum := func(v float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"sum"}).AddRow(v)
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM modules`).WithArgs(1).WillReturnRows(count(6))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments WHERE user_id = \$1 AND status = 'upcoming'`).WithArgs(1).WillReturnRows(count(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments WHERE user_id = \$1 AND status = 'completed'`).WithArgs(1).WillReturnRows(count(4))
	mock.ExpectQuery(`FROM money_records WHERE user_id = \$1 AND status = 'pending'`).WithArgs(1).WillReturnRows(sum(150000))
	mock.ExpectQuery(`FROM money_records WHERE user_id = \$1 AND status = 'returned'`).WithArgs(1).WillReturnRows(sum(50000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM journeys WHERE user_id = \$1$`).WithArgs(1).WillReturnRows(count(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM journeys WHERE user_id = \$1 AND status = 'completed'`).WithArgs(1).WillReturnRows(count(1))
	mock.ExpectQuery(`FROM savings`).WithArgs(1).WillReturnRows(sum(275000.50))
	mock.ExpectQuery(`FROM timetable`).WithArgs(1).WillReturnRows(count(5))
	mock.ExpectQuery(`FROM activities`).WithArgs(1).WillReturnRows(count(8))

	stats := GetDashboardStats(db, 1)

	assert.Equal(t, 6, stats.ModuleCount)
	assert.Equal(t, 3, stats.AppointmentCount)
	assert.Equal(t, 4, stats.AppointmentCompleted)
	assert.Equal(t, 150000.0, stats.MoneyOwed)
	assert.Equal(t, 50000.0, stats.MoneyReturned)
	assert.Equal(t, 2, stats.JourneyCount)
	assert.Equal(t, 1, stats.JourneyCompleted)
	assert.Equal(t, 275000.50, stats.SavingsTotal)
	assert.Equal(t, 5, stats.ExamCount)
	assert.Equal(t, 8, stats.RecentActivityCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardStats_FailingQueryLeavesOthersIntact(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	count := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}
	sum := func(v float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"sum"}).AddRow(v)
	}

	// modules table is broken; everything after it still loads
	mock.ExpectQuery(`FROM modules`).WithArgs(1).WillReturnError(errors.New(`pq: relation "modules" does not exist`))
	mock.ExpectQuery(`status = 'upcoming'`).WithArgs(1).WillReturnRows(count(3))
	mock.ExpectQuery(`FROM appointments WHERE user_id = \$1 AND status = 'completed'`).WithArgs(1).WillReturnRows(count(4))
	mock.ExpectQuery(`status = 'pending'`).WithArgs(1).WillReturnRows(sum(150000))
	mock.ExpectQuery(`FROM money_records WHERE user_id = \$1 AND status = 'returned'`).WithArgs(1).WillReturnRows(sum(50000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM journeys WHERE user_id = \$1$`).WithArgs(1).WillReturnRows(count(2))
	mock.ExpectQuery(`FROM journeys WHERE user_id = \$1 AND status = 'completed'`).WithArgs(1).WillReturnRows(count(1))
	mock.ExpectQuery(`FROM savings`).WithArgs(1).WillReturnRows(sum(1000))
	mock.ExpectQuery(`FROM timetable`).WithArgs(1).WillReturnRows(count(5))
	mock.ExpectQuery(`FROM activities`).WithArgs(1).WillReturnRows(count(8))

	stats := GetDashboardStats(db, 1)

	assert.Equal(t, 0, stats.ModuleCount)
	assert.Equal(t, 3, stats.AppointmentCount)
	assert.Equal(t, 5, stats.ExamCount)
	assert.Equal(t, 1000.0, stats.SavingsTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardStats_EverythingDownYieldsZeroes(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 10; i++ {
		mock.ExpectQuery(`.`).WillReturnError(errors.New("connection refused"))
	}

	stats := GetDashboardStats(db, 1)

	assert.Equal(t, 0, stats.ModuleCount)
	assert.Equal(t, 0, stats.AppointmentCount)
	assert.Equal(t, 0.0, stats.MoneyOwed)
	assert.Equal(t, 0.0, stats.SavingsTotal)
	assert.Equal(t, 0, stats.RecentActivityCount)
}
