package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestAttendanceRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	dateKey := attendance.DateKey(time.Now())

	created, err := repo.Insert(ctx, attendance.Record{
		EmployeeID:      "test-employee",
		Name:            "Round Trip",
		Role:            "Tester",
		RequestedStatus: attendance.StatusPresent,
		Status:          attendance.StatusHalfPresent,
		TimeIn:          "08:15",
		Date:            dateKey,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	t.Cleanup(func() {
		_, _ = db.Exec(ctx, `DELETE FROM employeesattendance WHERE id = $1`, created.ID)
		_, _ = db.Exec(ctx, `DELETE FROM employee_attendance_log WHERE id = $1`, created.ID)
	})

	records, err := repo.ListByDate(ctx, dateKey)
	require.NoError(t, err)
	var found *attendance.Record
	for i := range records {
		if records[i].ID == created.ID {
			found = &records[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, attendance.StatusHalfPresent, found.Status)
	assert.Equal(t, "08:15", found.TimeIn)

	// The log row shares the same id.
	var logCount int
	err = db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee_attendance_log WHERE id = $1`, created.ID,
	).Scan(&logCount)
	require.NoError(t, err)
	assert.Equal(t, 1, logCount)

	created.RequestedStatus = attendance.StatusWorkFromHome
	created.Status = attendance.StatusPresent
	created.TimeIn = "09:00"
	require.NoError(t, repo.Update(ctx, created))

	records, err = repo.ListByDate(ctx, dateKey)
	require.NoError(t, err)
	for _, rec := range records {
		if rec.ID == created.ID {
			assert.Equal(t, attendance.StatusPresent, rec.Status)
			assert.Equal(t, "09:00", rec.TimeIn)
		}
	}
}

func TestAttendanceRepositoryUpdateMissing(t *testing.T) {
	db := testDB(t)
	repo := NewAttendanceRepository(db)

	err := repo.Update(context.Background(), attendance.Record{
		ID:     "00000000-0000-0000-0000-000000000000",
		Status: attendance.StatusPresent,
		TimeIn: "09:00",
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
