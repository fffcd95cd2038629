package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, dateKey string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, name, role, requested_status, status, time_in, date, created_at
		FROM employeesattendance
		WHERE date = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Role,
			&rec.RequestedStatus, &rec.Status, &rec.TimeIn, &rec.Date, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// Insert implements attendance.Repository.
//
// The record goes to two locations: the per-employee append-only log
// first, then the date-queryable top-level set. The writes are sequenced
// and NOT wrapped in a transaction; a failure of the second write leaves
// an orphaned log row behind. Both rows share one document id.
func (a *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	logQuery := `
		INSERT INTO employee_attendance_log (
			id, employee_id, name, role, requested_status, status, time_in, date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, logQuery,
		rec.ID, rec.EmployeeID, rec.Name, rec.Role,
		rec.RequestedStatus, rec.Status, rec.TimeIn, rec.Date, rec.CreatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to append attendance log: %w", err)
	}

	topQuery := `
		INSERT INTO employeesattendance (
			id, employee_id, name, role, requested_status, status, time_in, date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = q.Exec(ctx, topQuery,
		rec.ID, rec.EmployeeID, rec.Name, rec.Role,
		rec.RequestedStatus, rec.Status, rec.TimeIn, rec.Date, rec.CreatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE employeesattendance
		SET requested_status = $2, status = $3, time_in = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, rec.ID, rec.RequestedStatus, rec.Status, rec.TimeIn)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
