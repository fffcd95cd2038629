package postgresql

import (
	"context"
	"fmt"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.Repository {
	return &salaryRepository{db: db}
}

// ListByEmployee implements salary.Repository.
func (s *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, month, amount, paid_at, note, created_at
		FROM salaries
		WHERE employee_id = $1
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	salaries := []salary.Salary{}
	for rows.Next() {
		var sal salary.Salary
		if err := rows.Scan(
			&sal.ID, &sal.EmployeeID, &sal.Month, &sal.Amount,
			&sal.PaidAt, &sal.Note, &sal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, sal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salary rows: %w", err)
	}

	return salaries, nil
}

// Add implements salary.Repository.
func (s *salaryRepository) Add(ctx context.Context, newSalary salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salaries (employee_id, month, amount, paid_at, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newSalary.EmployeeID,
		newSalary.Month,
		newSalary.Amount,
		newSalary.PaidAt,
		newSalary.Note,
	).Scan(&newSalary.ID, &newSalary.CreatedAt)

	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to add salary: %w", err)
	}

	return newSalary, nil
}

// DeleteByEmployee implements salary.Repository.
func (s *salaryRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaries WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete salaries: %w", err)
	}

	return tag.RowsAffected(), nil
}
