package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
)

type archiveRepository struct {
	db *database.DB
}

func NewArchiveRepository(db *database.DB) employee.ArchiveRepository {
	return &archiveRepository{db: db}
}

// InsertFrozenEmployee implements employee.ArchiveRepository.
func (a *archiveRepository) InsertFrozenEmployee(ctx context.Context, emp employee.Employee, frozenAt time.Time) (string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO ex_employees (
			employee_id, name, dob, gender, address, email, phone,
			employee_code, role, department, joining_date, emergency_contact,
			bank_account, employment_type, cnic, salary, frozen_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id
	`

	var frozenID string
	err := q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.DOB, emp.Gender, emp.Address, emp.Email,
		emp.Phone, emp.EmployeeCode, emp.Role, emp.Department,
		emp.JoiningDate, emp.EmergencyContact, emp.BankAccount,
		emp.EmploymentType, emp.CNIC, emp.Salary, frozenAt,
	).Scan(&frozenID)

	if err != nil {
		return "", fmt.Errorf("failed to archive employee: %w", err)
	}

	return frozenID, nil
}

// InsertFrozenSalary implements employee.ArchiveRepository.
func (a *archiveRepository) InsertFrozenSalary(ctx context.Context, frozenEmployeeID string, sal salary.Salary, frozenAt time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO ex_salaries (
			ex_employee_id, employee_id, month, amount, paid_at, note, frozen_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		frozenEmployeeID, sal.EmployeeID, sal.Month, sal.Amount,
		sal.PaidAt, sal.Note, frozenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive salary: %w", err)
	}

	return nil
}
