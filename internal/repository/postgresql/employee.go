package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, dob, gender, address, email, phone, employee_code, role,
	department, joining_date, password_hash, emergency_contact, bank_account,
	employment_type, cnic, salary, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.DOB, &emp.Gender, &emp.Address, &emp.Email,
		&emp.Phone, &emp.EmployeeCode, &emp.Role, &emp.Department,
		&emp.JoiningDate, &emp.PasswordHash, &emp.EmergencyContact,
		&emp.BankAccount, &emp.EmploymentType, &emp.CNIC, &emp.Salary,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// List implements employee.Repository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.Repository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// ExistsByCode implements employee.Repository.
func (e *employeeRepository) ExistsByCode(ctx context.Context, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_code = $1)`,
		employeeCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}

	return exists, nil
}

// Create implements employee.Repository.
func (e *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			name, dob, gender, address, email, phone, employee_code, role,
			department, joining_date, password_hash, emergency_contact,
			bank_account, employment_type, cnic, salary
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.DOB,
		newEmployee.Gender,
		newEmployee.Address,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.EmployeeCode,
		newEmployee.Role,
		newEmployee.Department,
		newEmployee.JoiningDate,
		newEmployee.PasswordHash,
		newEmployee.EmergencyContact,
		newEmployee.BankAccount,
		newEmployee.EmploymentType,
		newEmployee.CNIC,
		newEmployee.Salary,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.Repository.
func (e *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	var salary *decimal.Decimal
	if req.Salary != nil && *req.Salary != "" {
		d, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return fmt.Errorf("invalid salary amount: %w", err)
		}
		salary = &d
	}

	query := `
		UPDATE employees
		SET name = $2, dob = $3, gender = $4, address = $5, email = $6,
			phone = $7, employee_code = $8, role = $9, department = $10,
			joining_date = $11, emergency_contact = $12, bank_account = $13,
			employment_type = $14, cnic = $15, salary = $16,
			password_hash = COALESCE($17, password_hash),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		id, req.Name, req.DOB, req.Gender, req.Address, req.Email,
		req.Phone, req.EmployeeCode, req.Role, req.Department,
		req.JoiningDate, req.EmergencyContact, req.BankAccount,
		req.EmploymentType, req.CNIC, salary, req.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.Repository.
func (e *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
