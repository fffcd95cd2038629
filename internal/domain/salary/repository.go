package salary

import "context"

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Salary, error)
	Add(ctx context.Context, newSalary Salary) (Salary, error)
	// DeleteByEmployee removes every salary row of the employee and
	// returns how many were removed. Used by the freeze workflow after
	// the rows have been archived.
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}
