package employee

import (
	"context"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
)

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByCode(ctx context.Context, employeeCode string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}

// ArchiveRepository writes frozen copies of employees and their salary
// history. Archived rows are never read back by this service.
type ArchiveRepository interface {
	InsertFrozenEmployee(ctx context.Context, emp Employee, frozenAt time.Time) (string, error)
	InsertFrozenSalary(ctx context.Context, frozenEmployeeID string, sal salary.Salary, frozenAt time.Time) error
}
