package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
	"github.com/crewdesk/hr-panel-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	List(ctx context.Context) ([]employee.Employee, error)
	GetByID(ctx context.Context, id string) (employee.Employee, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error
	Freeze(ctx context.Context, id string) error

	ListSalaries(ctx context.Context, employeeID string) ([]salary.Salary, error)
	AddSalary(ctx context.Context, newSalary salary.Salary) (salary.Salary, error)
}

type EmployeeServiceImpl struct {
	db *database.DB
	employee.Repository
	salaries salary.Repository
	archive  employee.ArchiveRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.Repository,
	salaryRepo salary.Repository,
	archiveRepo employee.ArchiveRepository,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:         db,
		Repository: employeeRepo,
		salaries:   salaryRepo,
		archive:    archiveRepo,
	}
}

// Create implements Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.Repository.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	newEmployee := employee.Employee{
		Name:             req.Name,
		DOB:              req.DOB,
		Gender:           employee.Gender(req.Gender),
		Address:          req.Address,
		Email:            req.Email,
		Phone:            req.Phone,
		EmployeeCode:     req.EmployeeCode,
		Role:             req.Role,
		Department:       req.Department,
		JoiningDate:      req.JoiningDate,
		EmergencyContact: req.EmergencyContact,
		BankAccount:      req.BankAccount,
		EmploymentType:   employee.EmploymentType(req.EmploymentType),
		CNIC:             req.CNIC,
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		newEmployee.PasswordHash = &hashStr
	}

	if req.Salary != nil && *req.Salary != "" {
		amount, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid salary amount: %w", err)
		}
		newEmployee.Salary = &amount
	}

	created, err := s.Repository.Create(ctx, newEmployee)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		req.PasswordHash = &hashStr
	}

	return s.Repository.Update(ctx, id, req)
}

// Freeze archives an employee out of the active roster: the employee is
// copied to the ex-employee set, every salary row is copied under the
// archived employee, then the originals are deleted. The whole workflow
// runs in one transaction so a half-frozen employee can never be
// observed.
func (s *EmployeeServiceImpl) Freeze(ctx context.Context, id string) error {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	frozenAt := time.Now().UTC()

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		frozenID, err := s.archive.InsertFrozenEmployee(txCtx, emp, frozenAt)
		if err != nil {
			return fmt.Errorf("failed to freeze employee: %w", err)
		}

		salaries, err := s.salaries.ListByEmployee(txCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to load salary history: %w", err)
		}
		for _, sal := range salaries {
			if err := s.archive.InsertFrozenSalary(txCtx, frozenID, sal, frozenAt); err != nil {
				return fmt.Errorf("failed to freeze salary %s: %w", sal.ID, err)
			}
		}

		if _, err := s.salaries.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to remove salary history: %w", err)
		}

		if err := s.Repository.Delete(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to remove employee: %w", err)
		}

		return nil
	})
}

// ListSalaries implements Service.
func (s *EmployeeServiceImpl) ListSalaries(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	if _, err := s.Repository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.salaries.ListByEmployee(ctx, employeeID)
}

// AddSalary implements Service.
func (s *EmployeeServiceImpl) AddSalary(ctx context.Context, newSalary salary.Salary) (salary.Salary, error) {
	if _, err := s.Repository.GetByID(ctx, newSalary.EmployeeID); err != nil {
		return salary.Salary{}, err
	}
	return s.salaries.Add(ctx, newSalary)
}
