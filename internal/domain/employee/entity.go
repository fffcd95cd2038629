package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	Name             string
	DOB              string // YYYY-MM-DD
	Gender           Gender
	Address          string
	Email            string
	Phone            string
	EmployeeCode     string // badge code shown on the panel, distinct from ID
	Role             string
	Department       *string
	JoiningDate      string // YYYY-MM-DD
	PasswordHash     *string
	EmergencyContact *string
	BankAccount      *string
	EmploymentType   EmploymentType
	CNIC             *string
	Salary           *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "Full-time"
	EmploymentTypePartTime   EmploymentType = "Part-time"
	EmploymentTypeContract   EmploymentType = "Contract"
	EmploymentTypeRemote     EmploymentType = "Remote"
	EmploymentTypeTrainee    EmploymentType = "Trainee"
	EmploymentTypeInternship EmploymentType = "Internship"
	EmploymentTypeMyself     EmploymentType = "Myself"
)

var EmploymentTypes = []EmploymentType{
	EmploymentTypeFullTime,
	EmploymentTypePartTime,
	EmploymentTypeContract,
	EmploymentTypeRemote,
	EmploymentTypeTrainee,
	EmploymentTypeInternship,
	EmploymentTypeMyself,
}

// Markable reports whether the employee appears on the attendance panel.
// Remote workers and the account owner are never marked.
func (e Employee) Markable() bool {
	return e.EmploymentType != EmploymentTypeRemote && e.EmploymentType != EmploymentTypeMyself
}

// FrozenEmployee is an archived copy of an employee, written when the
// employee is frozen out of the active roster.
type FrozenEmployee struct {
	ID       string
	Employee Employee
	FrozenAt time.Time
}
