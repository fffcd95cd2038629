package employee

import (
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name             string  `json:"name"`
	DOB              string  `json:"dob"`
	Gender           string  `json:"gender"`
	Address          string  `json:"address"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	EmployeeCode     string  `json:"employee_id"`
	Role             string  `json:"role"`
	Department       *string `json:"department,omitempty"`
	JoiningDate      string  `json:"joining_date"`
	Password         *string `json:"password,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	BankAccount      *string `json:"bank_account,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	CNIC             *string `json:"cnic,omitempty"`
	Salary           *string `json:"salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"dob", r.DOB},
		{"gender", r.Gender},
		{"address", r.Address},
		{"email", r.Email},
		{"phone", r.Phone},
		{"employee_id", r.EmployeeCode},
		{"role", r.Role},
		{"joining_date", r.JoiningDate},
		{"employment_type", r.EmploymentType},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !validator.IsEmpty(r.DOB) {
		if _, ok := validator.IsValidDate(r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.JoiningDate) {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.EmploymentType) && !isValidEmploymentType(r.EmploymentType) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "unknown employment type",
		})
	}

	if r.Salary != nil && !validator.IsEmpty(*r.Salary) {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "salary",
				Message: "salary must be a number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name             string  `json:"name"`
	DOB              string  `json:"dob"`
	Gender           string  `json:"gender"`
	Address          string  `json:"address"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	EmployeeCode     string  `json:"employee_id"`
	Role             string  `json:"role"`
	Department       *string `json:"department,omitempty"`
	JoiningDate      string  `json:"joining_date"`
	Password         *string `json:"password,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	BankAccount      *string `json:"bank_account,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	CNIC             *string `json:"cnic,omitempty"`
	Salary           *string `json:"salary,omitempty"`

	// Set by the service after hashing, never taken from the request body.
	PasswordHash *string `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:           r.Name,
		DOB:            r.DOB,
		Gender:         r.Gender,
		Address:        r.Address,
		Email:          r.Email,
		Phone:          r.Phone,
		EmployeeCode:   r.EmployeeCode,
		Role:           r.Role,
		JoiningDate:    r.JoiningDate,
		EmploymentType: r.EmploymentType,
		Salary:         r.Salary,
	}
	return create.Validate()
}

func isValidEmploymentType(s string) bool {
	for _, t := range EmploymentTypes {
		if EmploymentType(s) == t {
			return true
		}
	}
	return false
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	DOB              string  `json:"dob"`
	Gender           string  `json:"gender"`
	Address          string  `json:"address"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	EmployeeCode     string  `json:"employee_id"`
	Role             string  `json:"role"`
	Department       *string `json:"department,omitempty"`
	JoiningDate      string  `json:"joining_date"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	BankAccount      *string `json:"bank_account,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	CNIC             *string `json:"cnic,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	var salaryStr *string
	if e.Salary != nil {
		s := e.Salary.String()
		salaryStr = &s
	}
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		DOB:              e.DOB,
		Gender:           string(e.Gender),
		Address:          e.Address,
		Email:            e.Email,
		Phone:            e.Phone,
		EmployeeCode:     e.EmployeeCode,
		Role:             e.Role,
		Department:       e.Department,
		JoiningDate:      e.JoiningDate,
		EmergencyContact: e.EmergencyContact,
		BankAccount:      e.BankAccount,
		EmploymentType:   string(e.EmploymentType),
		CNIC:             e.CNIC,
		Salary:           salaryStr,
		CreatedAt:        e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEmployeeResponses(emps []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}
