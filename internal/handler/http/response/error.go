package response

import (
	"errors"
	"net/http"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoEmployeeSelected):
		BadRequest(w, "Please select an employee first", nil)
	case errors.Is(err, attendance.ErrNoRecordToEdit):
		BadRequest(w, "No attendance record to edit, mark attendance first", nil)
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Selected date cannot be in the future", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrInvalidEmploymentType):
		BadRequest(w, "Invalid employment type", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
