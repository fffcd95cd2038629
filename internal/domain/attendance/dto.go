package attendance

import (
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *SelectDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SelectEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

type SubmitRequest struct {
	Status Status `json:"status"`
	TimeIn string `json:"time_in"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.IsRequestable() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if !validator.IsEmpty(r.TimeIn) && !validator.IsValidTimeOption(r.TimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in must be between 06:00 and 15:00 in 15 minute steps",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BeginEditRequest struct {
	EmployeeID string `json:"employee_id"`
}

type ApplyEditRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status Status `json:"status"`
	TimeIn string `json:"time_in"`
}

func (r *ApplyEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.IsRequestable() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if !validator.IsEmpty(r.TimeIn) && !validator.IsValidTimeOption(r.TimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in must be between 06:00 and 15:00 in 15 minute steps",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	RequestedStatus string `json:"requested_status"`
	Status          string `json:"status"`
	TimeIn          string `json:"time_in"`
	Date            string `json:"date"`
	CreatedAt       string `json:"created_at"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		Name:            rec.Name,
		Role:            rec.Role,
		RequestedStatus: string(rec.RequestedStatus),
		Status:          string(rec.Status),
		TimeIn:          rec.TimeIn,
		Date:            rec.Date,
		CreatedAt:       rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToRecordResponses(recs []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToRecordResponse(rec))
	}
	return out
}
