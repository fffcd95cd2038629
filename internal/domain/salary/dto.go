package salary

import (
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddSalaryRequest struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount string  `json:"amount"`
	PaidAt *string `json:"paid_at,omitempty"` // YYYY-MM-DD
	Note   *string `json:"note,omitempty"`
}

func (r *AddSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, err := time.Parse("2006-01", r.Month); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required",
		})
	} else if _, err := decimal.NewFromString(r.Amount); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a number",
		})
	}

	if r.PaidAt != nil {
		if _, ok := validator.IsValidDate(*r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "paid_at",
				Message: "paid_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"`
	Amount     string  `json:"amount"`
	PaidAt     *string `json:"paid_at,omitempty"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToSalaryResponse(s Salary) SalaryResponse {
	var paidAt *string
	if s.PaidAt != nil {
		formatted := s.PaidAt.Format("2006-01-02")
		paidAt = &formatted
	}
	return SalaryResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Month:      s.Month,
		Amount:     s.Amount.String(),
		PaidAt:     paidAt,
		Note:       s.Note,
		CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSalaryResponses(salaries []Salary) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(salaries))
	for _, s := range salaries {
		out = append(out, ToSalaryResponse(s))
	}
	return out
}
