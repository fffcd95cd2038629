package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one payout entry in an employee's salary history.
type Salary struct {
	ID         string
	EmployeeID string
	Month      string // YYYY-MM
	Amount     decimal.Decimal
	PaidAt     *time.Time
	Note       *string
	CreatedAt  time.Time
}
