package attendance

import (
	"time"
)

// Status is an attendance category. Operators pick a requested status;
// the classifier derives the stored (payroll-facing) status from it.
type Status string

const (
	StatusPresent        Status = "Present"
	StatusApprovedLeave  Status = "Approved Leave"
	StatusWorkFromHome   Status = "Work From Home"
	StatusEmergencyLeave Status = "Emergency Leave"
	StatusMedicalLeave   Status = "Medical Leave"
	StatusAbsent         Status = "Absent"
	StatusHoliday        Status = "Holiday"

	// StatusHalfPresent is derived only, never requestable.
	StatusHalfPresent Status = "Half Present"
)

// NoTime is the placeholder stored when a status carries no check-in time.
const NoTime = "-"

// DateKeyLayout is the equality key format of the date-partitioned record
// set. It matches the en-US short date the store was seeded with
// (no zero padding, e.g. "3/1/2024").
const DateKeyLayout = "1/2/2006"

// RequestableStatuses lists the statuses an operator may select, in the
// order the panel presents them.
var RequestableStatuses = []Status{
	StatusPresent,
	StatusApprovedLeave,
	StatusWorkFromHome,
	StatusEmergencyLeave,
	StatusMedicalLeave,
	StatusAbsent,
	StatusHoliday,
}

// IsRequestable reports whether s is a status an operator may submit.
func (s Status) IsRequestable() bool {
	for _, r := range RequestableStatuses {
		if s == r {
			return true
		}
	}
	return false
}

// NeedsTime reports whether a requested status requires a check-in time.
func (s Status) NeedsTime() bool {
	return s == StatusPresent || s == StatusWorkFromHome || s == StatusHoliday
}

// Record is one attendance mark for one employee on one date.
// Name and Role are denormalized from the employee at marking time and
// immutable afterwards. (EmployeeID, Date) is the natural key; the store
// does not enforce it, the session controller does by hiding already
// marked employees from the picker.
type Record struct {
	ID              string
	EmployeeID      string
	Name            string
	Role            string
	RequestedStatus Status
	Status          Status // stored status, always classifier output
	TimeIn          string // "HH:MM" or NoTime
	Date            string // DateKeyLayout key
	CreatedAt       time.Time
}

// DateKey formats t as the store's date equality key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
