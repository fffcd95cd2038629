package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrNoEmployeeSelected = errors.New("no employee selected")
	ErrNoRecordToEdit     = errors.New("no attendance record to edit, mark attendance first")
	ErrFutureDate         = errors.New("selected date cannot be in the future")
)
