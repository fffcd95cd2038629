package attendance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
)

// EmployeeDirectory is the slice of the employee repository the session
// needs: the roster it resolves selections against.
type EmployeeDirectory interface {
	List(ctx context.Context) ([]employee.Employee, error)
}

// Form holds the pending mark-attendance input. EmployeeID, Name and
// Role are filled by SelectEmployee; Status and TimeIn survive a submit
// so the operator can mark several employees with the same status.
type Form struct {
	EmployeeID string
	Name       string
	Role       string
	Status     attendance.Status
	TimeIn     string
}

// Session is the mark-sheet controller: the selected date, the cached
// roster and record list for that date, the pending form and the record
// under edit. There is one logical operator, but the struct is reachable
// from concurrent HTTP handlers, so a mutex serializes access.
//
// Store operations are never retried; a failed operation leaves the
// in-memory state exactly as it was.
type Session struct {
	mu        sync.Mutex
	store     attendance.Repository
	directory EmployeeDirectory

	selectedDate time.Time
	roster       []employee.Employee
	records      []attendance.Record
	form         Form
	edit         *attendance.Record

	now func() time.Time
}

func NewSession(store attendance.Repository, directory EmployeeDirectory) *Session {
	return &Session{
		store:     store,
		directory: directory,
		form: Form{
			Status: attendance.StatusHoliday,
			TimeIn: TimeOptions()[0],
		},
		now: time.Now,
	}
}

// Open loads the roster and the records for today. It must succeed
// before any other operation is meaningful.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	today := startOfDay(s.now())
	records, err := s.store.ListByDate(ctx, attendance.DateKey(today))
	if err != nil {
		return fmt.Errorf("failed to load attendance records: %w", err)
	}

	s.roster = roster
	s.selectedDate = today
	s.records = records
	return nil
}

// RefreshRoster reloads the employee list, picking up roster changes
// made since the session opened.
func (s *Session) RefreshRoster(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	s.roster = roster
	return nil
}

// SelectDate switches the sheet to date and reloads its records.
// Future dates are rejected; the previous selection stays in place when
// the reload fails.
func (s *Session) SelectDate(ctx context.Context, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	date = startOfDay(date)
	if afterToday(date, s.now()) {
		return attendance.ErrFutureDate
	}

	records, err := s.store.ListByDate(ctx, attendance.DateKey(date))
	if err != nil {
		return fmt.Errorf("failed to load attendance records: %w", err)
	}

	s.selectedDate = date
	s.records = records
	return nil
}

// SelectEmployee fills the form from the eligible roster entry with the
// given id. An unknown or ineligible id clears the employee portion of
// the form; that is not an error, it mirrors picking the blank option.
func (s *Session) SelectEmployee(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, emp := range s.eligibleLocked() {
		if emp.ID == id {
			s.form.EmployeeID = emp.ID
			s.form.Name = emp.Name
			s.form.Role = emp.Role
			return
		}
	}
	s.form.EmployeeID = ""
	s.form.Name = ""
	s.form.Role = ""
}

// Submit classifies and persists a mark for the selected employee on the
// selected date. On success the record is appended to the cache and the
// employee portion of the form is cleared; status and time are retained.
func (s *Session) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form.EmployeeID == "" || validator.IsEmpty(s.form.Name) || validator.IsEmpty(s.form.Role) {
		return attendance.Record{}, attendance.ErrNoEmployeeSelected
	}
	if req.Status.NeedsTime() && validator.IsEmpty(req.TimeIn) {
		return attendance.Record{}, validator.ValidationErrors{{
			Field:   "time_in",
			Message: "check-in time is required",
		}}
	}
	if afterToday(s.selectedDate, s.now()) {
		return attendance.Record{}, attendance.ErrFutureDate
	}

	stored, storedTime, err := Classify(req.Status, req.TimeIn)
	if err != nil {
		return attendance.Record{}, err
	}

	rec := attendance.Record{
		EmployeeID:      s.form.EmployeeID,
		Name:            s.form.Name,
		Role:            s.form.Role,
		RequestedStatus: req.Status,
		Status:          stored,
		TimeIn:          storedTime,
		Date:            attendance.DateKey(s.selectedDate),
	}

	created, err := s.store.Insert(ctx, rec)
	if err != nil {
		return attendance.Record{}, err
	}

	s.records = append(s.records, created)
	s.form.Status = req.Status
	s.form.TimeIn = req.TimeIn
	s.form.EmployeeID = ""
	s.form.Name = ""
	s.form.Role = ""
	return created, nil
}

// BeginEdit opens edit state on a copy of the cached record for
// (employeeID, selected date). Editing requires an existing mark.
func (s *Session) BeginEdit(employeeID string) (attendance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dateKey := attendance.DateKey(s.selectedDate)
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID && rec.Date == dateKey {
			copied := rec
			s.edit = &copied
			return copied, nil
		}
	}
	return attendance.Record{}, attendance.ErrNoRecordToEdit
}

// CancelEdit drops the edit state without persisting anything.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = nil
}

// ApplyEdit re-runs the classifier over the edited status and time,
// persists the result and replaces the cached record. Name and role are
// immutable; blank values are rejected, other values are ignored in
// favor of the stored ones.
func (s *Session) ApplyEdit(ctx context.Context, req attendance.ApplyEditRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return attendance.Record{}, attendance.ErrNoRecordToEdit
	}
	if validator.IsEmpty(req.Name) || validator.IsEmpty(req.Role) {
		return attendance.Record{}, validator.ValidationErrors{{
			Field:   "name",
			Message: "name and role cannot be changed",
		}}
	}
	if req.Status.NeedsTime() && validator.IsEmpty(req.TimeIn) {
		return attendance.Record{}, validator.ValidationErrors{{
			Field:   "time_in",
			Message: "check-in time is required",
		}}
	}

	stored, storedTime, err := Classify(req.Status, req.TimeIn)
	if err != nil {
		return attendance.Record{}, err
	}

	updated := *s.edit
	updated.RequestedStatus = req.Status
	updated.Status = stored
	updated.TimeIn = storedTime

	if err := s.store.Update(ctx, updated); err != nil {
		return attendance.Record{}, err
	}

	for i, rec := range s.records {
		if rec.ID == updated.ID {
			s.records[i] = updated
			break
		}
	}
	s.edit = nil
	return updated, nil
}

// Filter projects the cached records by case-insensitive name substring
// and exact status. "All" (or empty) bypasses the status filter. The
// cache is never mutated; calling twice on an unchanged cache yields
// identical results.
func (s *Session) Filter(nameSubstring, status string) []attendance.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.ToLower(strings.TrimSpace(nameSubstring))
	out := []attendance.Record{}
	for _, rec := range s.records {
		if name != "" && !strings.Contains(strings.ToLower(rec.Name), name) {
			continue
		}
		if status != "" && status != "All" && string(rec.Status) != status {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// EligibleEmployees returns the roster entries the operator may mark:
// not Remote, not Myself, and not already marked for the selected date.
func (s *Session) EligibleEmployees() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligibleLocked()
}

func (s *Session) eligibleLocked() []employee.Employee {
	dateKey := attendance.DateKey(s.selectedDate)
	marked := make(map[string]bool, len(s.records))
	for _, rec := range s.records {
		if rec.Date == dateKey {
			marked[rec.EmployeeID] = true
		}
	}

	eligible := []employee.Employee{}
	for _, emp := range s.roster {
		if emp.Markable() && !marked[emp.ID] {
			eligible = append(eligible, emp)
		}
	}
	return eligible
}

// SelectedDate returns the date the sheet currently shows.
func (s *Session) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// Records returns a copy of the cached records for the selected date.
func (s *Session) Records() []attendance.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]attendance.Record, len(s.records))
	copy(out, s.records)
	return out
}

// FormState returns the pending form.
func (s *Session) FormState() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// afterToday compares calendar days, each in its own location. Request
// dates arrive as UTC midnights while the clock runs in the server's
// zone; comparing instants across the two would shift the day boundary.
func afterToday(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}
