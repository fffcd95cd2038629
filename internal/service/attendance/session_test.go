package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory attendance.Repository.
type fakeStore struct {
	seq       int
	records   []attendance.Record
	listErr   error
	insertErr error
	updateErr error
}

func (f *fakeStore) ListByDate(ctx context.Context, dateKey string) ([]attendance.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []attendance.Record{}
	for _, rec := range f.records {
		if rec.Date == dateKey {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if f.insertErr != nil {
		return attendance.Record{}, f.insertErr
	}
	f.seq++
	rec.ID = fmt.Sprintf("rec-%d", f.seq)
	rec.CreatedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeStore) Update(ctx context.Context, rec attendance.Record) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type fakeDirectory struct {
	employees []employee.Employee
	err       error
}

func (f *fakeDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "E101", Name: "Aisha", Role: "Sales Agent", EmploymentType: employee.EmploymentTypeFullTime},
		{ID: "E102", Name: "Bilal", Role: "Dispatcher", EmploymentType: employee.EmploymentTypeContract},
		{ID: "E103", Name: "Carlos", Role: "IT Lead", EmploymentType: employee.EmploymentTypeRemote},
		{ID: "E104", Name: "Dina", Role: "CEO", EmploymentType: employee.EmploymentTypeMyself},
	}
}

// newTestSession opens a session pinned to 2024-03-01.
func newTestSession(t *testing.T, store *fakeStore, directory *fakeDirectory) *Session {
	t.Helper()
	s := NewSession(store, directory)
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, s.Open(context.Background()))
	return s
}

func TestSessionOpenLoadsRosterAndToday(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), s.SelectedDate())
	assert.Empty(t, s.Records())
	assert.Len(t, s.EligibleEmployees(), 2)
}

func TestSelectDateRejectsFuture(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	before := s.SelectedDate()
	err := s.SelectDate(context.Background(), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, attendance.ErrFutureDate)
	assert.Equal(t, before, s.SelectedDate())
}

func TestSelectDateComparesCalendarDays(t *testing.T) {
	east := time.FixedZone("UTC+5", 5*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	// Shortly after local midnight east of UTC, today's UTC-midnight
	// date is still today, not the future.
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 0, 30, 0, 0, east)
	}
	today, _ := validator.IsValidDate("2024-03-01")
	require.NoError(t, s.SelectDate(context.Background(), today))
	assert.Equal(t, "3/1/2024", attendance.DateKey(s.SelectedDate()))

	// West of UTC, tomorrow's date stays rejected even though its UTC
	// midnight is an earlier instant than the local evening clock.
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 20, 0, 0, 0, west)
	}
	tomorrow, _ := validator.IsValidDate("2024-03-02")
	assert.ErrorIs(t, s.SelectDate(context.Background(), tomorrow), attendance.ErrFutureDate)
}

func TestSelectDateReloadsRecords(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-old", EmployeeID: "E101", Name: "Aisha", Role: "Sales Agent",
			Status: attendance.StatusAbsent, TimeIn: attendance.NoTime, Date: "2/29/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	err := s.SelectDate(context.Background(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, s.Records(), 1)
	assert.Equal(t, "rec-old", s.Records()[0].ID)
}

func TestSelectDateKeepsStateOnStoreFailure(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	store.listErr = errors.New("backend unavailable")
	err := s.SelectDate(context.Background(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), s.SelectedDate())
}

func TestEligibleExcludesRemoteMyselfAndMarked(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "E102", Name: "Bilal", Role: "Dispatcher",
			Status: attendance.StatusPresent, TimeIn: "07:00", Date: "3/1/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	eligible := s.EligibleEmployees()

	require.Len(t, eligible, 1)
	assert.Equal(t, "E101", eligible[0].ID)
}

func TestSelectEmployeeFillsForm(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	s.SelectEmployee("E101")

	form := s.FormState()
	assert.Equal(t, "E101", form.EmployeeID)
	assert.Equal(t, "Aisha", form.Name)
	assert.Equal(t, "Sales Agent", form.Role)
}

func TestSelectEmployeeIneligibleClearsForm(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E101")

	// Remote employees never appear in the picker.
	s.SelectEmployee("E103")

	form := s.FormState()
	assert.Empty(t, form.EmployeeID)
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Role)
}

func TestSubmitRequiresEmployee(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	_, err := s.Submit(context.Background(), attendance.SubmitRequest{
		Status: attendance.StatusPresent,
		TimeIn: "07:00",
	})

	assert.ErrorIs(t, err, attendance.ErrNoEmployeeSelected)
}

func TestSubmitRequiresTimeForTimedStatus(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E101")

	for _, status := range []attendance.Status{
		attendance.StatusPresent,
		attendance.StatusWorkFromHome,
		attendance.StatusHoliday,
	} {
		_, err := s.Submit(context.Background(), attendance.SubmitRequest{Status: status})

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs, "status %s", status)
		assert.Contains(t, validationErrs.ToMap(), "time_in")
	}
}

func TestSubmitLateArrivalStoresHalfPresent(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E101")

	rec, err := s.Submit(context.Background(), attendance.SubmitRequest{
		Status: attendance.StatusPresent,
		TimeIn: "08:15",
	})

	require.NoError(t, err)
	assert.Equal(t, "E101", rec.EmployeeID)
	assert.Equal(t, "Aisha", rec.Name)
	assert.Equal(t, "Sales Agent", rec.Role)
	assert.Equal(t, attendance.StatusPresent, rec.RequestedStatus)
	assert.Equal(t, attendance.StatusHalfPresent, rec.Status)
	assert.Equal(t, "08:15", rec.TimeIn)
	assert.Equal(t, "3/1/2024", rec.Date)
}

func TestSubmitHolidayStoresPresent(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E102")

	rec, err := s.Submit(context.Background(), attendance.SubmitRequest{
		Status: attendance.StatusHoliday,
		TimeIn: "06:00",
	})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHoliday, rec.RequestedStatus)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "06:00", rec.TimeIn)
}

func TestSubmitAppendsCacheAndClearsEmployeeFields(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E101")

	_, err := s.Submit(context.Background(), attendance.SubmitRequest{
		Status: attendance.StatusAbsent,
	})

	require.NoError(t, err)
	require.Len(t, s.Records(), 1)

	form := s.FormState()
	assert.Empty(t, form.EmployeeID)
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Role)
	// Status and time survive so the next employee can reuse them.
	assert.Equal(t, attendance.StatusAbsent, form.Status)

	// The marked employee drops out of the eligible set.
	for _, emp := range s.EligibleEmployees() {
		assert.NotEqual(t, "E101", emp.ID)
	}
}

func TestSubmitStoreFailureLeavesStateUnchanged(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("backend unavailable")}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})
	s.SelectEmployee("E101")

	_, err := s.Submit(context.Background(), attendance.SubmitRequest{
		Status: attendance.StatusPresent,
		TimeIn: "07:00",
	})

	require.Error(t, err)
	assert.Empty(t, s.Records())
	// The selection is kept so the operator can retry.
	assert.Equal(t, "E101", s.FormState().EmployeeID)
}

func TestBeginEditRequiresExistingRecord(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	_, err := s.BeginEdit("E101")

	assert.ErrorIs(t, err, attendance.ErrNoRecordToEdit)
}

func TestApplyEditReclassifies(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "E101", Name: "Aisha", Role: "Sales Agent",
			RequestedStatus: attendance.StatusAbsent, Status: attendance.StatusAbsent,
			TimeIn: attendance.NoTime, Date: "3/1/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	_, err := s.BeginEdit("E101")
	require.NoError(t, err)

	updated, err := s.ApplyEdit(context.Background(), attendance.ApplyEditRequest{
		Name:   "Aisha",
		Role:   "Sales Agent",
		Status: attendance.StatusWorkFromHome,
		TimeIn: "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, updated.Status)
	assert.Equal(t, "09:00", updated.TimeIn)

	// The cache holds the updated record, the store too.
	require.Len(t, s.Records(), 1)
	assert.Equal(t, attendance.StatusPresent, s.Records()[0].Status)
	assert.Equal(t, attendance.StatusPresent, store.records[0].Status)
}

func TestApplyEditBlankNameRejected(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "E101", Name: "Aisha", Role: "Sales Agent",
			RequestedStatus: attendance.StatusAbsent, Status: attendance.StatusAbsent,
			TimeIn: attendance.NoTime, Date: "3/1/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	_, err := s.BeginEdit("E101")
	require.NoError(t, err)

	_, err = s.ApplyEdit(context.Background(), attendance.ApplyEditRequest{
		Name:   "",
		Role:   "Sales Agent",
		Status: attendance.StatusAbsent,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	// The original record is untouched.
	assert.Equal(t, attendance.StatusAbsent, store.records[0].Status)
}

func TestApplyEditWithoutBeginEdit(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, &fakeDirectory{employees: testRoster()})

	_, err := s.ApplyEdit(context.Background(), attendance.ApplyEditRequest{
		Name:   "Aisha",
		Role:   "Sales Agent",
		Status: attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, attendance.ErrNoRecordToEdit)
}

func TestApplyEditVanishedRecord(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "E101", Name: "Aisha", Role: "Sales Agent",
			RequestedStatus: attendance.StatusAbsent, Status: attendance.StatusAbsent,
			TimeIn: attendance.NoTime, Date: "3/1/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	_, err := s.BeginEdit("E101")
	require.NoError(t, err)

	store.records = nil

	_, err = s.ApplyEdit(context.Background(), attendance.ApplyEditRequest{
		Name:   "Aisha",
		Role:   "Sales Agent",
		Status: attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestFilterByNameAndStatus(t *testing.T) {
	store := &fakeStore{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "E101", Name: "Aisha", Role: "Sales Agent",
			Status: attendance.StatusHalfPresent, TimeIn: "08:15", Date: "3/1/2024"},
		{ID: "rec-2", EmployeeID: "E102", Name: "Bilal", Role: "Dispatcher",
			Status: attendance.StatusPresent, TimeIn: "07:00", Date: "3/1/2024"},
	}}
	s := newTestSession(t, store, &fakeDirectory{employees: testRoster()})

	// Case-insensitive substring on name.
	byName := s.Filter("AISH", "All")
	require.Len(t, byName, 1)
	assert.Equal(t, "rec-1", byName[0].ID)

	// Exact match on status.
	byStatus := s.Filter("", string(attendance.StatusPresent))
	require.Len(t, byStatus, 1)
	assert.Equal(t, "rec-2", byStatus[0].ID)

	// "All" bypasses the status filter.
	assert.Len(t, s.Filter("", "All"), 2)

	// Filtering is pure: same arguments, same result, cache untouched.
	assert.Equal(t, byName, s.Filter("AISH", "All"))
	assert.Len(t, s.Records(), 2)
}
