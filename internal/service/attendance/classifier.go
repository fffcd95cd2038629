package attendance

import (
	"fmt"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
)

// halfDayCutoff is the check-in time at which a Present mark is billed
// as Half Present. Compared lexicographically, which is exact for
// zero-padded HH:MM.
const halfDayCutoff = "08:00"

// Classify derives the stored (payroll-facing) status and check-in time
// from the operator's requested status and selected time.
//
// Holiday is always paid as Present with the time preserved. A Present
// arrival at or after the cutoff is downgraded to Half Present. Work
// From Home is normalized to Present. Statuses that carry no time store
// the sentinel instead. The stored status is never set independently of
// this function.
func Classify(requested attendance.Status, timeIn string) (attendance.Status, string, error) {
	if !requested.NeedsTime() {
		return requested, attendance.NoTime, nil
	}

	if validator.IsEmpty(timeIn) {
		return "", "", validator.ValidationErrors{{
			Field:   "time_in",
			Message: "check-in time is required",
		}}
	}

	switch {
	case requested == attendance.StatusHoliday:
		return attendance.StatusPresent, timeIn, nil
	case requested == attendance.StatusPresent && timeIn >= halfDayCutoff:
		return attendance.StatusHalfPresent, timeIn, nil
	case requested == attendance.StatusWorkFromHome:
		return attendance.StatusPresent, timeIn, nil
	default:
		return requested, timeIn, nil
	}
}

// TimeOptions returns the selectable check-in times: 06:00 to 15:00
// inclusive, stepped every 15 minutes. The panel never accepts free-form
// time input.
func TimeOptions() []string {
	const (
		start = 6 * 60
		end   = 15 * 60
		step  = 15
	)
	times := make([]string, 0, (end-start)/step+1)
	for t := start; t <= end; t += step {
		times = append(times, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}
	return times
}
