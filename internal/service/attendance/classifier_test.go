package attendance

import (
	"testing"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		requested  attendance.Status
		timeIn     string
		wantStatus attendance.Status
		wantTime   string
	}{
		{"holiday is paid as present", attendance.StatusHoliday, "06:00", attendance.StatusPresent, "06:00"},
		{"holiday keeps any time", attendance.StatusHoliday, "14:45", attendance.StatusPresent, "14:45"},
		{"present at cutoff is half present", attendance.StatusPresent, "08:00", attendance.StatusHalfPresent, "08:00"},
		{"present after cutoff is half present", attendance.StatusPresent, "08:15", attendance.StatusHalfPresent, "08:15"},
		{"present before cutoff stays present", attendance.StatusPresent, "07:45", attendance.StatusPresent, "07:45"},
		{"work from home is paid as present", attendance.StatusWorkFromHome, "09:00", attendance.StatusPresent, "09:00"},
		{"work from home before cutoff is present too", attendance.StatusWorkFromHome, "06:15", attendance.StatusPresent, "06:15"},
		{"absent forces the sentinel time", attendance.StatusAbsent, "08:30", attendance.StatusAbsent, attendance.NoTime},
		{"approved leave forces the sentinel time", attendance.StatusApprovedLeave, "", attendance.StatusApprovedLeave, attendance.NoTime},
		{"emergency leave forces the sentinel time", attendance.StatusEmergencyLeave, "07:00", attendance.StatusEmergencyLeave, attendance.NoTime},
		{"medical leave forces the sentinel time", attendance.StatusMedicalLeave, "-", attendance.StatusMedicalLeave, attendance.NoTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, timeIn, err := Classify(tc.requested, tc.timeIn)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantTime, timeIn)
		})
	}
}

func TestClassifyRequiresTimeForTimedStatuses(t *testing.T) {
	for _, requested := range []attendance.Status{
		attendance.StatusPresent,
		attendance.StatusWorkFromHome,
		attendance.StatusHoliday,
	} {
		_, _, err := Classify(requested, "")

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs, "status %s", requested)
		assert.Contains(t, validationErrs.ToMap(), "time_in")
	}
}

func TestTimeOptions(t *testing.T) {
	options := TimeOptions()

	require.Len(t, options, 37)
	assert.Equal(t, "06:00", options[0])
	assert.Equal(t, "15:00", options[len(options)-1])
	assert.Contains(t, options, "08:00")
	assert.Contains(t, options, "08:15")
	assert.NotContains(t, options, "05:45")
	assert.NotContains(t, options, "15:15")
}
