package scheduling

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit_MoreThanTwoDaysAhead(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	check := CanEdit(now.AddDate(0, 0, 5), now)

	assert.True(t, check.Allowed)
	assert.Empty(t, check.Reason)
}

func TestCanEdit_ExactlyTwoDaysIsAllowed(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	check := CanEdit(now.Add(48*time.Hour), now)

	assert.True(t, check.Allowed)
}

func TestCanEdit_JustUnderTwoDaysIsDenied(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	check := CanEdit(now.Add(48*time.Hour-time.Second), now)

	assert.False(t, check.Allowed)
	assert.Equal(t, "cannot edit appointments with less than 2 days' notice", check.Reason)
}

func TestCanEdit_PastAppointment(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	check := CanEdit(now.AddDate(0, 0, -1), now)

	assert.False(t, check.Allowed)
	assert.NotEmpty(t, check.Reason)
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  models.AppointmentStatus
		allowed bool
		reason  string
	}{
		{"pending", models.StatusPending, true, ""},
		{"confirmed", models.StatusConfirmed, true, ""},
		{"done", models.StatusDone, false, "cannot cancel a completed appointment"},
		{"canceled", models.StatusCanceled, false, "appointment is already canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := CanCancel(tt.status)
			assert.Equal(t, tt.allowed, check.Allowed)
			assert.Equal(t, tt.reason, check.Reason)
		})
	}
}
