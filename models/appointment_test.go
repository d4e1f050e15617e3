package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTotalsAreDerivedFromServices(t *testing.T) {
	ap := Appointment{
		Services: []Service{
			{ID: 1, Price: 50.0, DurationMinutes: 45},
			{ID: 2, Price: 30.0, DurationMinutes: 30},
			{ID: 2, Price: 30.0, DurationMinutes: 30}, // booked twice, billed twice
		},
	}

	assert.Equal(t, 110.0, ap.TotalPrice())
	assert.Equal(t, 105, ap.TotalDurationMinutes())
}

func TestAppointmentValidateRequiresServices(t *testing.T) {
	ap := Appointment{}

	assert.ErrorIs(t, ap.Validate(), ErrAppointmentNoServices)

	ap.Services = []Service{{ID: 1}}
	assert.NoError(t, ap.Validate())
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusDone, StatusCanceled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, AppointmentStatus("ARCHIVED").Valid())
}
