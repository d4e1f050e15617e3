package scheduling

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var haircut = models.Service{ID: 1, Name: "Haircut", Price: 50.0, DurationMinutes: 45}

func TestResolve_SameWeekProposesMerge(t *testing.T) {
	// Monday 2024-06-10 and Thursday 2024-06-13 share the Sun-Sat week.
	existing := []models.Appointment{
		{ID: 7, Date: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), Status: models.StatusConfirmed},
	}
	requested := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)

	decision, err := Resolve(existing, requested, []models.Service{haircut})

	require.NoError(t, err)
	assert.Equal(t, ActionMerge, decision.Action)
	require.NotNil(t, decision.Target)
	assert.Equal(t, uint(7), decision.Target.ID)
	assert.Equal(t, []models.Service{haircut}, decision.Services)
}

func TestResolve_NextWeekCreatesNew(t *testing.T) {
	existing := []models.Appointment{
		{ID: 7, Date: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), Status: models.StatusConfirmed},
	}
	// Sunday 2024-06-16 already belongs to the following week.
	requested := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)

	decision, err := Resolve(existing, requested, []models.Service{haircut})

	require.NoError(t, err)
	assert.Equal(t, ActionCreateNew, decision.Action)
	assert.Nil(t, decision.Target)
	assert.Equal(t, requested, decision.Date)
}

func TestResolve_IgnoresCanceledAppointments(t *testing.T) {
	existing := []models.Appointment{
		{ID: 7, Date: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), Status: models.StatusCanceled},
	}
	requested := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)

	decision, err := Resolve(existing, requested, []models.Service{haircut})

	require.NoError(t, err)
	assert.Equal(t, ActionCreateNew, decision.Action)
}

func TestResolve_EarliestSameWeekAppointmentWins(t *testing.T) {
	existing := []models.Appointment{
		{ID: 8, Date: time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC), Status: models.StatusPending},
		{ID: 7, Date: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), Status: models.StatusConfirmed},
	}
	requested := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)

	decision, err := Resolve(existing, requested, []models.Service{haircut})

	require.NoError(t, err)
	require.NotNil(t, decision.Target)
	assert.Equal(t, uint(7), decision.Target.ID)
}

func TestResolve_NoServicesIsInvalid(t *testing.T) {
	requested := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)

	_, err := Resolve(nil, requested, nil)

	assert.ErrorIs(t, err, models.ErrAppointmentNoServices)
}

func TestResolve_ZeroDateIsInvalid(t *testing.T) {
	_, err := Resolve(nil, time.Time{}, []models.Service{haircut})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMergeServices_KeepsDuplicates(t *testing.T) {
	existing := []models.Service{haircut}
	added := []models.Service{haircut, {ID: 2, Name: "Coloring", Price: 100.0}}

	merged := MergeServices(existing, added)

	require.Len(t, merged, 3)
	assert.Equal(t, uint(1), merged[0].ID)
	assert.Equal(t, uint(1), merged[1].ID)
	assert.Equal(t, uint(2), merged[2].ID)
}
