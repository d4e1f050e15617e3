package scheduling

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withServices(id uint, date time.Time, status models.AppointmentStatus, services ...models.Service) models.Appointment {
	return models.Appointment{ID: id, Date: date, Status: status, Services: services}
}

func TestWeeklyStats_SameWeekAccumulates(t *testing.T) {
	monday := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, 6, 13, 15, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		withServices(1, monday, models.StatusConfirmed, models.Service{ID: 1, Price: 50.0, DurationMinutes: 45}),
		withServices(2, thursday, models.StatusDone,
			models.Service{ID: 2, Price: 20.0, DurationMinutes: 30},
			models.Service{ID: 3, Price: 10.0, DurationMinutes: 15},
		),
	}

	stats := WeeklyStats(appointments)

	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Appointments)
	assert.Equal(t, 80.0, stats[0].Revenue)
	assert.Equal(t, 3, stats[0].Services)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), stats[0].WeekStart)
	assert.Equal(t, "09 Jun", stats[0].Week)
}

func TestWeeklyStats_ExcludesCanceled(t *testing.T) {
	date := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		withServices(1, date, models.StatusCanceled, models.Service{ID: 1, Price: 50.0}),
	}

	stats := WeeklyStats(appointments)

	assert.Empty(t, stats)
}

func TestWeeklyStats_KeepsMostRecentEightWeeks(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	var appointments []models.Appointment
	for i := 0; i < 20; i++ {
		appointments = append(appointments, withServices(
			uint(i+1),
			base.AddDate(0, 0, 7*i),
			models.StatusConfirmed,
			models.Service{ID: 1, Price: 10.0},
		))
	}

	stats := WeeklyStats(appointments)

	require.Len(t, stats, 8)
	for i := 1; i < len(stats); i++ {
		assert.True(t, stats[i-1].WeekStart.Before(stats[i].WeekStart))
	}
	// Last of 20 weekly appointments falls in the week of 2024-05-12.
	lastStart, _ := WeekRange(base.AddDate(0, 0, 7*19))
	assert.Equal(t, lastStart, stats[len(stats)-1].WeekStart)
	firstStart, _ := WeekRange(base.AddDate(0, 0, 7*12))
	assert.Equal(t, firstStart, stats[0].WeekStart)
}

func TestWeeklyStats_FewerThanEightWeeks(t *testing.T) {
	appointments := []models.Appointment{
		withServices(1, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), models.StatusConfirmed, models.Service{ID: 1, Price: 10.0}),
		withServices(2, time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC), models.StatusConfirmed, models.Service{ID: 1, Price: 10.0}),
	}

	stats := WeeklyStats(appointments)

	assert.Len(t, stats, 2)
}

func TestWeeklyStats_Idempotent(t *testing.T) {
	appointments := []models.Appointment{
		withServices(1, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), models.StatusConfirmed, models.Service{ID: 1, Price: 50.0}),
		withServices(2, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), models.StatusPending, models.Service{ID: 2, Price: 30.0}),
	}

	assert.Equal(t, WeeklyStats(appointments), WeeklyStats(appointments))
}

func TestOverallTotals(t *testing.T) {
	date := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		withServices(1, date, models.StatusPending, models.Service{ID: 1, Price: 50.0, DurationMinutes: 60}),
		withServices(2, date, models.StatusDone, models.Service{ID: 2, Price: 30.0, DurationMinutes: 30}),
		withServices(3, date, models.StatusCanceled, models.Service{ID: 3, Price: 100.0, DurationMinutes: 90}),
	}

	totals := OverallTotals(appointments)

	// Canceled appointments are out of revenue and counts but still weigh
	// into the average duration.
	assert.Equal(t, 80.0, totals.Revenue)
	assert.Equal(t, 2, totals.Appointments)
	assert.Equal(t, 1, totals.Pending)
	assert.Equal(t, 60.0, totals.AvgDurationMinutes)
}

func TestOverallTotals_EmptyInput(t *testing.T) {
	totals := OverallTotals(nil)

	assert.Equal(t, 0.0, totals.Revenue)
	assert.Equal(t, 0, totals.Appointments)
	assert.Equal(t, 0, totals.Pending)
	assert.Equal(t, 0.0, totals.AvgDurationMinutes)
}
