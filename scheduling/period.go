package scheduling

import (
	"time"

	"salonbook-backend/models"
)

// Period selects a reporting window for filtering appointments.
type Period string

const (
	PeriodAll    Period = "all"
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

// FilterByPeriod returns the appointments whose date falls inside the
// requested period, preserving input order. All boundaries are computed
// from the caller-supplied now, both ends inclusive.
//
// A custom period needs both dates; if either is missing the filter
// degrades to "all" rather than failing, as does an unknown period.
func FilterByPeriod(appointments []models.Appointment, period Period, now time.Time, customStart, customEnd *time.Time) []models.Appointment {
	var start, end time.Time

	switch period {
	case PeriodToday:
		start, end = DayRange(now)
	case PeriodWeek:
		start, end = WeekRange(now)
	case PeriodMonth:
		start, end = MonthRange(now)
	case PeriodCustom:
		if customStart == nil || customEnd == nil {
			return appointments
		}
		start = BeginningOfDay(*customStart)
		end = EndOfDay(*customEnd)
	default:
		// PeriodAll and anything unrecognized
		return appointments
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if !ap.Date.Before(start) && !ap.Date.After(end) {
			filtered = append(filtered, ap)
		}
	}
	return filtered
}
