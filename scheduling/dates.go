package scheduling

import "time"

// Business constants for the booking rules. Weeks run Sunday through
// Saturday everywhere: reporting buckets and same-week merge detection
// share the same boundary.
const (
	WeekStartDay = time.Sunday
	EditLeadTime = 48 * time.Hour
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DayRange returns the inclusive bounds of t's calendar day.
func DayRange(t time.Time) (time.Time, time.Time) {
	return BeginningOfDay(t), EndOfDay(t)
}

// WeekRange returns the inclusive bounds of the week containing t,
// from WeekStartDay at midnight through six days later at 23:59:59.999.
func WeekRange(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) - int(WeekStartDay) + 7) % 7
	start := BeginningOfDay(t).AddDate(0, 0, -offset)
	return start, EndOfDay(start.AddDate(0, 0, 6))
}

// MonthRange returns the inclusive bounds of t's calendar month. The end
// is computed from the first day of the next month, not a fixed day count.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, EndOfDay(start.AddDate(0, 1, -1))
}
