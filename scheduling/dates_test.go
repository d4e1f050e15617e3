package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRange_AnchorsOnSunday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"sunday itself", time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"midweek", time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)},
		{"saturday night", time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)},
	}

	wantStart := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.date)
			assert.Equal(t, wantStart, start)
			assert.Equal(t, wantEnd, end)
		})
	}
}

func TestMonthRange_LastDayIsComputedNotFixed(t *testing.T) {
	start, end := MonthRange(time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.Month(2), end.Month())
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 6, 12, 15, 30, 45, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 12, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}
