package scheduling

import (
	"sort"
	"time"

	"salonbook-backend/models"
)

// WeeklyStat aggregates one Sunday-start week of activity for the admin
// dashboard charts.
type WeeklyStat struct {
	WeekStart    time.Time `json:"week_start"`
	Week         string    `json:"week"`
	Appointments int       `json:"appointments"`
	Revenue      float64   `json:"revenue"`
	Services     int       `json:"services"`
}

// Totals are the overall dashboard numbers, computed separately from the
// weekly buckets.
type Totals struct {
	Revenue            float64 `json:"total_revenue"`
	Appointments       int     `json:"total_appointments"`
	Pending            int     `json:"pending_appointments"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
}

const maxWeeklyBuckets = 8

// WeeklyStats buckets appointments by the week containing their date and
// returns the most recent buckets in ascending week-start order, at most
// maxWeeklyBuckets of them. Canceled appointments are left out entirely.
func WeeklyStats(appointments []models.Appointment) []WeeklyStat {
	buckets := make(map[string]*WeeklyStat)

	for i := range appointments {
		ap := &appointments[i]
		if ap.Status == models.StatusCanceled {
			continue
		}

		start, _ := WeekRange(ap.Date)
		key := start.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &WeeklyStat{
				WeekStart: start,
				Week:      start.Format("02 Jan"),
			}
			buckets[key] = b
		}

		b.Appointments++
		b.Revenue += ap.TotalPrice()
		b.Services += len(ap.Services)
	}

	stats := make([]WeeklyStat, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, *b)
	}

	// Sort by the actual week start, not the display label.
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].WeekStart.Before(stats[j].WeekStart)
	})

	if len(stats) > maxWeeklyBuckets {
		stats = stats[len(stats)-maxWeeklyBuckets:]
	}
	return stats
}

// OverallTotals computes the dashboard headline numbers. Revenue and the
// appointment count exclude canceled appointments; the average duration
// is taken over every appointment, canceled included, and is zero when
// there are none.
func OverallTotals(appointments []models.Appointment) Totals {
	var t Totals
	var totalDuration int

	for i := range appointments {
		ap := &appointments[i]
		totalDuration += ap.TotalDurationMinutes()

		if ap.Status == models.StatusPending {
			t.Pending++
		}
		if ap.Status == models.StatusCanceled {
			continue
		}
		t.Revenue += ap.TotalPrice()
		t.Appointments++
	}

	if len(appointments) > 0 {
		t.AvgDurationMinutes = float64(totalDuration) / float64(len(appointments))
	}
	return t
}
