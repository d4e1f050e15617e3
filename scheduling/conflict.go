package scheduling

import (
	"errors"
	"time"

	"salonbook-backend/models"
)

var ErrInvalidDate = errors.New("invalid appointment date")

// Action says what should happen with a booking request.
type Action int

const (
	ActionCreateNew Action = iota
	ActionMerge
)

// Decision is the outcome of conflict resolution for a booking request.
// On ActionMerge, Target is the existing same-week appointment the new
// services should be folded into; the caller presents this as a choice
// and may still create a standalone appointment if the customer refuses.
type Decision struct {
	Action   Action
	Target   *models.Appointment
	Date     time.Time
	Services []models.Service
}

// Resolve decides whether a booking request should be merged into one of
// the customer's existing appointments. An appointment is a merge
// candidate when it is not canceled and falls in the same Sunday-Saturday
// week as the requested date; the earliest one wins.
func Resolve(existing []models.Appointment, requestedDate time.Time, requestedServices []models.Service) (Decision, error) {
	if requestedDate.IsZero() {
		return Decision{}, ErrInvalidDate
	}
	if len(requestedServices) == 0 {
		return Decision{}, models.ErrAppointmentNoServices
	}

	weekStart, weekEnd := WeekRange(requestedDate)

	var target *models.Appointment
	for i := range existing {
		ap := &existing[i]
		if ap.Status == models.StatusCanceled {
			continue
		}
		if ap.Date.Before(weekStart) || ap.Date.After(weekEnd) {
			continue
		}
		if target == nil || ap.Date.Before(target.Date) {
			target = ap
		}
	}

	if target != nil {
		return Decision{
			Action:   ActionMerge,
			Target:   target,
			Date:     requestedDate,
			Services: requestedServices,
		}, nil
	}

	return Decision{
		Action:   ActionCreateNew,
		Date:     requestedDate,
		Services: requestedServices,
	}, nil
}

// MergeServices combines the services of an existing appointment with the
// newly requested ones. Duplicate service ids are deliberately kept: the
// customer booked the service twice and is billed twice.
func MergeServices(existing, added []models.Service) []models.Service {
	merged := make([]models.Service, 0, len(existing)+len(added))
	merged = append(merged, existing...)
	merged = append(merged, added...)
	return merged
}
