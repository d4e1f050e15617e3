package scheduling

import (
	"time"

	"salonbook-backend/models"
)

// Check is the result of a policy predicate. A denied check carries a
// user-facing reason; it is never an error.
type Check struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CanEdit reports whether an appointment scheduled at the given time may
// still be changed. Changes are allowed up to EditLeadTime before the
// appointment; exactly at the boundary still counts as allowed.
func CanEdit(scheduledAt, now time.Time) Check {
	if scheduledAt.Sub(now) >= EditLeadTime {
		return Check{Allowed: true}
	}
	return Check{Reason: "cannot edit appointments with less than 2 days' notice"}
}

// CanCancel reports whether an appointment in the given status may be
// canceled. Unlike editing there is no time restriction.
func CanCancel(status models.AppointmentStatus) Check {
	switch status {
	case models.StatusDone:
		return Check{Reason: "cannot cancel a completed appointment"}
	case models.StatusCanceled:
		return Check{Reason: "appointment is already canceled"}
	case models.StatusPending, models.StatusConfirmed:
		return Check{Allowed: true}
	}
	return Check{Allowed: true}
}
