package models

import (
	"errors"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusDone      AppointmentStatus = "DONE"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// Valid reports whether s is one of the four known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCanceled:
		return true
	}
	return false
}

var (
	ErrAppointmentNoServices = errors.New("appointment must have at least one service")
	ErrInvalidStatus         = errors.New("invalid appointment status")
)

type Appointment struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	User     User              `gorm:"foreignKey:UserID" json:"user"`
	UserID   uint              `json:"user_id"`
	Services []Service         `gorm:"many2many:appointment_services;" json:"services"`
	Date     time.Time         `json:"date"`
	Status   AppointmentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPrice sums the prices of the booked services. Totals are always
// derived from the service snapshot, never stored on the row.
func (a *Appointment) TotalPrice() float64 {
	var total float64
	for _, s := range a.Services {
		total += s.Price
	}
	return total
}

// TotalDurationMinutes sums the durations of the booked services.
func (a *Appointment) TotalDurationMinutes() int {
	var total int
	for _, s := range a.Services {
		total += s.DurationMinutes
	}
	return total
}

func (a *Appointment) Validate() error {
	if len(a.Services) == 0 {
		return ErrAppointmentNoServices
	}
	return nil
}
