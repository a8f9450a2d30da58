package domain

import (
	"fmt"
	"strings"
	"time"
)

type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = iota
	AppointmentStatusCompleted
	AppointmentStatusCancelled
)

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentStatusScheduled:
		return "Scheduled"
	case AppointmentStatusCompleted:
		return "Completed"
	case AppointmentStatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("AppointmentStatus(%d)", int(s))
	}
}

// Terminal reports whether no further transition is intended from s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "scheduled":
		return AppointmentStatusScheduled, nil
	case "completed":
		return AppointmentStatusCompleted, nil
	case "cancelled", "canceled":
		return AppointmentStatusCancelled, nil
	default:
		return 0, fmt.Errorf("unknown appointment status %q", raw)
	}
}

// Appointment keeps snapshots of the patient and doctor taken at booking time.
// Removing either record afterwards does not touch the appointment.
type Appointment struct {
	ID       int
	Patient  Patient
	Doctor   Doctor
	Date     time.Time
	TimeSlot string
	Status   AppointmentStatus
}

func (a *Appointment) EntityID() int      { return a.ID }
func (a *Appointment) SetEntityID(id int) { a.ID = id }

func (a *Appointment) DisplayName() string {
	return fmt.Sprintf("appointment %d", a.ID)
}

func (a *Appointment) Clone() Appointment {
	out := *a
	out.Patient = a.Patient.Clone()
	out.Doctor = a.Doctor.Clone()
	return out
}
