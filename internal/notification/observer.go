package notification

import (
	"context"
	"fmt"

	"hospitalflow/internal/domain"
)

// Observer reacts to an appointment status change. Subject.Detach matches
// observers with ==, so implementations should be pointer types.
type Observer interface {
	OnAppointmentChanged(ctx context.Context, appt domain.Appointment) error
}

// PatientObserver tells the patient, at their contact address.
type PatientObserver struct {
	sender Sender
}

func NewPatientObserver(sender Sender) *PatientObserver {
	return &PatientObserver{sender: sender}
}

func (o *PatientObserver) OnAppointmentChanged(ctx context.Context, appt domain.Appointment) error {
	msg := fmt.Sprintf("appointment %d status changed to %s", appt.ID, appt.Status)
	return o.sender.Send(ctx, appt.Patient.Contact, msg)
}

// StaffObserver tells the front desk, at one fixed address.
type StaffObserver struct {
	sender  Sender
	address string
}

func NewStaffObserver(sender Sender, address string) *StaffObserver {
	return &StaffObserver{sender: sender, address: address}
}

func (o *StaffObserver) OnAppointmentChanged(ctx context.Context, appt domain.Appointment) error {
	msg := fmt.Sprintf(
		"appointment %d for patient %s with %s status changed to %s",
		appt.ID, appt.Patient.Name, appt.Doctor.Name, appt.Status,
	)
	return o.sender.Send(ctx, o.address, msg)
}
