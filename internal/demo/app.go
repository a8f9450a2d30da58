// Package demo wires the workflow components together and plays the fixed
// demonstration script against them.
package demo

import (
	"fmt"
	"io"

	"hospitalflow/internal/billing"
	"hospitalflow/internal/config"
	"hospitalflow/internal/domain"
	"hospitalflow/internal/journal"
	"hospitalflow/internal/notification"
	"hospitalflow/internal/service/appointments"
	"hospitalflow/internal/service/registry"
	"hospitalflow/internal/store/memory"
)

type App struct {
	Registry     *registry.Service
	Appointments *appointments.Service
	Billing      *billing.Service
	Subject      *notification.Subject
	Journal      *journal.Journal

	cfg config.Config
}

// NewApp builds every component around one journal. Notification stubs write
// to console.
func NewApp(cfg config.Config, console io.Writer, j *journal.Journal) (*App, error) {
	if j == nil {
		j = journal.New(journal.Options{})
	}
	log := j.Logger()

	patients := memory.New[domain.Patient]("patient", log)
	doctors := memory.New[domain.Doctor]("doctor", log)
	appts := memory.New[domain.Appointment]("appointment", log)

	patientSender, err := notification.NewSender(cfg.PatientChannel, console, log)
	if err != nil {
		return nil, fmt.Errorf("patient sender: %w", err)
	}
	staffSender, err := notification.NewSender(cfg.StaffChannel, console, log)
	if err != nil {
		return nil, fmt.Errorf("staff sender: %w", err)
	}

	subject := notification.NewSubject(
		notification.NewPatientObserver(patientSender),
		notification.NewStaffObserver(staffSender, cfg.StaffAddress),
	)

	return &App{
		Registry:     registry.NewService(patients, doctors, log),
		Appointments: appointments.NewService(patients, doctors, appts, subject, log),
		Billing:      billing.NewService(log),
		Subject:      subject,
		Journal:      j,
		cfg:          cfg,
	}, nil
}
