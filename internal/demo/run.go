package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"hospitalflow/internal/domain"
	"hospitalflow/internal/seed"
	"hospitalflow/internal/service/appointments"
)

const dateLayout = "2006-01-02"

// Run plays the demonstration against a freshly built App. Any failure stops
// the script and is returned.
func (a *App) Run(ctx context.Context, out io.Writer, date time.Time) error {
	w := &transcript{out: out}

	w.section("Registering patients")
	patientInputs := append(seed.Patients(), seed.RandomPatients(a.cfg.DemoRandomPatients, a.cfg.DemoSeed)...)
	var patients []domain.Patient
	for _, in := range patientInputs {
		p, err := a.Registry.RegisterPatient(ctx, in)
		if err != nil {
			return fmt.Errorf("register patient %q: %w", in.Name, err)
		}
		patients = append(patients, p)
		w.line("Patient %d: %s, age %d, %s, contact %s", p.ID, p.Name, p.Age, p.Category, p.Contact)
	}

	w.section("Registering doctors")
	doctorInputs := append(seed.Doctors(), seed.RandomDoctors(a.cfg.DemoRandomDoctors, a.cfg.DemoSeed)...)
	var doctors []domain.Doctor
	for _, in := range doctorInputs {
		d, err := a.Registry.RegisterDoctor(ctx, in)
		if err != nil {
			return fmt.Errorf("register doctor %q: %w", in.Name, err)
		}
		doctors = append(doctors, d)
		w.line("Doctor %d: %s, %s, available=%t, slots %v", d.ID, d.Name, d.Specialization, d.Available, d.TimeSlots)
	}

	w.section("Booking appointments")
	bookings := []appointments.BookInput{
		{PatientID: patients[0].ID, DoctorID: doctors[0].ID, Date: date, TimeSlot: doctors[0].TimeSlots[0]},
		{PatientID: patients[1].ID, DoctorID: doctors[1].ID, Date: date, TimeSlot: doctors[1].TimeSlots[0]},
	}
	var booked []domain.Appointment
	for _, in := range bookings {
		appt, err := a.Appointments.Book(ctx, in)
		if err != nil {
			return fmt.Errorf("book appointment: %w", err)
		}
		booked = append(booked, appt)
		w.appointment("Booked", appt)
	}

	w.section("Completing appointment")
	completed, err := a.Appointments.Complete(ctx, booked[0].ID)
	if err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}
	w.appointment("Completed", completed)

	w.section("Billing")
	for _, category := range []domain.Category{domain.CategoryGeneral, domain.CategoryPremium, domain.CategoryEmergency} {
		q, err := a.Billing.Quote(ctx, a.cfg.DemoDurationMinutes, category)
		if err != nil {
			return fmt.Errorf("bill %s: %w", category, err)
		}
		w.line("%s patient, %d minutes (%s): %.2f", q.Category, q.DurationMinutes, q.Strategy, q.Amount)
	}

	w.section("Cancelling appointment")
	cancelled, err := a.Appointments.Cancel(ctx, booked[1].ID)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	w.appointment("Cancelled", cancelled)

	w.section("All appointments")
	all, err := a.Appointments.List(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}
	for _, appt := range all {
		w.appointment("Appointment", appt)
	}

	w.section("Log")
	w.line("Journal entries: %d", a.Journal.Len())

	return w.err
}

type transcript struct {
	out io.Writer
	err error
}

func (t *transcript) section(title string) {
	t.printf("\n=== %s ===\n", title)
}

func (t *transcript) line(format string, args ...any) {
	t.printf("  "+format+"\n", args...)
}

func (t *transcript) appointment(verb string, a domain.Appointment) {
	t.line("%s %d: %s with %s on %s at %s [%s]",
		verb, a.ID, a.Patient.Name, a.Doctor.Name, a.Date.Format(dateLayout), a.TimeSlot, a.Status)
}

func (t *transcript) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.out, format, args...)
}
