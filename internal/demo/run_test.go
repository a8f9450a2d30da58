package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"hospitalflow/internal/config"
	"hospitalflow/internal/domain"
	"hospitalflow/internal/journal"
	"hospitalflow/internal/notification"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel:            "info",
		PatientChannel:      notification.ChannelSMS,
		StaffChannel:        notification.ChannelEmail,
		StaffAddress:        "staff@hospital.example",
		DemoSeed:            42,
		DemoDurationMinutes: 30,
	}
}

func TestRun_Transcript(t *testing.T) {
	var out bytes.Buffer
	j := journal.New(journal.Options{})
	app, err := NewApp(testConfig(), &out, j)
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	if err := app.Run(context.Background(), &out, date); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	got := out.String()

	want := []string{
		"=== Registering patients ===",
		"Patient 1: John Doe, age 35, General",
		"=== Registering doctors ===",
		"Doctor 3: Dr. Emily Davis, Pediatrics, available=false",
		"=== Booking appointments ===",
		"[SMS] to=john.doe@example.com: appointment 1 status changed to Scheduled",
		"[EMAIL] to=staff@hospital.example: appointment 1 for patient John Doe with Dr. Sarah Wilson status changed to Scheduled",
		"Booked 1: John Doe with Dr. Sarah Wilson on 2026-10-16 at 09:00-10:00 [Scheduled]",
		"=== Completing appointment ===",
		"Completed 1: John Doe with Dr. Sarah Wilson on 2026-10-16 at 09:00-10:00 [Completed]",
		"=== Billing ===",
		"General patient, 30 minutes (standard): 800.00",
		"Premium patient, 30 minutes (premium): 1305.00",
		"Emergency patient, 30 minutes (emergency): 3100.00",
		"=== Cancelling appointment ===",
		"Cancelled 2: Jane Smith with Dr. Michael Chen on 2026-10-16 at 14:00-15:00 [Cancelled]",
		"=== All appointments ===",
		"Appointment 1: John Doe with Dr. Sarah Wilson on 2026-10-16 at 09:00-10:00 [Completed]",
		"Appointment 2: Jane Smith with Dr. Michael Chen on 2026-10-16 at 14:00-15:00 [Cancelled]",
		"=== Log ===",
		fmt.Sprintf("Journal entries: %d", j.Len()),
	}
	last := -1
	for _, w := range want {
		i := strings.Index(got, w)
		if i < 0 {
			t.Fatalf("transcript missing %q:\n%s", w, got)
		}
		if i < last {
			t.Fatalf("transcript has %q out of order:\n%s", w, got)
		}
		last = i
	}
}

func TestRun_RandomRoster(t *testing.T) {
	cfg := testConfig()
	cfg.DemoRandomPatients = 4
	cfg.DemoRandomDoctors = 2

	var out bytes.Buffer
	app, err := NewApp(cfg, &out, nil)
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}
	if err := app.Run(context.Background(), &out, time.Now()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	patients, _ := app.Registry.Patients(context.Background())
	doctors, _ := app.Registry.Doctors(context.Background())
	if len(patients) != 7 || len(doctors) != 5 {
		t.Fatalf("patients = %d doctors = %d, want 7 and 5", len(patients), len(doctors))
	}
}

func TestNewApp_UnknownChannel(t *testing.T) {
	cfg := testConfig()
	cfg.StaffChannel = notification.Channel("pager")

	_, err := NewApp(cfg, nil, nil)
	if !errors.Is(err, notification.ErrUnknownChannel) {
		t.Fatalf("error = %v, want %v", err, notification.ErrUnknownChannel)
	}
}

func TestApp_DetachedStaffObserverStopsStaffMessages(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	app, err := NewApp(testConfig(), &out, nil)
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	staff := notification.NewStaffObserver(mustSender(t, notification.ChannelEmail, &out), "second@hospital.example")
	app.Subject.Attach(staff)

	p, _ := app.Registry.RegisterPatient(ctx, registryPatient("Ann Lee", domain.CategoryGeneral))
	d, _ := app.Registry.RegisterDoctor(ctx, registryDoctor("Dr. Roe"))
	appt, err := app.Appointments.Book(ctx, bookInput(p.ID, d.ID))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if strings.Count(out.String(), "second@hospital.example") != 1 {
		t.Fatalf("attached observer not notified:\n%s", out.String())
	}

	app.Subject.Detach(staff)
	if _, err := app.Appointments.Cancel(ctx, appt.ID); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if strings.Count(out.String(), "second@hospital.example") != 1 {
		t.Fatalf("detached observer still notified:\n%s", out.String())
	}
}
