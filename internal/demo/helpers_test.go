package demo

import (
	"io"
	"testing"
	"time"

	"hospitalflow/internal/domain"
	"hospitalflow/internal/notification"
	"hospitalflow/internal/service/appointments"
	"hospitalflow/internal/service/registry"
)

func mustSender(t *testing.T, channel notification.Channel, console io.Writer) notification.Sender {
	t.Helper()
	s, err := notification.NewSender(channel, console, nil)
	if err != nil {
		t.Fatalf("NewSender error: %v", err)
	}
	return s
}

func registryPatient(name string, category domain.Category) registry.RegisterPatientInput {
	return registry.RegisterPatientInput{Name: name, Age: 40, Contact: "ann@example.com", Category: category}
}

func registryDoctor(name string) registry.RegisterDoctorInput {
	return registry.RegisterDoctorInput{Name: name, Specialization: "General Practice", Available: true, TimeSlots: []string{"09:00-10:00"}}
}

func bookInput(patientID, doctorID int) appointments.BookInput {
	return appointments.BookInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "09:00-10:00",
	}
}
