// Package seed supplies the fixed demonstration roster and, on request,
// generated patients and doctors for larger runs.
package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"hospitalflow/internal/domain"
	"hospitalflow/internal/service/registry"
)

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"General Practice",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
}

var slotLabels = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"14:00-15:00",
	"15:00-16:00",
}

func Patients() []registry.RegisterPatientInput {
	return []registry.RegisterPatientInput{
		{Name: "John Doe", Age: 35, Contact: "john.doe@example.com", Category: domain.CategoryGeneral},
		{Name: "Jane Smith", Age: 28, Contact: "+1-555-0102", Category: domain.CategoryPremium},
		{Name: "Robert Brown", Age: 62, Contact: "robert.brown@example.com", Category: domain.CategoryEmergency},
	}
}

func Doctors() []registry.RegisterDoctorInput {
	return []registry.RegisterDoctorInput{
		{Name: "Dr. Sarah Wilson", Specialization: "Cardiology", Available: true, TimeSlots: []string{"09:00-10:00", "10:00-11:00"}},
		{Name: "Dr. Michael Chen", Specialization: "Neurology", Available: true, TimeSlots: []string{"14:00-15:00", "15:00-16:00"}},
		{Name: "Dr. Emily Davis", Specialization: "Pediatrics", Available: false, TimeSlots: []string{"11:00-12:00"}},
	}
}

// RandomPatients returns n generated patients. The same seed always yields the
// same roster.
func RandomPatients(n int, seed uint64) []registry.RegisterPatientInput {
	f := gofakeit.New(seed)
	categories := []domain.Category{domain.CategoryGeneral, domain.CategoryPremium, domain.CategoryEmergency}

	out := make([]registry.RegisterPatientInput, 0, max(n, 0))
	for i := 0; i < n; i++ {
		contact := f.Email()
		if f.Bool() {
			contact = f.Phone()
		}
		out = append(out, registry.RegisterPatientInput{
			Name:     f.Name(),
			Age:      f.Number(1, 95),
			Contact:  contact,
			Category: categories[f.Number(0, len(categories)-1)],
		})
	}
	return out
}

func RandomDoctors(n int, seed uint64) []registry.RegisterDoctorInput {
	f := gofakeit.New(seed)

	out := make([]registry.RegisterDoctorInput, 0, max(n, 0))
	for i := 0; i < n; i++ {
		first := f.Number(0, len(slotLabels)-1)
		last := f.Number(first, len(slotLabels)-1)
		out = append(out, registry.RegisterDoctorInput{
			Name:           fmt.Sprintf("Dr. %s %s", f.FirstName(), f.LastName()),
			Specialization: specialties[f.Number(0, len(specialties)-1)],
			Available:      f.Number(0, 9) > 1,
			TimeSlots:      append([]string(nil), slotLabels[first:last+1]...),
		})
	}
	return out
}
