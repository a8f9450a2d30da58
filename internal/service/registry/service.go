package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hospitalflow/internal/domain"
	"hospitalflow/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service owns patient and doctor records.
type Service struct {
	patients store.Repository[domain.Patient]
	doctors  store.Repository[domain.Doctor]
	log      *slog.Logger
}

func NewService(patients store.Repository[domain.Patient], doctors store.Repository[domain.Doctor], log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		patients: patients,
		doctors:  doctors,
		log:      log.With(slog.String("component", "registry")),
	}
}

type RegisterPatientInput struct {
	Name     string
	Age      int
	Contact  string
	Category domain.Category
}

func (s *Service) RegisterPatient(ctx context.Context, in RegisterPatientInput) (domain.Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Patient{}, validationError("patient name is required")
	}
	return s.patients.Add(ctx, domain.Patient{
		Name:     name,
		Age:      in.Age,
		Contact:  strings.TrimSpace(in.Contact),
		Category: in.Category,
	})
}

type RegisterDoctorInput struct {
	Name           string
	Specialization string
	Available      bool
	TimeSlots      []string
}

func (s *Service) RegisterDoctor(ctx context.Context, in RegisterDoctorInput) (domain.Doctor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Doctor{}, validationError("doctor name is required")
	}
	return s.doctors.Add(ctx, domain.Doctor{
		Name:           name,
		Specialization: strings.TrimSpace(in.Specialization),
		Available:      in.Available,
		TimeSlots:      in.TimeSlots,
	})
}

// AppendMedicalHistory adds note as a new line of the patient's history.
func (s *Service) AppendMedicalHistory(ctx context.Context, patientID int, note string) (domain.Patient, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return domain.Patient{}, validationError("note is required")
	}

	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return domain.Patient{}, fmt.Errorf("load patient: %w", err)
	}
	if p.MedicalHistory == "" {
		p.MedicalHistory = note
	} else {
		p.MedicalHistory += "\n" + note
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return domain.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *Service) SetDoctorAvailability(ctx context.Context, doctorID int, available bool) (domain.Doctor, error) {
	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return domain.Doctor{}, fmt.Errorf("load doctor: %w", err)
	}
	if d.Available == available {
		return d, nil
	}
	d.Available = available
	if err := s.doctors.Update(ctx, d); err != nil {
		return domain.Doctor{}, fmt.Errorf("update doctor: %w", err)
	}
	s.log.Info("doctor availability changed", slog.Int("doctor_id", d.ID), slog.Bool("available", available))
	return d, nil
}

// RemovePatient deletes the record. Appointments keep their own copy of the
// patient and are left untouched.
func (s *Service) RemovePatient(ctx context.Context, id int) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) RemoveDoctor(ctx context.Context, id int) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) Patients(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) Doctors(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctors.List(ctx)
}
