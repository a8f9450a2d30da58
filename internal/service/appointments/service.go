package appointments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hospitalflow/internal/domain"
	"hospitalflow/internal/store"
)

var ErrDoctorUnavailable = errors.New("doctor is not available")

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Notifier is told about every persisted status change.
type Notifier interface {
	Notify(ctx context.Context, appt domain.Appointment) error
}

type Service struct {
	patients     store.Repository[domain.Patient]
	doctors      store.Repository[domain.Doctor]
	appointments store.Repository[domain.Appointment]
	notifier     Notifier
	log          *slog.Logger
}

func NewService(
	patients store.Repository[domain.Patient],
	doctors store.Repository[domain.Doctor],
	appointments store.Repository[domain.Appointment],
	notifier Notifier,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		notifier:     notifier,
		log:          log.With(slog.String("component", "appointments")),
	}
}

type BookInput struct {
	PatientID int
	DoctorID  int
	Date      time.Time
	TimeSlot  string
}

// Book creates a Scheduled appointment. Slot labels are not checked for
// overlap with existing bookings.
func (s *Service) Book(ctx context.Context, in BookInput) (domain.Appointment, error) {
	if in.Date.IsZero() {
		return domain.Appointment{}, validationError("date is required")
	}

	patient, err := s.patients.GetByID(ctx, in.PatientID)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("load patient: %w", err)
	}
	doctor, err := s.doctors.GetByID(ctx, in.DoctorID)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("load doctor: %w", err)
	}
	if !doctor.Available {
		return domain.Appointment{}, fmt.Errorf("doctor %d: %w", doctor.ID, ErrDoctorUnavailable)
	}

	appt, err := s.appointments.Add(ctx, domain.Appointment{
		Patient:  patient,
		Doctor:   doctor,
		Date:     in.Date,
		TimeSlot: strings.TrimSpace(in.TimeSlot),
		Status:   domain.AppointmentStatusScheduled,
	})
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	s.log.Info(
		"appointment booked",
		slog.Int("appointment_id", appt.ID),
		slog.Int("patient_id", patient.ID),
		slog.Int("doctor_id", doctor.ID),
		slog.String("time_slot", appt.TimeSlot),
	)

	return appt, s.notify(ctx, appt)
}

// Cancel moves the appointment to Cancelled. Repeating it on an appointment
// that is already terminal is accepted and notifies again.
func (s *Service) Cancel(ctx context.Context, id int) (domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusCancelled)
}

// Complete moves the appointment to Completed, with the same repeat rules as
// Cancel.
func (s *Service) Complete(ctx context.Context, id int) (domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusCompleted)
}

func (s *Service) Get(ctx context.Context, id int) (domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]domain.Appointment, error) {
	return s.filter(ctx, func(a domain.Appointment) bool { return a.Patient.ID == patientID })
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int) ([]domain.Appointment, error) {
	return s.filter(ctx, func(a domain.Appointment) bool { return a.Doctor.ID == doctorID })
}

func (s *Service) transition(ctx context.Context, id int, to domain.AppointmentStatus) (domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("load appointment: %w", err)
	}

	from := appt.Status
	if from.Terminal() {
		s.log.Warn(
			"appointment already in terminal status",
			slog.Int("appointment_id", appt.ID),
			slog.String("status", from.String()),
		)
	}

	appt.Status = to
	if err := s.appointments.Update(ctx, appt); err != nil {
		return domain.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}

	s.log.Info(
		"appointment status changed",
		slog.Int("appointment_id", appt.ID),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return appt, s.notify(ctx, appt)
}

func (s *Service) notify(ctx context.Context, appt domain.Appointment) error {
	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.Notify(ctx, appt); err != nil {
		return fmt.Errorf("notify appointment %d: %w", appt.ID, err)
	}
	return nil
}

func (s *Service) filter(ctx context.Context, keep func(domain.Appointment) bool) ([]domain.Appointment, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Appointment, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}
