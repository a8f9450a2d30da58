package notification

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"hospitalflow/internal/domain"
)

// Subject fans an appointment change out to its observers, in the order they
// were attached. The first observer error ends the round.
type Subject struct {
	observers []Observer
}

func NewSubject(observers ...Observer) *Subject {
	return &Subject{observers: slices.Clone(observers)}
}

// Attach appends o. The same observer may be attached more than once.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

// Detach removes the first occurrence of o, if any. Observers whose dynamic
// type is not comparable can never be matched, so detaching one is a no-op.
func (s *Subject) Detach(o Observer) {
	if t := reflect.TypeOf(o); t == nil || !t.Comparable() {
		return
	}
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

func (s *Subject) Len() int {
	return len(s.observers)
}

func (s *Subject) Notify(ctx context.Context, appt domain.Appointment) error {
	for i, o := range slices.Clone(s.observers) {
		if err := o.OnAppointmentChanged(ctx, appt); err != nil {
			return fmt.Errorf("observer %d: %w", i, err)
		}
	}
	return nil
}
