package domain

import "slices"

// Doctor.TimeSlots are free-form labels; bookings are never checked against them.
type Doctor struct {
	ID             int
	Name           string
	Specialization string
	Available      bool
	TimeSlots      []string
}

func (d *Doctor) EntityID() int       { return d.ID }
func (d *Doctor) SetEntityID(id int)  { d.ID = id }
func (d *Doctor) DisplayName() string { return d.Name }

func (d *Doctor) Clone() Doctor {
	out := *d
	out.TimeSlots = slices.Clone(d.TimeSlots)
	return out
}
