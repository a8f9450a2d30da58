package domain

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{raw: "general", want: CategoryGeneral},
		{raw: "", want: CategoryGeneral},
		{raw: " Premium ", want: CategoryPremium},
		{raw: "EMERGENCY", want: CategoryEmergency},
		{raw: "vip", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("category = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	if AppointmentStatusScheduled.Terminal() {
		t.Fatalf("Scheduled must not be terminal")
	}
	if !AppointmentStatusCompleted.Terminal() || !AppointmentStatusCancelled.Terminal() {
		t.Fatalf("Completed and Cancelled must be terminal")
	}
}

func TestAppointmentStatusRoundTrip(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled} {
		got, err := ParseAppointmentStatus(s.String())
		if err != nil {
			t.Fatalf("ParseAppointmentStatus(%q) error: %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("status = %v, want %v", got, s)
		}
	}
	if _, err := ParseAppointmentStatus("pending"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestDoctorCloneDetachesTimeSlots(t *testing.T) {
	d := Doctor{Name: "Dr. A", TimeSlots: []string{"09:00-10:00"}}
	c := d.Clone()
	c.TimeSlots[0] = "changed"
	if d.TimeSlots[0] != "09:00-10:00" {
		t.Fatalf("clone shares time slots with original")
	}
}
