package domain

import (
	"fmt"
	"strings"
)

// Category classifies a patient and drives billing strategy selection.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryPremium
	CategoryEmergency
)

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryPremium:
		return "Premium"
	case CategoryEmergency:
		return "Emergency"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "general", "":
		return CategoryGeneral, nil
	case "premium":
		return CategoryPremium, nil
	case "emergency":
		return CategoryEmergency, nil
	default:
		return 0, fmt.Errorf("unknown patient category %q", raw)
	}
}

type Patient struct {
	ID             int
	Name           string
	Age            int
	Contact        string
	MedicalHistory string
	Category       Category
}

func (p *Patient) EntityID() int       { return p.ID }
func (p *Patient) SetEntityID(id int)  { p.ID = id }
func (p *Patient) DisplayName() string { return p.Name }

func (p *Patient) Clone() Patient {
	return *p
}
