package billing

import (
	"errors"

	"hospitalflow/internal/domain"
)

var ErrStrategyNotConfigured = errors.New("billing strategy not configured")

// Strategy computes the charge for a visit of the given length.
type Strategy interface {
	Name() string
	Calculate(durationMinutes int, category domain.Category) float64
}

type StandardBilling struct{}

func (StandardBilling) Name() string { return "standard" }

func (StandardBilling) Calculate(durationMinutes int, _ domain.Category) float64 {
	return 500 + 10*float64(durationMinutes)
}

// PremiumBilling applies a 10% discount to the whole subtotal.
type PremiumBilling struct{}

func (PremiumBilling) Name() string { return "premium" }

func (PremiumBilling) Calculate(durationMinutes int, _ domain.Category) float64 {
	return (1000 + 15*float64(durationMinutes)) * 0.9
}

// EmergencyBilling adds a flat 500 surcharge.
type EmergencyBilling struct{}

func (EmergencyBilling) Name() string { return "emergency" }

func (EmergencyBilling) Calculate(durationMinutes int, _ domain.Category) float64 {
	return 2000 + 20*float64(durationMinutes) + 500
}

func StrategyFor(category domain.Category) Strategy {
	switch category {
	case domain.CategoryPremium:
		return PremiumBilling{}
	case domain.CategoryEmergency:
		return EmergencyBilling{}
	case domain.CategoryGeneral:
		return StandardBilling{}
	default:
		return StandardBilling{}
	}
}

// Calculator runs whichever strategy was last selected.
type Calculator struct {
	strategy Strategy
}

func (c *Calculator) SetStrategy(s Strategy) {
	c.strategy = s
}

func (c *Calculator) Calculate(durationMinutes int, category domain.Category) (float64, error) {
	if c.strategy == nil {
		return 0, ErrStrategyNotConfigured
	}
	return c.strategy.Calculate(durationMinutes, category), nil
}
