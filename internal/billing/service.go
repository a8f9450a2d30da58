package billing

import (
	"context"
	"log/slog"

	"hospitalflow/internal/domain"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

type Quote struct {
	Category        domain.Category
	Strategy        string
	DurationMinutes int
	Amount          float64
}

type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log.With(slog.String("component", "billing"))}
}

func (s *Service) Bill(ctx context.Context, durationMinutes int, category domain.Category) (float64, error) {
	q, err := s.Quote(ctx, durationMinutes, category)
	if err != nil {
		return 0, err
	}
	return q.Amount, nil
}

func (s *Service) Quote(_ context.Context, durationMinutes int, category domain.Category) (Quote, error) {
	if durationMinutes < 0 {
		return Quote{}, &ValidationError{msg: "duration must not be negative"}
	}

	strategy := StrategyFor(category)
	var calc Calculator
	calc.SetStrategy(strategy)
	amount, err := calc.Calculate(durationMinutes, category)
	if err != nil {
		return Quote{}, err
	}

	s.log.Info(
		"bill calculated",
		slog.Float64("amount", amount),
		slog.String("category", category.String()),
	)

	return Quote{
		Category:        category,
		Strategy:        strategy.Name(),
		DurationMinutes: durationMinutes,
		Amount:          amount,
	}, nil
}
