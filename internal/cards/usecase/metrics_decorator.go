package usecase

import (
	"context"
	"time"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	"github.com/allisson/cards/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for card validation operations.
func (c *cardUseCaseWithMetrics) Validate(ctx context.Context, number string) (*cardsDomain.Card, error) {
	start := time.Now()
	card, err := c.next.Validate(ctx, number)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_validate", status)
	c.metrics.RecordDuration(ctx, "cards", "card_validate", time.Since(start), status)

	return card, err
}

// Generate records metrics for card generation operations.
func (c *cardUseCaseWithMetrics) Generate(ctx context.Context, prefix string) (*cardsDomain.Card, error) {
	start := time.Now()
	card, err := c.next.Generate(ctx, prefix)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_generate", status)
	c.metrics.RecordDuration(ctx, "cards", "card_generate", time.Since(start), status)

	return card, err
}
