// Package usecase defines the interfaces and implementations for card number
// use cases. Use cases orchestrate the Luhn engine and domain decomposition to
// implement the validate and generate operations.
package usecase

import (
	"context"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
)

// CardUseCase defines the interface for card number business logic.
type CardUseCase interface {
	// Validate checks a raw number string against the Luhn algorithm and, on
	// success, returns a Card with its decomposed fields. Empty, non-digit, or
	// checksum-failing input yields domain.ErrInvalidCardNumber — never a Card
	// with partially populated fields.
	Validate(ctx context.Context, number string) (*cardsDomain.Card, error)

	// Generate synthesizes a Luhn-valid card number starting with the given
	// issuer prefix. A prefix that is not one or two digits yields
	// domain.ErrInvalidIssuerPrefix.
	Generate(ctx context.Context, prefix string) (*cardsDomain.Card, error)
}
