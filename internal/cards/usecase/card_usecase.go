package usecase

import (
	"context"
	"log/slog"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	cardsService "github.com/allisson/cards/internal/cards/service"
	apperrors "github.com/allisson/cards/internal/errors"
)

// cardUseCase implements CardUseCase on top of the Luhn card number generator.
type cardUseCase struct {
	generator cardsService.CardNumberGenerator
	length    int
	logger    *slog.Logger
}

// NewCardUseCase creates a card use case. The length parameter is the total
// length of generated numbers; values outside the supported range fall back to
// the default generated length.
func NewCardUseCase(
	generator cardsService.CardNumberGenerator,
	length int,
	logger *slog.Logger,
) CardUseCase {
	if length < cardsDomain.MinGeneratedNumberLength || length > cardsDomain.MaxGeneratedNumberLength {
		length = cardsDomain.GeneratedNumberLength
	}

	return &cardUseCase{
		generator: generator,
		length:    length,
		logger:    logger,
	}
}

// Validate checks the raw number against the Luhn algorithm and decomposes it
// into fields on success. All malformed input is recovered locally as
// domain.ErrInvalidCardNumber.
func (u *cardUseCase) Validate(ctx context.Context, number string) (*cardsDomain.Card, error) {
	if !cardsDomain.IsDigits(number) {
		u.logger.Warn("card number rejected before checksum", slog.Int("length", len(number)))
		return nil, cardsDomain.ErrInvalidCardNumber
	}

	if err := u.generator.Validate(number); err != nil {
		u.logger.Warn("card number failed luhn validation", slog.Int("length", len(number)))
		return nil, cardsDomain.ErrInvalidCardNumber
	}

	return cardsDomain.NewCard(number)
}

// Generate synthesizes a Luhn-valid card number from the issuer prefix and
// returns it decomposed. The result is valid by construction.
func (u *cardUseCase) Generate(ctx context.Context, prefix string) (*cardsDomain.Card, error) {
	if !validIssuerPrefix(prefix) {
		u.logger.Warn("issuer prefix rejected", slog.Int("length", len(prefix)))
		return nil, cardsDomain.ErrInvalidIssuerPrefix
	}

	number, err := u.generator.Generate(prefix, u.length)
	if err != nil {
		// The prefix and length are already validated, so a failure here means
		// the randomness source is broken.
		u.logger.Error("card number generation failed", slog.Any("error", err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, "failed to generate card number")
	}

	return cardsDomain.NewCard(number)
}

// validIssuerPrefix reports whether prefix is a digit string of length one or two.
func validIssuerPrefix(prefix string) bool {
	if len(prefix) < cardsDomain.MinIssuerPrefixLength || len(prefix) > cardsDomain.MaxIssuerPrefixLength {
		return false
	}
	return cardsDomain.IsDigits(prefix)
}
