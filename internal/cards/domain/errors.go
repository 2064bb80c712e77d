// Package domain defines core domain models and errors for card numbers.
package domain

import (
	"github.com/allisson/cards/internal/errors"
)

// Card-specific error definitions.
var (
	// ErrInvalidCardNumber indicates the number is empty, contains non-digit
	// characters, or fails the Luhn checksum.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "invalid card number")

	// ErrInvalidIssuerPrefix indicates the issuer prefix is not a digit string
	// of length one or two.
	ErrInvalidIssuerPrefix = errors.Wrap(errors.ErrInvalidInput, "invalid issuer prefix")
)
