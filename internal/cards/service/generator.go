package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
)

type luhnCardGenerator struct{}

// NewLuhnCardGenerator creates a card number generator that produces
// Luhn-compliant digit strings from an issuer prefix. Random fill digits come
// from crypto/rand so results are not reproducible call-to-call.
func NewLuhnCardGenerator() CardNumberGenerator {
	return &luhnCardGenerator{}
}

// Generate creates a digit string of the given total length: the prefix,
// uniformly random fill digits, and a trailing Luhn check digit computed over
// everything before it. The prefix must be a digit string and must leave room
// for at least one fill digit plus the check digit.
func (g *luhnCardGenerator) Generate(prefix string, length int) (string, error) {
	if !cardsDomain.IsDigits(prefix) {
		return "", errors.New("prefix must contain only digits")
	}
	if length < cardsDomain.MinGeneratedNumberLength || length > cardsDomain.MaxGeneratedNumberLength {
		return "", fmt.Errorf(
			"length must be between %d and %d",
			cardsDomain.MinGeneratedNumberLength,
			cardsDomain.MaxGeneratedNumberLength,
		)
	}
	fill := length - len(prefix) - 1
	if fill < 1 {
		return "", fmt.Errorf("prefix %q too long for total length %d", prefix, length)
	}

	digits := make([]int, length)
	for i := 0; i < len(prefix); i++ {
		digits[i] = int(prefix[i] - '0')
	}

	// Generate random digits for all positions between the prefix and the check digit
	for i := len(prefix); i < length-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = int(n.Int64())
	}

	// Calculate and append the Luhn check digit
	digits[length-1] = calculateLuhnCheckDigit(digits[:length-1])

	number := make([]byte, length)
	for i, d := range digits {
		number[i] = byte('0' + d)
	}

	return string(number), nil
}

// Validate checks if number is a digit string passing the Luhn checksum.
// Single-digit numbers are valid only when the digit is zero.
func (g *luhnCardGenerator) Validate(number string) error {
	digits, ok := digitsOf(number)
	if !ok {
		return errors.New("number must be a non-empty string of digits")
	}

	if !validateLuhn(digits) {
		return errors.New("number failed Luhn validation")
	}

	return nil
}
