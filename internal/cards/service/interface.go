// Package service provides the Luhn checksum engine and card number generation.
package service

// CardNumberGenerator defines the interface for card number synthesis and
// Luhn validation.
type CardNumberGenerator interface {
	// Generate creates a digit string of the given total length that starts
	// with prefix and ends with a correct Luhn check digit.
	Generate(prefix string, length int) (string, error)
	// Validate checks that number is a digit string passing the Luhn checksum.
	Validate(number string) error
}
