// Package domain defines the core domain models for card number validation
// and generation. Numbers are modeled as digit strings, never parsed integers,
// so leading zeros in the IIN and PAN survive decomposition.
package domain

// CardFields holds the structural segments of a card number.
type CardFields struct {
	// MII is the Major Industry Identifier, the first digit of the number.
	MII string
	// IIN is the Issuer Identification Number, conventionally the first six
	// digits (fewer when the number is shorter).
	IIN string
	// PAN is the Personal Account Number, the digits strictly between the IIN
	// and the check digit. Empty for short numbers.
	PAN string
	// CheckDigit is the final digit, computed via the Luhn algorithm.
	CheckDigit string
}

// Card represents a validated card number with its decomposed fields.
// A Card can only be built through NewCard from a digit string, so holding a
// *Card is the proof that the number is structurally plausible; an invalid
// number never carries fields.
type Card struct {
	// Number is the full digit string.
	Number string
	// Fields holds the decomposed segments of Number.
	Fields CardFields
}

// NewCard builds a Card from a digit string that already passed Luhn
// validation. Returns ErrInvalidCardNumber when the input is empty or
// contains non-digit characters.
func NewCard(number string) (*Card, error) {
	if !IsDigits(number) {
		return nil, ErrInvalidCardNumber
	}

	return &Card{
		Number: number,
		Fields: DecomposeNumber(number),
	}, nil
}

// DecomposeNumber splits a non-empty digit string into its card fields.
//
// Boundary policy for numbers shorter than the conventional lengths: the IIN
// is always the first min(6, len) digits and the PAN is the digits strictly
// between the IIN and the check digit, so the PAN is empty when the number
// has seven or fewer digits. For numbers of six or fewer digits the IIN
// overlaps the check digit; decomposition reports characters, it does not
// re-segment them.
//
// This is a rendering step, not a validation step: callers must only invoke
// it on a number already confirmed to be a non-empty digit string.
func DecomposeNumber(number string) CardFields {
	iinEnd := IINLength
	if len(number) < iinEnd {
		iinEnd = len(number)
	}

	pan := ""
	if iinEnd < len(number)-1 {
		pan = number[iinEnd : len(number)-1]
	}

	return CardFields{
		MII:        number[:1],
		IIN:        number[:iinEnd],
		PAN:        pan,
		CheckDigit: number[len(number)-1:],
	}
}

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
