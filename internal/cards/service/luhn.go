package service

// calculateLuhnCheckDigit calculates the Luhn check digit for the given digits.
// The digits slice should NOT include the check digit position.
func calculateLuhnCheckDigit(digits []int) int {
	sum := 0
	length := len(digits)

	// Process digits from right to left (excluding the check digit position)
	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		// Double every second digit from the right
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10
}

// validateLuhn validates a complete number (including check digit) using the
// Luhn algorithm. A single digit is valid only when it is zero, and an empty
// slice is invalid.
func validateLuhn(digits []int) bool {
	if len(digits) == 0 {
		return false
	}

	sum := 0
	length := len(digits)

	// Process all digits from right to left
	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		// Double every second digit from the right (skipping the check digit itself)
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return sum%10 == 0
}

// digitsOf converts a digit string to an int slice. Returns false when s is
// empty or contains a non-digit character.
func digitsOf(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}

	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}

	return digits, true
}
