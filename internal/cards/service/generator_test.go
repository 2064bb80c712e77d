package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhnCardGenerator_Generate(t *testing.T) {
	gen := NewLuhnCardGenerator()

	tests := []struct {
		name        string
		prefix      string
		length      int
		expectError bool
	}{
		{
			name:   "Success_TwoDigitPrefix_Length16",
			prefix: "65",
			length: 16,
		},
		{
			name:   "Success_OneDigitPrefix_Length16",
			prefix: "4",
			length: 16,
		},
		{
			name:   "Success_PrefixWithLeadingZero",
			prefix: "04",
			length: 16,
		},
		{
			name:   "Success_MinLength",
			prefix: "65",
			length: 8,
		},
		{
			name:   "Success_MaxLength",
			prefix: "65",
			length: 19,
		},
		{
			name:        "Error_EmptyPrefix",
			prefix:      "",
			length:      16,
			expectError: true,
		},
		{
			name:        "Error_NonDigitPrefix",
			prefix:      "a1",
			length:      16,
			expectError: true,
		},
		{
			name:        "Error_LengthTooShort",
			prefix:      "65",
			length:      7,
			expectError: true,
		},
		{
			name:        "Error_LengthTooLong",
			prefix:      "65",
			length:      20,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := gen.Generate(tt.prefix, tt.length)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, number, tt.length)
			assert.True(t, strings.HasPrefix(number, tt.prefix))
			assert.NoError(t, gen.Validate(number), "generated number should pass Luhn validation")
		})
	}
}

func TestLuhnCardGenerator_Generate_PrefixTooLong(t *testing.T) {
	gen := NewLuhnCardGenerator()

	// An 8-digit prefix leaves no fill room in a 9-digit number.
	_, err := gen.Generate("12345678", 9)
	assert.Error(t, err)
}

func TestLuhnCardGenerator_Validate(t *testing.T) {
	gen := NewLuhnCardGenerator()

	tests := []struct {
		name        string
		number      string
		expectError bool
	}{
		{
			name:   "Valid_KnownLuhnNumber_79927398713",
			number: "79927398713",
		},
		{
			name:   "Valid_KnownLuhnNumber_4532015112830366",
			number: "4532015112830366",
		},
		{
			name:   "Valid_SimpleCase_18",
			number: "18",
		},
		{
			name:   "Valid_SingleZero",
			number: "0",
		},
		{
			name:        "Invalid_SingleNonZeroDigit",
			number:      "5",
			expectError: true,
		},
		{
			name:        "Invalid_AlteredCheckDigit",
			number:      "4532015112830367",
			expectError: true,
		},
		{
			name:        "Invalid_Empty",
			number:      "",
			expectError: true,
		},
		{
			name:        "Invalid_ContainsLetters",
			number:      "453201511283036a",
			expectError: true,
		},
		{
			name:        "Invalid_ContainsSpaces",
			number:      "4532 0151 1283 0366",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gen.Validate(tt.number)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLuhnCardGenerator_Randomness(t *testing.T) {
	gen := NewLuhnCardGenerator()

	// Generate multiple numbers and ensure they're different and all pass Luhn validation
	numbers := make(map[string]bool)

	for i := 0; i < 100; i++ {
		number, err := gen.Generate("65", 16)
		require.NoError(t, err)
		require.NoError(t, gen.Validate(number), "number %s should pass Luhn validation", number)

		numbers[number] = true
	}

	// With 13 random fill digits, 100 generations should not collide
	assert.Equal(t, 100, len(numbers), "expected all generated numbers to be unique")
}
