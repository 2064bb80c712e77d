package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected CardFields
	}{
		{
			name:   "ConventionalCard_16Digits",
			number: "4532015112830366",
			expected: CardFields{
				MII:        "4",
				IIN:        "453201",
				PAN:        "511283036",
				CheckDigit: "6",
			},
		},
		{
			name:   "LeadingZeros_Preserved",
			number: "0532015112830361",
			expected: CardFields{
				MII:        "0",
				IIN:        "053201",
				PAN:        "511283036",
				CheckDigit: "1",
			},
		},
		{
			name:   "ShortNumber_8Digits_SingleDigitPAN",
			number: "12345674",
			expected: CardFields{
				MII:        "1",
				IIN:        "123456",
				PAN:        "7",
				CheckDigit: "4",
			},
		},
		{
			name:   "ShortNumber_7Digits_EmptyPAN",
			number: "1234567",
			expected: CardFields{
				MII:        "1",
				IIN:        "123456",
				PAN:        "",
				CheckDigit: "7",
			},
		},
		{
			name:   "ShortNumber_2Digits_IINOverlapsCheckDigit",
			number: "18",
			expected: CardFields{
				MII:        "1",
				IIN:        "18",
				PAN:        "",
				CheckDigit: "8",
			},
		},
		{
			name:   "LongNumber_19Digits",
			number: "4532015112830366000",
			expected: CardFields{
				MII:        "4",
				IIN:        "453201",
				PAN:        "511283036600",
				CheckDigit: "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposeNumber(tt.number))
		})
	}
}

func TestNewCard(t *testing.T) {
	t.Run("Success_PopulatesFields", func(t *testing.T) {
		card, err := NewCard("4532015112830366")
		require.NoError(t, err)

		assert.Equal(t, "4532015112830366", card.Number)
		assert.Equal(t, "4", card.Fields.MII)
		assert.Equal(t, "453201", card.Fields.IIN)
		assert.Equal(t, "511283036", card.Fields.PAN)
		assert.Equal(t, "6", card.Fields.CheckDigit)
	})

	t.Run("Error_EmptyNumber", func(t *testing.T) {
		card, err := NewCard("")
		assert.Nil(t, card)
		assert.ErrorIs(t, err, ErrInvalidCardNumber)
	})

	t.Run("Error_NonDigitNumber", func(t *testing.T) {
		card, err := NewCard("453201511283036a")
		assert.Nil(t, card)
		assert.ErrorIs(t, err, ErrInvalidCardNumber)
	})
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Digits", input: "0123456789", expected: true},
		{name: "SingleDigit", input: "0", expected: true},
		{name: "Empty", input: "", expected: false},
		{name: "Letters", input: "abc", expected: false},
		{name: "MixedDigitsAndLetters", input: "123a", expected: false},
		{name: "Spaces", input: "12 34", expected: false},
		{name: "Negative", input: "-123", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDigits(tt.input))
		})
	}
}
