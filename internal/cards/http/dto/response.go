// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	cardsDomain "github.com/allisson/cards/internal/cards/domain"
)

// CardResponse represents a validation or generation result in API responses.
// The field pointers serialize to JSON null for invalid numbers; an invalid
// response never carries a partially populated field set.
type CardResponse struct {
	IsValid    bool    `json:"is_valid"`
	MII        *string `json:"mii"`
	IIN        *string `json:"iin"`
	PAN        *string `json:"pan"`
	CheckDigit *string `json:"check_digit"`
}

// MapCardToResponse converts a validated domain card to an API response with
// all fields populated.
func MapCardToResponse(card *cardsDomain.Card) CardResponse {
	fields := card.Fields
	return CardResponse{
		IsValid:    true,
		MII:        &fields.MII,
		IIN:        &fields.IIN,
		PAN:        &fields.PAN,
		CheckDigit: &fields.CheckDigit,
	}
}

// NewInvalidCardResponse returns the response for an invalid number: is_valid
// false and every other field null.
func NewInvalidCardResponse() CardResponse {
	return CardResponse{IsValid: false}
}
