// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
	customValidation "github.com/allisson/cards/internal/validation"
)

// ValidateCardRequest contains the parameters for validating a card number.
// The number comes from the `number` query parameter; its content is not
// constrained here because a malformed number is a domain outcome (an invalid
// card), not a request error.
type ValidateCardRequest struct {
	Number string `form:"number"`
}

// Validate checks that the number parameter was supplied.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number, validation.Required),
	)
}

// GenerateCardRequest contains the parameters for generating a card number.
// The IIN comes from the `iin` query parameter.
type GenerateCardRequest struct {
	IIN string `form:"iin"`
}

// Validate checks that the IIN is a digit string of length one or two.
func (r *GenerateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IIN,
			validation.Required,
			customValidation.Digits,
			validation.Length(cardsDomain.MinIssuerPrefixLength, cardsDomain.MaxIssuerPrefixLength),
		),
	)
}
