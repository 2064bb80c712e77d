package domain

// Card number structure constants.
const (
	// IINLength is the conventional number of leading digits reserved for
	// the Issuer Identification Number.
	IINLength = 6

	// MinIssuerPrefixLength is the minimum accepted issuer prefix length for generation.
	MinIssuerPrefixLength = 1
	// MaxIssuerPrefixLength is the maximum accepted issuer prefix length for generation.
	MaxIssuerPrefixLength = 2

	// GeneratedNumberLength is the default total length of generated card numbers.
	GeneratedNumberLength = 16
	// MinGeneratedNumberLength is the shortest total length the generator accepts.
	MinGeneratedNumberLength = 8
	// MaxGeneratedNumberLength is the longest total length the generator accepts.
	MaxGeneratedNumberLength = 19
)

// IssuerPrefixErrorMessage is the user-visible rejection message for invalid
// issuer prefixes. The wording is part of the public API contract and must
// not change.
const IssuerPrefixErrorMessage = "IINs should be only digits and either length one or two. Try 65!"

// MissingNumberErrorMessage is the user-visible message returned when the
// validate endpoint is called without a number parameter. The wording is part
// of the public API contract and must not change.
const MissingNumberErrorMessage = "You need to provide a number to this endpoint. " +
	"Try again with number=1234567890123456."
