package slp

import "errors"

// Field validation errors.
var (
	ErrUnknownTokenType        = errors.New("unknown token type")
	ErrInvalidDocumentHash     = errors.New("document hash must be empty or 32 bytes")
	ErrDecimalsOutOfRange      = errors.New("decimals must be between 0 and 9")
	ErrMintBatonVoutOutOfRange = errors.New("mint baton vout must be between 2 and 255")
	ErrInvalidChildGenesis     = errors.New("child genesis requires quantity 1, zero decimals and no mint baton")
	ErrInvalidTokenID          = errors.New("token id must be 32 bytes")
	ErrNoAmounts               = errors.New("send requires at least one amount")
	ErrTooManyAmounts          = errors.New("send supports at most 19 amounts")
)

// Quantity encoding errors.
var (
	ErrNotInteger       = errors.New("quantity must be an integer")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrQuantityTooLarge = errors.New("quantity exceeds the 8-byte encoding range")
)
