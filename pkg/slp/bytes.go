package slp

import (
	"encoding/hex"
	"fmt"
)

// TokenIDSize is the length of a token ID in bytes.
const TokenIDSize = 32

// DocumentHashSize is the length of a non-empty document hash in bytes.
const DocumentHashSize = 32

// Bytes carries a hash or token ID input that arrives either as hex text or
// as raw bytes. The zero value is the empty input.
type Bytes struct {
	text  string
	raw   []byte
	isHex bool
}

// HexText wraps a hex-encoded string input.
func HexText(s string) Bytes {
	return Bytes{text: s, isHex: true}
}

// RawBytes wraps a raw byte-slice input.
func RawBytes(b []byte) Bytes {
	return Bytes{raw: b}
}

// resolve returns the canonical byte form of the input. Hex text must
// decode cleanly; raw bytes pass through untouched.
func (b Bytes) resolve() ([]byte, error) {
	if !b.isHex {
		return b.raw, nil
	}
	decoded, err := hex.DecodeString(b.text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return decoded, nil
}

// resolveDocumentHash validates a GENESIS document hash: empty, or exactly
// DocumentHashSize bytes.
func resolveDocumentHash(in Bytes) ([]byte, error) {
	b, err := in.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocumentHash, err)
	}
	if len(b) != 0 && len(b) != DocumentHashSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDocumentHash, len(b))
	}
	return b, nil
}

// resolveTokenID validates a MINT/SEND token ID: exactly TokenIDSize bytes.
func resolveTokenID(in Bytes) ([]byte, error) {
	b, err := in.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenID, err)
	}
	if len(b) != TokenIDSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidTokenID, len(b))
	}
	return b, nil
}
