// Package slp encodes Simple Ledger Protocol token metadata into OP_RETURN
// carrier scripts.
//
// Every message starts with the OP_RETURN marker, the 4-byte "SLP\x00"
// protocol tag, a one-byte token type and an ASCII message kind, followed by
// the kind's fields. Three kinds exist: GENESIS creates a token, MINT issues
// additional supply, and SEND moves value between outputs. Each field is
// individually length-prefixed so downstream indexers can parse the payload
// without a schema.
//
// Encoders validate every field before assembling output, so a failing call
// never returns a partial script. All functions are pure and safe for
// concurrent use.
package slp

import (
	"fmt"

	"github.com/ledgerforge/slpmeta/pkg/script"
)

// lokadID is the protocol tag that follows OP_RETURN in every message.
var lokadID = []byte{'S', 'L', 'P', 0x00}

// Message kind tags.
var (
	kindGenesis = []byte("GENESIS")
	kindMint    = []byte("MINT")
	kindSend    = []byte("SEND")
)

// TokenType selects the protocol sub-variant of a metadata message.
type TokenType byte

const (
	// TokenTypeFungible is a standard divisible token.
	TokenTypeFungible TokenType = 0x01
	// TokenTypeNFT1Child is a single non-fungible unit issued under a group.
	TokenTypeNFT1Child TokenType = 0x41
	// TokenTypeNFT1Group is a parent token whose units are burned one-for-one
	// to issue NFT1 children.
	TokenTypeNFT1Group TokenType = 0x81
)

// Valid reports whether the token type is one of the protocol variants.
func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeFungible, TokenTypeNFT1Child, TokenTypeNFT1Group:
		return true
	}
	return false
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenTypeFungible:
		return "Fungible"
	case TokenTypeNFT1Child:
		return "NFT1-Child"
	case TokenTypeNFT1Group:
		return "NFT1-Group"
	default:
		return "Unknown"
	}
}

// assemble concatenates OP_RETURN with one length-prefixed push per field.
func assemble(fields ...[]byte) ([]byte, error) {
	buf := []byte{script.OpReturn}
	for i, f := range fields {
		p, err := script.PushData(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		buf = append(buf, p...)
	}
	return buf, nil
}
