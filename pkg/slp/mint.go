package slp

import (
	"fmt"
	"math/big"
)

// Mint encodes an additional-supply issuance message for an existing token.
// The token ID must resolve to exactly 32 bytes. Issuing again later
// requires passing the baton on: a nil mintBatonVout ends minting for good.
func Mint(typ TokenType, tokenID Bytes, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownTokenType, byte(typ))
	}
	id, err := resolveTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	baton, err := batonBytes(mintBatonVout)
	if err != nil {
		return nil, err
	}
	qty, err := Uint64BE(quantity)
	if err != nil {
		return nil, err
	}

	return assemble(
		lokadID,
		[]byte{byte(typ)},
		kindMint,
		id,
		baton,
		qty,
	)
}
