package slp

import (
	"fmt"
	"math/big"
)

// Genesis field bounds.
const (
	MaxDecimals      = 9
	MinMintBatonVout = 2
	MaxMintBatonVout = 255
)

// Genesis encodes a token-creation message.
//
// Ticker, name and documentURL carry no constraints and may be empty. The
// document hash must be empty or exactly 32 bytes. Decimals selects the
// display precision, 0-9. A nil mintBatonVout relinquishes future minting
// authority; otherwise it names the output index (2-255) that will carry
// the baton. For TokenTypeNFT1Child the protocol pins quantity to 1,
// decimals to 0 and forbids a baton.
func Genesis(typ TokenType, ticker, name, documentURL string, documentHash Bytes, decimals int, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownTokenType, byte(typ))
	}
	hash, err := resolveDocumentHash(documentHash)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, fmt.Errorf("%w: got %d", ErrDecimalsOutOfRange, decimals)
	}
	baton, err := batonBytes(mintBatonVout)
	if err != nil {
		return nil, err
	}
	if typ == TokenTypeNFT1Child {
		if quantity == nil || quantity.Cmp(big.NewInt(1)) != 0 || decimals != 0 || mintBatonVout != nil {
			return nil, ErrInvalidChildGenesis
		}
	}
	qty, err := Uint64BE(quantity)
	if err != nil {
		return nil, err
	}

	return assemble(
		lokadID,
		[]byte{byte(typ)},
		kindGenesis,
		[]byte(ticker),
		[]byte(name),
		[]byte(documentURL),
		hash,
		[]byte{byte(decimals)},
		baton,
		qty,
	)
}

// batonBytes converts an optional mint baton vout into its push field.
// Absence encodes as an empty push.
func batonBytes(vout *int) ([]byte, error) {
	if vout == nil {
		return nil, nil
	}
	if *vout < MinMintBatonVout || *vout > MaxMintBatonVout {
		return nil, fmt.Errorf("%w: got %d", ErrMintBatonVoutOutOfRange, *vout)
	}
	return []byte{byte(*vout)}, nil
}
