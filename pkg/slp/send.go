package slp

import (
	"fmt"
	"math/big"
)

// MaxSendAmounts is the most outputs a single SEND message can carry.
const MaxSendAmounts = 19

// Send encodes a value-transfer message. Each amount maps to one
// transaction output in order, starting at vout 1 (vout 0 holds the
// metadata script itself).
func Send(typ TokenType, tokenID Bytes, amounts []*big.Int) ([]byte, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownTokenType, byte(typ))
	}
	id, err := resolveTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return nil, ErrNoAmounts
	}
	if len(amounts) > MaxSendAmounts {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyAmounts, len(amounts))
	}

	fields := [][]byte{
		lokadID,
		{byte(typ)},
		kindSend,
		id,
	}
	for i, amount := range amounts {
		qty, err := Uint64BE(amount)
		if err != nil {
			return nil, fmt.Errorf("amount %d: %w", i, err)
		}
		fields = append(fields, qty)
	}
	return assemble(fields...)
}
