package slp

import (
	"fmt"
	"math/big"
)

// quantityBits is the bit width of the fixed quantity field.
const quantityBits = 64

// Uint64BE encodes a non-negative integer as exactly 8 big-endian bytes,
// zero-padded on the left. Values above 2^64-1 are rejected rather than
// truncated.
func Uint64BE(n *big.Int) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: no quantity given", ErrNotInteger)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeQuantity, n)
	}
	if n.BitLen() > quantityBits {
		return nil, fmt.Errorf("%w: %s", ErrQuantityTooLarge, n)
	}
	buf := make([]byte, 8)
	n.FillBytes(buf)
	return buf, nil
}

// ParseQuantity converts decimal text into a quantity for the message
// encoders. Fractional, non-numeric and negative text is rejected; range
// checking happens at encode time.
func ParseQuantity(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNegativeQuantity, s)
	}
	return n, nil
}
