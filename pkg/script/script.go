// Package script encodes byte pushes for data-carrier transaction scripts.
//
// The only script shape this module emits is the OP_RETURN form: a marker
// byte followed by length-prefixed data pushes. PushData picks the shortest
// length prefix that fits the payload, with one protocol quirk: an empty
// payload is written as an explicit OP_PUSHDATA1 with length zero rather
// than omitted.
package script

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Opcodes used in metadata carrier scripts.
const (
	OpReturn    byte = 0x6a // marks the output as unspendable data
	OpPushData1 byte = 0x4c // length in the next byte
	OpPushData2 byte = 0x4d // length in the next 2 bytes, little-endian
	OpPushData4 byte = 0x4e // length in the next 4 bytes, little-endian
)

// maxDirectPush is the largest payload length written as a bare length byte.
// Lengths 76 and 77 stay direct even though those bytes collide with the
// OpPushData1/OpPushData2 markers.
const maxDirectPush = 0x4d // 77

// ErrPushTooLarge means the payload length does not fit a 4-byte prefix.
var ErrPushTooLarge = errors.New("push too large for 4-byte length prefix")

// PushData returns b wrapped in the shortest push encoding for its length.
func PushData(b []byte) ([]byte, error) {
	prefix, err := pushPrefix(uint64(len(b)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(prefix)+len(b))
	out = append(out, prefix...)
	return append(out, b...), nil
}

// pushPrefix returns the marker and length bytes for a push of n data bytes.
func pushPrefix(n uint64) ([]byte, error) {
	switch {
	case n == 0:
		return []byte{OpPushData1, 0x00}, nil
	case n <= maxDirectPush:
		return []byte{byte(n)}, nil
	case n <= 0xfe:
		return []byte{OpPushData1, byte(n)}, nil
	case n <= 0xffff:
		return binary.LittleEndian.AppendUint16([]byte{OpPushData2}, uint16(n)), nil
	case n <= 0xffffffff:
		return binary.LittleEndian.AppendUint32([]byte{OpPushData4}, uint32(n)), nil
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrPushTooLarge, n)
	}
}
