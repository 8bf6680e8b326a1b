package slp

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

// --- Bytes Tests ---

func TestBytes_ZeroValue(t *testing.T) {
	var b Bytes
	got, err := b.resolve()
	if err != nil {
		t.Fatalf("resolve zero value: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("zero value resolved to %d bytes, want none", len(got))
	}
}

func TestBytes_HexText(t *testing.T) {
	got, err := HexText("deadbeef").resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := []byte{0xde, 0xad, 0xbe, 0xef}; !bytes.Equal(got, want) {
		t.Errorf("resolved % x, want % x", got, want)
	}
}

func TestBytes_HexText_Invalid(t *testing.T) {
	for _, s := range []string{"xyz", "abc", "0x10"} {
		if _, err := HexText(s).resolve(); err == nil {
			t.Errorf("HexText(%q).resolve() succeeded, want error", s)
		}
	}
}

func TestBytes_RawBytes(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	got, err := RawBytes(in).resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !bytes.Equal(got, in) {
		t.Errorf("resolved % x, want % x", got, in)
	}
}

// --- Document Hash Tests ---

func TestResolveDocumentHash_Empty(t *testing.T) {
	for _, b := range []Bytes{{}, HexText(""), RawBytes(nil)} {
		got, err := resolveDocumentHash(b)
		if err != nil {
			t.Fatalf("resolveDocumentHash: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("empty input resolved to %d bytes", len(got))
		}
	}
}

func TestResolveDocumentHash_Full(t *testing.T) {
	raw, _ := hex.DecodeString(strings.Repeat("ab", DocumentHashSize))

	fromHex, err := resolveDocumentHash(HexText(strings.Repeat("ab", DocumentHashSize)))
	if err != nil {
		t.Fatalf("hex form: %v", err)
	}
	fromRaw, err := resolveDocumentHash(RawBytes(raw))
	if err != nil {
		t.Fatalf("raw form: %v", err)
	}
	if !bytes.Equal(fromHex, raw) || !bytes.Equal(fromRaw, raw) {
		t.Error("hex and raw forms should resolve to the same 32 bytes")
	}
}

func TestResolveDocumentHash_WrongLength(t *testing.T) {
	tests := []struct {
		name string
		in   Bytes
	}{
		{"31 raw bytes", RawBytes(make([]byte, 31))},
		{"33 raw bytes", RawBytes(make([]byte, 33))},
		{"31-byte hex", HexText(strings.Repeat("ab", 31))},
		{"1 raw byte", RawBytes([]byte{0x00})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveDocumentHash(tt.in); !errors.Is(err, ErrInvalidDocumentHash) {
				t.Errorf("got %v, want ErrInvalidDocumentHash", err)
			}
		})
	}
}

func TestResolveDocumentHash_BadHex(t *testing.T) {
	for _, s := range []string{strings.Repeat("zz", DocumentHashSize), "abc"} {
		if _, err := resolveDocumentHash(HexText(s)); !errors.Is(err, ErrInvalidDocumentHash) {
			t.Errorf("HexText(%q): got %v, want ErrInvalidDocumentHash", s, err)
		}
	}
}

// --- Token ID Tests ---

func TestResolveTokenID(t *testing.T) {
	idHex := strings.Repeat("1f", TokenIDSize)
	raw, _ := hex.DecodeString(idHex)

	got, err := resolveTokenID(HexText(idHex))
	if err != nil {
		t.Fatalf("resolveTokenID: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("resolved % x, want % x", got, raw)
	}
}

func TestResolveTokenID_WrongLength(t *testing.T) {
	tests := []struct {
		name string
		in   Bytes
	}{
		{"empty", Bytes{}},
		{"31 raw bytes", RawBytes(make([]byte, 31))},
		{"33 raw bytes", RawBytes(make([]byte, 33))},
		{"31-byte hex", HexText(strings.Repeat("22", 31))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveTokenID(tt.in); !errors.Is(err, ErrInvalidTokenID) {
				t.Errorf("got %v, want ErrInvalidTokenID", err)
			}
		})
	}
}

func TestResolveTokenID_BadHex(t *testing.T) {
	if _, err := resolveTokenID(HexText(strings.Repeat("zz", TokenIDSize))); !errors.Is(err, ErrInvalidTokenID) {
		t.Errorf("got %v, want ErrInvalidTokenID", err)
	}
}
