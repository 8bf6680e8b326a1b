package main

import (
	"testing"

	"github.com/ledgerforge/slpmeta/pkg/slp"
)

func TestParseTokenType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slp.TokenType
		wantErr bool
	}{
		{"fungible", "fungible", slp.TokenTypeFungible, false},
		{"fungible numeric", "1", slp.TokenTypeFungible, false},
		{"group", "group", slp.TokenTypeNFT1Group, false},
		{"group long", "nft1-group", slp.TokenTypeNFT1Group, false},
		{"group numeric", "129", slp.TokenTypeNFT1Group, false},
		{"child", "child", slp.TokenTypeNFT1Child, false},
		{"child long", "nft1-child", slp.TokenTypeNFT1Child, false},
		{"child numeric", "65", slp.TokenTypeNFT1Child, false},
		{"mixed case", "Fungible", slp.TokenTypeFungible, false},
		{"empty", "", 0, true},
		{"unknown", "nft2", 0, true},
		{"raw byte", "0x01", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTokenType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTokenType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTokenType(%q) = %#x, want %#x", tt.input, byte(got), byte(tt.want))
			}
		})
	}
}

func TestParseAmounts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []uint64
		wantErr bool
	}{
		{"single", "1000", []uint64{1000}, false},
		{"multiple", "1,2,3", []uint64{1, 2, 3}, false},
		{"spaces", "1, 2, 3", []uint64{1, 2, 3}, false},
		{"zero", "0", []uint64{0}, false},
		{"empty", "", nil, true},
		{"trailing comma", "1,2,", nil, true},
		{"negative", "1,-2", nil, true},
		{"fractional", "1.5", nil, true},
		{"not a number", "abc", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmounts(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseAmounts(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseAmounts(%q) returned %d amounts, want %d", tt.input, len(got), len(tt.want))
			}
			for i, n := range got {
				if !n.IsUint64() || n.Uint64() != tt.want[i] {
					t.Errorf("parseAmounts(%q)[%d] = %s, want %d", tt.input, i, n, tt.want[i])
				}
			}
		})
	}
}
