package slp

import "math/big"

// TokenType1Genesis encodes a GENESIS message for a standard fungible token.
func TokenType1Genesis(ticker, name, documentURL string, documentHash Bytes, decimals int, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	return Genesis(TokenTypeFungible, ticker, name, documentURL, documentHash, decimals, mintBatonVout, quantity)
}

// TokenType1Mint encodes a MINT message for a standard fungible token.
func TokenType1Mint(tokenID Bytes, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	return Mint(TokenTypeFungible, tokenID, mintBatonVout, quantity)
}

// TokenType1Send encodes a SEND message for a standard fungible token.
func TokenType1Send(tokenID Bytes, amounts []*big.Int) ([]byte, error) {
	return Send(TokenTypeFungible, tokenID, amounts)
}
