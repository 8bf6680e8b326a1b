package slp

import "math/big"

// NFT1GroupGenesis encodes a GENESIS message for an NFT1 group token.
// Group units are later burned one-for-one to issue child tokens.
func NFT1GroupGenesis(ticker, name, documentURL string, documentHash Bytes, decimals int, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	return Genesis(TokenTypeNFT1Group, ticker, name, documentURL, documentHash, decimals, mintBatonVout, quantity)
}

// NFT1GroupMint encodes a MINT message issuing additional group units.
func NFT1GroupMint(tokenID Bytes, mintBatonVout *int, quantity *big.Int) ([]byte, error) {
	return Mint(TokenTypeNFT1Group, tokenID, mintBatonVout, quantity)
}

// NFT1GroupSend encodes a SEND message moving group units.
func NFT1GroupSend(tokenID Bytes, amounts []*big.Int) ([]byte, error) {
	return Send(TokenTypeNFT1Group, tokenID, amounts)
}

// NFT1ChildGenesis encodes the only valid GENESIS for an NFT1 child:
// quantity 1, zero decimals, no mint baton. Children cannot be minted
// again, which is why no child MINT helper exists.
func NFT1ChildGenesis(ticker, name, documentURL string, documentHash Bytes) ([]byte, error) {
	return Genesis(TokenTypeNFT1Child, ticker, name, documentURL, documentHash, 0, nil, big.NewInt(1))
}

// NFT1ChildSend encodes a SEND moving an NFT1 child to a new owner. A child
// is a single indivisible unit, so the amount list is always [1].
func NFT1ChildSend(tokenID Bytes) ([]byte, error) {
	return Send(TokenTypeNFT1Child, tokenID, []*big.Int{big.NewInt(1)})
}
