package slp

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// HashDocument computes the 32-byte SHA-256 digest of a token's reference
// document, ready to pass to Genesis as the document hash.
func HashDocument(doc []byte) Bytes {
	return RawBytes(chainhash.HashB(doc))
}
