package slp

import "github.com/btcsuite/btcd/wire"

// TxOut wraps an encoded metadata script as the output a transaction
// builder places at vout 0. OP_RETURN outputs carry no coins.
func TxOut(script []byte) *wire.TxOut {
	return wire.NewTxOut(0, script)
}
