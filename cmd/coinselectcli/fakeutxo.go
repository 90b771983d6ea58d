package main

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v3"
	"github.com/decred/dcrd/wire"
)

// deterministicOutpoint derives a wire.OutPoint from an integer index by
// hashing a throwaway secp256k1 public key. It exists so the demo
// subcommands can hand coinselect real wire.OutPoint keys instead of
// bare strings, without requiring a wallet or chain connection.
func deterministicOutpoint(idx uint32) wire.OutPoint {
	var seed [32]byte
	seed[0] = byte(idx)
	seed[1] = byte(idx >> 8)
	seed[2] = byte(idx >> 16)
	seed[3] = byte(idx >> 24)

	priv := secp256k1.PrivKeyFromBytes(seed[:])
	hash := chainhash.HashH(priv.PubKey().SerializeCompressed())

	return wire.OutPoint{
		Hash:  hash,
		Index: idx % 2,
		Tree:  wire.TxTreeRegular,
	}
}
