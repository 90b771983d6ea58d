package coinselect

import (
	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/decred/dcrd/wire"
)

// UtxoID identifies a spendable output the way a dcrlnd-style wallet
// does: by the outpoint it was created at. It is the concrete key type
// CoinMap/CoinSelection are instantiated with throughout this package's
// wallet-facing helpers and the demo CLI.
type UtxoID = wire.OutPoint

// AddressType enumerates the script classes WalletUtxo can describe, for
// callers building a FeeEstimator that needs to know how expensive each
// input is to spend. It mirrors lnwallet.AddressType from the wallet
// this package's fee estimator was adapted from.
type AddressType uint8

const (
	// WitnessPubKey represents a p2wkh-equivalent address.
	WitnessPubKey AddressType = iota

	// NestedWitnessPubKey represents a p2sh output that is itself a
	// nested witness-pubkey-hash output.
	NestedWitnessPubKey

	// PubKeyHash represents a plain p2pkh address.
	PubKeyHash

	// ScriptHash represents a p2sh address.
	ScriptHash

	// UnknownAddressType represents an output with an unrecognized or
	// non-standard script.
	UnknownAddressType
)

// WalletUtxo is an unspent output as a wallet would describe it: its
// outpoint, value, confirmation depth, and the script needed to spend
// it. feeest.NewWeightEstimator does not read it (its classify callback
// receives only an input index); CoinMapFromUtxos and
// UtxoEntriesFromUtxos turn it into the UtxoID-keyed entries
// DepleteUTxO/AdjustForFee take.
type WalletUtxo struct {
	wire.OutPoint

	AddressType   AddressType
	Value         dcrutil.Amount
	Confirmations int64
	PkScript      []byte
}

// CoinMapFromUtxos builds a CoinMap keyed by outpoint from a slice of
// WalletUtxo, rejecting negative values the way CoinFromAmount does.
func CoinMapFromUtxos(utxos []WalletUtxo) (CoinMap[UtxoID], error) {
	entries := make([]CoinMapEntry[UtxoID], len(utxos))
	for i, u := range utxos {
		c, err := CoinFromAmount(u.Value)
		if err != nil {
			return CoinMap[UtxoID]{}, err
		}
		entries[i] = CoinMapEntry[UtxoID]{Key: u.OutPoint, Coin: c}
	}
	return NewCoinMap(entries), nil
}

// UtxoEntriesFromUtxos builds the []UtxoEntry[UtxoID] AdjustForFee draws
// its extra inputs from.
func UtxoEntriesFromUtxos(utxos []WalletUtxo) ([]UtxoEntry[UtxoID], error) {
	entries := make([]UtxoEntry[UtxoID], len(utxos))
	for i, u := range utxos {
		c, err := CoinFromAmount(u.Value)
		if err != nil {
			return nil, err
		}
		entries[i] = UtxoEntry[UtxoID]{Key: u.OutPoint, Coin: c}
	}
	return entries, nil
}
