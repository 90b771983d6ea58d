package coinselect

import (
	"fmt"

	"github.com/decred/dcrd/dcrutil/v4"
)

// Coin is a non-negative integer amount of value, expressed in the atomic
// unit of whatever asset a caller's UTxO set is denominated in. Unlike
// dcrutil.Amount, Coin can never hold a negative value: every constructor
// and arithmetic operation on Coin either returns a valid non-negative
// Coin, or reports that the operation is not defined on its inputs.
type Coin uint64

// MaxCoin is the largest representable Coin value.
const MaxCoin = Coin(^uint64(0))

// ErrCoinOverflow is the value MustAdd and the package's other summing
// helpers panic with when a sum cannot be represented as a Coin. Add
// itself reports overflow by returning false, not this error.
var ErrCoinOverflow = fmt.Errorf("coin: addition overflows")

// CoinFromIntegral converts a signed integer into a Coin, rejecting
// negative values. This is the only constructor that can fail; every
// other Coin in the package is produced by arithmetic on already-valid
// Coins.
func CoinFromIntegral(v int64) (Coin, error) {
	if v < 0 {
		return 0, fmt.Errorf("coin: negative value %d", v)
	}
	return Coin(v), nil
}

// CoinFromAmount converts a dcrutil.Amount into a Coin, rejecting
// negative amounts. Amount is signed (it represents credits and debits),
// while Coin is not, so this conversion is lossy in the same direction
// as CoinFromIntegral.
func CoinFromAmount(amt dcrutil.Amount) (Coin, error) {
	return CoinFromIntegral(int64(amt))
}

// Amount converts a Coin back into a dcrutil.Amount for callers that need
// to hand the value to wallet or transaction-building code.
func (c Coin) Amount() dcrutil.Amount {
	return dcrutil.Amount(c)
}

// Int64 returns c as a signed integer. Since Coin's domain is bounded by
// uint64 and legitimate wallet balances never approach that bound, this
// conversion is provided as a convenience and is not checked.
func (c Coin) Int64() int64 {
	return int64(c)
}

// Add returns c + other, and false if the sum would overflow the Coin
// domain. Add is the only place overflow can occur in this package, since
// every other arithmetic operation only ever shrinks a Coin.
func (c Coin) Add(other Coin) (Coin, bool) {
	sum := c + other
	if sum < c {
		return 0, false
	}
	return sum, true
}

// MustAdd is Add, panicking on overflow. It exists for call sites summing
// coins that are already known to be within a sane wallet balance, where
// an overflow indicates a programming error rather than a data problem.
func (c Coin) MustAdd(other Coin) Coin {
	sum, ok := c.Add(other)
	if !ok {
		panic(ErrCoinOverflow)
	}
	return sum
}

// Sub returns c - other, and false if other exceeds c. Coin has no
// representation for negative values, so unlike Add this case is not an
// overflow but simply undefined.
func (c Coin) Sub(other Coin) (Coin, bool) {
	if other > c {
		return 0, false
	}
	return c - other, true
}

// Distance returns the absolute difference between two Coins.
func Distance(a, b Coin) Coin {
	if a > b {
		return a - b
	}
	return b - a
}

// Div returns c / n, and false if n is zero.
func (c Coin) Div(n uint64) (Coin, bool) {
	if n == 0 {
		return 0, false
	}
	return Coin(uint64(c) / n), true
}

// Mod returns c % n, and false if n is zero.
func (c Coin) Mod(n uint64) (Coin, bool) {
	if n == 0 {
		return 0, false
	}
	return Coin(uint64(c) % n), true
}

// SumCoins adds together a slice of Coins, returning false if the running
// total overflows.
func SumCoins(cs []Coin) (Coin, bool) {
	var total Coin
	for _, c := range cs {
		var ok bool
		total, ok = total.Add(c)
		if !ok {
			return 0, false
		}
	}
	return total, true
}
