package coinselect

import (
	"fmt"
	"math/big"
	"sort"
)

// FeeShare pairs a Coin from the input sequence with the Fee that has
// been assigned to it by DistributeFee.
type FeeShare struct {
	Fee  Fee
	Coin Coin
}

// DistributeFee splits fee proportionally across coins, rounding each
// share to an integer such that the shares sum to exactly fee and the
// input order is preserved in the output. coins must be non-empty and
// every element strictly positive; fee must be representable (it may be
// zero, in which case every share is zero).
//
// The rational share for coin i is fee * coins[i] / total. Shares are
// first taken as the floor of that ratio; the few units left over by
// flooring (always fewer than len(coins)) are then handed out one-by-one
// to the coins with the largest fractional remainder, largest first,
// ties broken in favor of the earlier original index. This keeps the
// rounding bit-for-bit reproducible across implementations: see spec
// §4.1 for the full derivation.
func DistributeFee(fee Fee, coins []Coin) ([]FeeShare, error) {
	if len(coins) == 0 {
		return nil, fmt.Errorf("coinselect: DistributeFee called with no coins")
	}
	for _, c := range coins {
		if c == 0 {
			return nil, fmt.Errorf("coinselect: DistributeFee called with a zero coin")
		}
	}

	total, ok := SumCoins(coins)
	if !ok {
		return nil, fmt.Errorf("coinselect: coins overflow while summing")
	}

	n := len(coins)
	floors := make([]uint64, n)
	fracNum := make([]*big.Int, n) // numerator of the fractional remainder, over `total`

	totalBig := new(big.Int).SetUint64(uint64(total))
	feeBig := new(big.Int).SetUint64(uint64(fee))

	floorSum := uint64(0)
	for i, c := range coins {
		// u_i = fee * c / total, computed exactly via big.Int to
		// cover the 64x64-bit worst case product named in spec §9.
		num := new(big.Int).Mul(feeBig, new(big.Int).SetUint64(uint64(c)))
		q, r := new(big.Int).QuoRem(num, totalBig, new(big.Int))

		floors[i] = q.Uint64()
		fracNum[i] = r
		floorSum += floors[i]
	}

	shortfall := uint64(fee) - floorSum

	type idxFrac struct {
		idx  int
		frac *big.Int
	}
	order := make([]idxFrac, n)
	for i := range coins {
		order[i] = idxFrac{i, fracNum[i]}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return order[a].frac.Cmp(order[b].frac) > 0
	})

	roundUp := make([]bool, n)
	for i := uint64(0); i < shortfall; i++ {
		roundUp[order[i].idx] = true
	}

	out := make([]FeeShare, n)
	for i, c := range coins {
		share := floors[i]
		if roundUp[i] {
			share++
		}
		out[i] = FeeShare{Fee: Coin(share), Coin: c}
	}

	return out, nil
}
