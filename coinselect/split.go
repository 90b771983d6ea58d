package coinselect

// SplitCoin distributes value v evenly across n existing coins, adding it
// to their current values rather than replacing them. Given q, r :=
// v/n, v%n, the last r coins in xs gain q+1 and the rest gain q, so the
// total of the result is exactly v + sum(xs) and no two output coins
// differ by more than 1 in how much they were incremented.
//
// If xs is empty, the whole of v becomes a single new coin (or SplitCoin
// returns no coins at all if v is also zero) — this is the path
// AdjustForFee uses to re-seed an empty change list after drawing extra
// inputs.
func SplitCoin(v Coin, xs []Coin) []Coin {
	n := len(xs)
	if n == 0 {
		if v == 0 {
			return nil
		}
		return []Coin{v}
	}

	q, _ := v.Div(uint64(n))
	r, _ := v.Mod(uint64(n))

	// The r leftover units go to the last r coins rather than the
	// first r: splitCoin(10, [1,1,1,1]) = [3,3,4,4], not [4,4,3,3]
	// (spec §8).
	cutoff := Coin(n) - r

	out := make([]Coin, n)
	for i, x := range xs {
		inc := q
		if Coin(i) >= cutoff {
			inc = q.MustAdd(1)
		}
		out[i] = x.MustAdd(inc)
	}
	return out
}
