package coinselect

// CoalesceDust partitions xs into coins above threshold ("keep") and
// coins at or below it ("drop"), then redistributes the combined value
// of drop back over keep using SplitCoin. No coin in the result is at or
// below threshold. Whenever keep is non-empty the result sums to the same
// total as xs.
//
// If every coin in xs is dust, keep is empty. When the combined dust value
// exceeds threshold it survives as a single coin holding the whole of it —
// even though none of the inputs individually cleared the threshold, their
// sum may (reduceChangeOutputs(t=1, F=4, [2,2,2,2]) = [4], spec §8).
// Otherwise the result is empty and the dust value leaves the list.
//
// coins is only ever inspected for its values, so this accepts and
// returns []Coin rather than a CoinMap — both ReduceChangeOutputs and the
// external CoalesceDust entry point operate on change lists, which have
// no keys (spec §3).
func CoalesceDust(threshold DustThreshold, xs []Coin) []Coin {
	var keep, drop []Coin
	for _, x := range xs {
		if x > threshold {
			keep = append(keep, x)
		} else {
			drop = append(drop, x)
		}
	}

	dustTotal, ok := SumCoins(drop)
	if !ok {
		panic(ErrCoinOverflow)
	}
	if dustTotal == 0 {
		return keep
	}
	if len(keep) == 0 && dustTotal <= threshold {
		return nil
	}

	return SplitCoin(dustTotal, keep)
}
