package coinselect

// ReduceChangeOutputs produces a new change list that has collectively
// absorbed fee out of change, or an empty list if fee consumes change
// entirely.
//
// When fee >= sum(change), the whole of change is handed over to the fee
// and the result is empty — the caller observes this as change being
// "fully consumed"; spec §9's open question notes this is intentional
// even when fee == sum(change) exactly.
//
// Otherwise fee is distributed proportionally across the positive-valued
// coins of change (DistributeFee), each coin is reduced by its assigned
// share, and the result is passed through CoalesceDust so that no
// surviving change coin is at or below threshold.
func ReduceChangeOutputs(threshold DustThreshold, fee Fee, change []Coin) []Coin {
	total, ok := SumCoins(change)
	if !ok {
		panic(ErrCoinOverflow)
	}
	if fee >= total {
		return nil
	}

	var positive []Coin
	for _, c := range change {
		if c > 0 {
			positive = append(positive, c)
		}
	}
	if len(positive) == 0 {
		// sum(change) > fee yet every coin is zero: impossible,
		// since a sum of zeros is zero and fee >= 0.
		return nil
	}

	shares, err := DistributeFee(fee, positive)
	if err != nil {
		panic(err)
	}

	reduced := make([]Coin, len(shares))
	for i, s := range shares {
		c, ok := s.Coin.Sub(s.Fee)
		if !ok {
			// Per spec, a share that would exceed its coin is
			// clamped to zero rather than propagated as an error.
			c = 0
		}
		reduced[i] = c
	}

	return CoalesceDust(threshold, reduced)
}
