package coinselect

import "fmt"

// CannotCoverFeeError is the one recoverable, user-visible failure
// AdjustForFee can report: the UTxO pool was exhausted before enough
// extra value could be drawn to cover the fee. Shortfall is how much
// more was needed.
type CannotCoverFeeError struct {
	Shortfall Fee
}

func (e *CannotCoverFeeError) Error() string {
	return fmt.Sprintf("coinselect: cannot cover fee, short by %d", e.Shortfall)
}

// assertionError reports a precondition violation or an otherwise
// unreachable internal invariant failure (spec §7 classes 2 and 3).
// Callers should treat it like a panic recovered at a boundary: it names
// a caller or estimator bug, not a recoverable runtime condition.
type assertionError struct {
	msg string
	sel interface{}
}

func (e *assertionError) Error() string {
	return fmt.Sprintf("coinselect: internal invariant violated: %s (selection: %+v)",
		e.msg, e.sel)
}

// AdjustForFee is the iterative fee-balancing driver (spec §4.5). Given
// an initial selection whose fee estimate is known to be non-zero, a
// pool of extra UTxO entries not already part of the selection, and a
// RandomSource to sample from that pool, it repeatedly reduces change to
// match the estimated fee and, when change cannot absorb the estimate on
// its own, draws additional inputs until it can.
//
// On success every change coin exceeds options.DustThreshold and the
// returned selection satisfies
// sum(inputs) = sum(outputs) + sum(change) + FeeEstimator(result)
// exactly, except in the dangling-change case: there the residual that
// would cost more to emit as change than it is worth is left in the
// selection, so its implicit fee (CalculateFee) exceeds
// FeeEstimator(result). The only
// error AdjustForFee returns to a well-behaved caller is
// *CannotCoverFeeError; any other error indicates a bug in the caller or
// the supplied FeeEstimator.
func AdjustForFee[I comparable, O comparable](
	opts FeeOptions[I, O],
	extraUtxo []UtxoEntry[I],
	rnd RandomSource[I],
	initialSelection CoinSelection[I, O],
) (CoinSelection[I, O], error) {

	if opts.FeeEstimator(initialSelection) == 0 {
		return CoinSelection[I, O]{}, &assertionError{
			msg: "FeeEstimator(initialSelection) must be non-zero",
			sel: initialSelection,
		}
	}

	sel := initialSelection
	pool := append([]UtxoEntry[I](nil), extraUtxo...)

	for {
		preReductionChange := sel.Change

		feeUpper := opts.FeeEstimator(sel)
		reduced := ReduceChangeOutputs(opts.DustThreshold, feeUpper, sel.Change)
		candidate := sel.WithChange(reduced)

		actual, ok := CalculateFee(candidate)
		if !ok {
			return CoinSelection[I, O]{}, &assertionError{
				msg: "selection is not balanced after reducing change",
				sel: candidate,
			}
		}
		target := opts.FeeEstimator(candidate)

		var remaining Fee
		switch {
		case target >= actual:
			remaining = target - actual

		default:
			// actual > target: there is more left over than the
			// estimator would charge to emit it as change. Check
			// whether emitting it anyway would cost more than its
			// own value — the "dangling change" case.
			residual := actual - target
			dangling := opts.FeeEstimator(candidate.WithChange([]Coin{residual}))

			if dangling >= actual {
				// Paying the excess as fee is cheaper than
				// adding a change output for it. Stop here.
				return candidate, nil
			}

			return CoinSelection[I, O]{}, &assertionError{
				msg: "selection unbalanced: neither raw nor dangling fee covers the residual",
				sel: candidate,
			}
		}

		if remaining == 0 {
			return candidate, nil
		}

		drawn, newPool, shortfall := coverRemainingFee(remaining, pool, rnd)
		if shortfall > 0 {
			return CoinSelection[I, O]{}, &CannotCoverFeeError{Shortfall: shortfall}
		}

		drawnTotal, ok := SumCoins(entryCoins(drawn))
		if !ok {
			return CoinSelection[I, O]{}, &assertionError{
				msg: "drawn UTxO entries overflow",
				sel: candidate,
			}
		}

		newEntries := candidate.Inputs.Entries()
		for _, d := range drawn {
			newEntries = append(newEntries, CoinMapEntry[I]{Key: d.Key, Coin: d.Coin})
		}

		// Split the newly drawn value over the pre-reduction change,
		// not candidate.Change — this re-seeds change with fresh
		// absorption capacity rather than compounding the already
		// reduced list (spec §4.5 step 6).
		newChange := SplitCoin(drawnTotal, preReductionChange)

		sel = CoinSelection[I, O]{
			Inputs:  NewCoinMap(newEntries),
			Outputs: candidate.Outputs,
			Change:  newChange,
		}
		pool = newPool
	}
}

// coverRemainingFee draws entries from pool at random, accumulating their
// value, until the accumulated total meets or exceeds need or the pool is
// exhausted. It returns the drawn entries, the pool with those entries
// removed, and any shortfall still outstanding (zero on success).
func coverRemainingFee[I comparable](need Fee, pool []UtxoEntry[I],
	rnd RandomSource[I]) (drawn []UtxoEntry[I], rest []UtxoEntry[I], shortfall Fee) {

	rest = pool
	var total Coin

	for total < need {
		entry, newRest, ok := rnd.Draw(rest)
		if !ok {
			return drawn, rest, need - total
		}

		drawn = append(drawn, entry)
		rest = newRest
		total = total.MustAdd(entry.Coin)
	}

	return drawn, rest, 0
}

func entryCoins[I comparable](entries []UtxoEntry[I]) []Coin {
	out := make([]Coin, len(entries))
	for i, e := range entries {
		out[i] = e.Coin
	}
	return out
}
