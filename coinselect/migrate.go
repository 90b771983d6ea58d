package coinselect

// DepleteUTxO is the migration/depletion driver (spec §4.6). It batches
// utxo into groups of at most batchSize entries (in utxo's iteration
// order), and for each batch builds a self-send selection — no payment
// outputs, change equal to the batch's non-dust values — then rebalances
// it against options.FeeEstimator using a direct fee-diff loop that
// shares ReduceChangeOutputs' dust semantics but not its machinery (the
// diff here is always applied to a single change coin, never split
// proportionally across several).
//
// Every UTxO entry appears in at most one returned selection's inputs.
// batchSize must be between 1 and 255 inclusive.
func DepleteUTxO[I comparable](opts FeeOptions[I, struct{}], batchSize int,
	utxo CoinMap[I]) []CoinSelection[I, struct{}] {

	if batchSize < 1 || batchSize > 255 {
		panic(&assertionError{msg: "batchSize must be within 1..255"})
	}

	var out []CoinSelection[I, struct{}]
	remaining := utxo.Entries()

	for len(remaining) > 0 {
		n := batchSize
		if n > len(remaining) {
			n = len(remaining)
		}
		batch := remaining[:n]
		remaining = remaining[n:]

		sel, ok := rebalanceMigrationBatch(opts, batch)
		if !ok {
			// Abandoning this batch means abandoning migration
			// entirely: spec §4.6 step 4 says "abandon this
			// batch ... and stop migration", since a batch that
			// cannot be rebalanced means the remaining UTxO set
			// is too thin to safely continue.
			break
		}

		out = append(out, sel)
	}

	return out
}

func rebalanceMigrationBatch[I comparable](opts FeeOptions[I, struct{}],
	batch []CoinMapEntry[I]) (CoinSelection[I, struct{}], bool) {

	inputs := NewCoinMap(batch)

	change := make([]Coin, 0, len(batch))
	for _, e := range batch {
		if e.Coin > opts.DustThreshold {
			change = append(change, e.Coin)
		}
	}
	if len(change) == 0 {
		change = []Coin{opts.DustThreshold}
	}

	sel := CoinSelection[I, struct{}]{
		Inputs:  inputs,
		Outputs: NewCoinMap[struct{}](nil),
		Change:  change,
	}

	for {
		totalIn, ok := sel.TotalIn()
		if !ok {
			return CoinSelection[I, struct{}]{}, false
		}
		totalChange, ok := sel.TotalChange()
		if !ok {
			return CoinSelection[I, struct{}]{}, false
		}
		fee := opts.FeeEstimator(sel)

		spent, ok := totalChange.Add(fee)
		if !ok {
			return CoinSelection[I, struct{}]{}, false
		}

		if spent == totalIn {
			return sel, true
		}

		newChange := append([]Coin(nil), sel.Change...)

		if spent < totalIn {
			newChange[0] = newChange[0].MustAdd(totalIn - spent)
		} else {
			diff := spent - totalIn
			reduced, ok := newChange[0].Sub(diff)
			if !ok {
				// The first change coin cannot absorb the
				// whole shortfall; dropping it is the only
				// option left to the fee-diff loop.
				newChange = newChange[1:]
				if len(newChange) == 0 {
					return CoinSelection[I, struct{}]{}, false
				}
				sel = sel.WithChange(newChange)
				continue
			}
			newChange[0] = reduced
		}

		if newChange[0] <= opts.DustThreshold {
			newChange = newChange[1:]
			if len(newChange) == 0 {
				return CoinSelection[I, struct{}]{}, false
			}
		}

		sel = sel.WithChange(newChange)
	}
}

// IdealBatchSize returns the smallest batch size B (1..255) for which
// maxInputsForNOutputs(B) <= B — the largest batch DepleteUTxO can form
// whose own change outputs don't in turn demand a bigger batch than B to
// stay within a single transaction's input budget.
func IdealBatchSize(maxInputsForNOutputs func(n int) int) int {
	for b := 1; b < 255; b++ {
		if maxInputsForNOutputs(b) <= b {
			return b
		}
	}
	return 255
}
