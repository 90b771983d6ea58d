package coinselect

import "fmt"

// DefaultDustThreshold is the dust cutoff used when a caller does not
// have a more specific value in mind, expressed in atoms. It matches the
// relay-policy dust limit used elsewhere in the dcrlnd wallet stack for a
// standard p2pkh output.
const DefaultDustThreshold DustThreshold = 546

// Policy bundles the economic knobs a caller needs to build FeeOptions,
// the way wtpolicy.Policy bundles a watchtower session's negotiated
// parameters. Unlike wtpolicy.Policy it carries no negotiated/session
// state — it exists purely so applications have one place to hang
// defaults and overrides rather than constructing a bare FeeOptions by
// hand.
type Policy struct {
	// DustThreshold is the cutoff below which change is coalesced away
	// (see DustThreshold's doc comment on fee.go).
	DustThreshold DustThreshold

	// MaxInputsForNOutputs bounds, for a migration batch producing n
	// change outputs, how many inputs a single transaction can still
	// carry. Required only by FeeOptionsFor when building options for
	// DepleteUTxO/IdealBatchSize.
	MaxInputsForNOutputs func(n int) int
}

// DefaultPolicy returns a Policy using DefaultDustThreshold and an
// unbounded MaxInputsForNOutputs (every batch size is considered
// feasible). Callers targeting a specific transaction-size budget should
// override MaxInputsForNOutputs before calling IdealBatchSize.
func DefaultPolicy() Policy {
	return Policy{
		DustThreshold:        DefaultDustThreshold,
		MaxInputsForNOutputs: func(n int) int { return n },
	}
}

// FeeOptionsFor combines p with estimator into a FeeOptions ready to pass
// to AdjustForFee or DepleteUTxO. Go methods cannot carry their own type
// parameters, so this is a free function rather than a method on Policy.
func FeeOptionsFor[I comparable, O comparable](p Policy, estimator FeeEstimator[I, O]) FeeOptions[I, O] {
	return FeeOptions[I, O]{
		FeeEstimator:         estimator,
		DustThreshold:        p.DustThreshold,
		MaxInputsForNOutputs: p.MaxInputsForNOutputs,
	}
}

// ValidateDustThreshold reports an error if threshold is unreasonably
// large relative to total, matching the defensive check
// wtpolicy.Policy's ComputeRewardOutputs performs before trusting a fee
// configuration.
func ValidateDustThreshold(threshold DustThreshold, total Coin) error {
	if total > 0 && threshold >= total {
		return fmt.Errorf("coinselect: dust threshold %d is not smaller than total value %d",
			threshold, total)
	}
	return nil
}
