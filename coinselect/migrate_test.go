package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func migrationEstimator(base, perInput Fee) FeeEstimator[string, struct{}] {
	return func(sel CoinSelection[string, struct{}]) Fee {
		return base + perInput*Fee(sel.Inputs.Len())
	}
}

func TestDepleteUTxOBalancesEachBatch(t *testing.T) {
	utxo := NewCoinMap([]CoinMapEntry[string]{
		{Key: "a", Coin: 1000},
		{Key: "b", Coin: 2000},
		{Key: "c", Coin: 3000},
		{Key: "d", Coin: 4000},
	})

	opts := FeeOptions[string, struct{}]{
		FeeEstimator:  migrationEstimator(50, 10),
		DustThreshold: 100,
	}

	sels := DepleteUTxO(opts, 2, utxo)
	require.Len(t, sels, 2)

	var seen []string
	for _, sel := range sels {
		require.LessOrEqual(t, sel.Inputs.Len(), 2)

		in, ok := sel.TotalIn()
		require.True(t, ok)
		chg, ok := sel.TotalChange()
		require.True(t, ok)
		fee := opts.FeeEstimator(sel)

		require.Equal(t, in, chg+fee)

		for _, c := range sel.Change {
			require.Greater(t, c, opts.DustThreshold)
		}

		for _, e := range sel.Inputs.Entries() {
			seen = append(seen, e.Key)
		}
	}

	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, seen)
}

func TestDepleteUTxOAbandonsUnbalanceableBatchAndStops(t *testing.T) {
	utxo := NewCoinMap([]CoinMapEntry[string]{
		{Key: "a", Coin: 1000},
		{Key: "b", Coin: 2000},
		{Key: "c", Coin: 10},
		{Key: "d", Coin: 5},
		{Key: "e", Coin: 3000},
	})

	opts := FeeOptions[string, struct{}]{
		FeeEstimator:  migrationEstimator(50, 10),
		DustThreshold: 100,
	}

	sels := DepleteUTxO(opts, 2, utxo)
	require.Len(t, sels, 1)

	var seen []string
	for _, e := range sels[0].Inputs.Entries() {
		seen = append(seen, e.Key)
	}
	require.ElementsMatch(t, []string{"a", "b"}, seen)
}

func TestDepleteUTxOAllDustBatchUsesThresholdChange(t *testing.T) {
	utxo := NewCoinMap([]CoinMapEntry[string]{
		{Key: "a", Coin: 60},
		{Key: "b", Coin: 50},
	})

	opts := FeeOptions[string, struct{}]{
		FeeEstimator:  migrationEstimator(1, 0),
		DustThreshold: 70,
	}

	sels := DepleteUTxO(opts, 2, utxo)
	require.Len(t, sels, 1)
	require.Equal(t, []Coin{109}, sels[0].Change)
}

func TestIdealBatchSize(t *testing.T) {
	// A caller whose cost model always answers n+1 never satisfies
	// maxInputsForNOutputs(B) <= B, so the search ends at the 255 cap.
	got := IdealBatchSize(func(n int) int { return n + 1 })
	require.Equal(t, 255, got)

	// A caller whose cost model is satisfied once batches reach 10.
	got = IdealBatchSize(func(n int) int {
		if n >= 10 {
			return n
		}
		return n + 50
	})
	require.Equal(t, 10, got)
}
