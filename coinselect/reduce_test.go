package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceChangeOutputsScenarios(t *testing.T) {
	tests := []struct {
		name      string
		threshold DustThreshold
		fee       Fee
		change    []Coin
		want      []Coin
	}{
		{"even split", 0, 4, []Coin{2, 2, 2, 2}, []Coin{1, 1, 1, 1}},
		{"proportional split", 0, 15, []Coin{2, 4, 8, 16}, []Coin{1, 2, 4, 8}},
		{"dust coalesced into survivor", 1, 4, []Coin{2, 2, 2, 2}, []Coin{4}},
		{"fee consumes all change", 0, 15, []Coin{10}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReduceChangeOutputs(tc.threshold, tc.fee, tc.change)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReduceChangeOutputsInvariant(t *testing.T) {
	change := []Coin{3, 17, 42, 8, 1}
	total, ok := SumCoins(change)
	require.True(t, ok)

	for fee := Fee(0); fee <= total+5; fee++ {
		result := ReduceChangeOutputs(0, fee, change)

		if fee >= total {
			require.Empty(t, result)
			continue
		}

		sum, ok := SumCoins(result)
		require.True(t, ok)
		require.Equal(t, total-fee, sum)

		for _, c := range result {
			require.Greater(t, c, DustThreshold(0))
		}
	}
}
