package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCoinScenarios(t *testing.T) {
	require.Equal(t, []Coin{3, 3, 4, 4}, SplitCoin(10, []Coin{1, 1, 1, 1}))
	require.Equal(t, []Coin{11, 12, 13, 14}, SplitCoin(40, []Coin{1, 2, 3, 4}))
	require.Equal(t, []Coin{10}, SplitCoin(10, nil))
	require.Nil(t, SplitCoin(0, nil))
}

func TestSplitCoinPreservesSum(t *testing.T) {
	xs := []Coin{7, 2, 9, 100, 0}
	before, ok := SumCoins(xs)
	require.True(t, ok)

	for v := Coin(0); v <= 50; v++ {
		result := SplitCoin(v, xs)
		require.Len(t, result, len(xs))

		after, ok := SumCoins(result)
		require.True(t, ok)
		require.Equal(t, before+v, after)
	}
}
