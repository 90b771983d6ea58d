package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistributeFeeScenarios(t *testing.T) {
	tests := []struct {
		name string
		fee  Fee
		cs   []Coin
		want []Coin
	}{
		{
			name: "exact division",
			fee:  7,
			cs:   []Coin{1, 2, 4},
			want: []Coin{1, 2, 4},
		},
		{
			name: "exact division at twice the fee",
			fee:  14,
			cs:   []Coin{1, 2, 4},
			want: []Coin{2, 4, 8},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shares, err := DistributeFee(tc.fee, tc.cs)
			require.NoError(t, err)
			require.Len(t, shares, len(tc.cs))

			for i, s := range shares {
				require.Equal(t, tc.cs[i], s.Coin, "order preserved")
				require.Equal(t, tc.want[i], s.Fee)
			}
		})
	}
}

func TestDistributeFeePreservesSumAndOrder(t *testing.T) {
	coins := []Coin{5, 17, 3, 42, 1}

	for fee := Fee(0); fee <= 100; fee++ {
		shares, err := DistributeFee(fee, coins)
		require.NoError(t, err)
		require.Len(t, shares, len(coins))

		var total Fee
		for i, s := range shares {
			require.Equal(t, coins[i], s.Coin)
			total += s.Fee
		}
		require.Equal(t, fee, total)
	}
}

func TestDistributeFeeRejectsEmptyOrZero(t *testing.T) {
	_, err := DistributeFee(10, nil)
	require.Error(t, err)

	_, err = DistributeFee(10, []Coin{1, 0, 2})
	require.Error(t, err)
}

func TestDistributeFeeTieBreakIsOriginalIndex(t *testing.T) {
	// Equal coins produce equal fractional remainders; the earlier
	// original index must win every RoundUp tie.
	shares, err := DistributeFee(3, []Coin{10, 10, 10})
	require.NoError(t, err)

	require.Equal(t, []Fee{1, 1, 1}, []Fee{shares[0].Fee, shares[1].Fee, shares[2].Fee})

	shares, err = DistributeFee(2, []Coin{10, 10, 10})
	require.NoError(t, err)
	require.Equal(t, Fee(1), shares[0].Fee)
	require.Equal(t, Fee(1), shares[1].Fee)
	require.Equal(t, Fee(0), shares[2].Fee)
}
