package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoinMapBasics(t *testing.T) {
	m := NewCoinMap([]CoinMapEntry[string]{
		{Key: "a", Coin: 1},
		{Key: "b", Coin: 2},
		{Key: "c", Coin: 3},
	})

	require.Equal(t, 3, m.Len())
	require.Equal(t, []Coin{1, 2, 3}, m.Values())
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())

	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, Coin(2), v)

	_, ok = m.Get("z")
	require.False(t, ok)
}

func TestCoinMapDuplicateKeyPanics(t *testing.T) {
	require.Panics(t, func() {
		NewCoinMap([]CoinMapEntry[string]{
			{Key: "a", Coin: 1},
			{Key: "a", Coin: 2},
		})
	})
}

func TestCoinMapUnion(t *testing.T) {
	m1 := NewCoinMap([]CoinMapEntry[string]{{Key: "a", Coin: 1}})
	m2 := NewCoinMap([]CoinMapEntry[string]{{Key: "b", Coin: 2}})

	u := m1.Union(m2)
	require.Equal(t, 2, u.Len())
	v, ok := u.Get("a")
	require.True(t, ok)
	require.Equal(t, Coin(1), v)
}

func TestCoinMapSorted(t *testing.T) {
	m := NewCoinMap([]CoinMapEntry[string]{
		{Key: "b", Coin: 2},
		{Key: "a", Coin: 5},
	})

	sorted := m.Sorted(func(a, b CoinMapEntry[string]) bool {
		return a.Key < b.Key
	})
	require.Equal(t, "a", sorted[0].Key)
	require.Equal(t, "b", sorted[1].Key)
}

func TestCalculateFee(t *testing.T) {
	sel := CoinSelection[string, string]{
		Inputs:  NewCoinMap([]CoinMapEntry[string]{{Key: "in1", Coin: 100}}),
		Outputs: NewCoinMap([]CoinMapEntry[string]{{Key: "out1", Coin: 80}}),
		Change:  []Coin{15},
	}

	fee, ok := CalculateFee(sel)
	require.True(t, ok)
	require.Equal(t, Fee(5), fee)

	unbalanced := sel.WithChange([]Coin{25})
	_, ok = CalculateFee(unbalanced)
	require.False(t, ok)
}
