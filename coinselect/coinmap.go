package coinselect

import "sort"

// CoinMapEntry is a single (key, value) pair of a CoinMap. K is typically
// a UTxO outpoint, but the package never inspects K beyond comparing it
// for equality and, where an ordering is required for determinism,
// through the Less function supplied to Sorted.
type CoinMapEntry[K comparable] struct {
	Key  K
	Coin Coin
}

// CoinMap is a mapping from K to Coin with unique keys. Internally it is
// kept as an ordered slice of entries rather than a Go map: Go's built-in
// map iteration order is randomized per-process, and spec §5 requires
// that a fixed input produce bit-identical output across runs. Insertion
// order is preserved by all of this package's own constructors.
type CoinMap[K comparable] struct {
	entries []CoinMapEntry[K]
	index   map[K]int
}

// NewCoinMap builds a CoinMap from a slice of entries. It panics if any
// key is repeated, since CoinMap's invariant is unique keys — a caller
// assembling a UTxO set with a duplicate outpoint has a bug that should
// surface immediately rather than silently dropping an entry.
func NewCoinMap[K comparable](entries []CoinMapEntry[K]) CoinMap[K] {
	m := CoinMap[K]{
		entries: make([]CoinMapEntry[K], 0, len(entries)),
		index:   make(map[K]int, len(entries)),
	}
	for _, e := range entries {
		if err := m.insert(e); err != nil {
			panic(err)
		}
	}
	return m
}

func (m *CoinMap[K]) insert(e CoinMapEntry[K]) error {
	if _, ok := m.index[e.Key]; ok {
		return &duplicateKeyError[K]{e.Key}
	}
	m.index[e.Key] = len(m.entries)
	m.entries = append(m.entries, e)
	return nil
}

type duplicateKeyError[K comparable] struct {
	key K
}

func (e *duplicateKeyError[K]) Error() string {
	return "coinselect: duplicate key in CoinMap"
}

// Len returns the number of entries in the map.
func (m CoinMap[K]) Len() int {
	return len(m.entries)
}

// Entries returns the map's entries in their reproducible iteration
// order. The returned slice is a copy; mutating it does not affect m.
func (m CoinMap[K]) Entries() []CoinMapEntry[K] {
	out := make([]CoinMapEntry[K], len(m.entries))
	copy(out, m.entries)
	return out
}

// Values returns just the Coin values, in the same order as Entries.
func (m CoinMap[K]) Values() []Coin {
	out := make([]Coin, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Coin
	}
	return out
}

// Keys returns just the keys, in the same order as Entries.
func (m CoinMap[K]) Keys() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Get returns the Coin associated with key, and whether it was present.
func (m CoinMap[K]) Get(key K) (Coin, bool) {
	i, ok := m.index[key]
	if !ok {
		return 0, false
	}
	return m.entries[i].Coin, true
}

// Union returns a new CoinMap containing the entries of both m and
// other. It panics on a duplicate key, matching NewCoinMap's contract
// that no UTxO key may ever be selected twice.
func (m CoinMap[K]) Union(other CoinMap[K]) CoinMap[K] {
	out := NewCoinMap(m.Entries())
	for _, e := range other.entries {
		if err := out.insert(e); err != nil {
			panic(err)
		}
	}
	return out
}

// Sorted returns a copy of m's entries sorted by less, for callers that
// need an explicit order beyond insertion order (spec §3: "the caller
// must not depend on a specific order except through explicit sorting
// APIs").
func (m CoinMap[K]) Sorted(less func(a, b CoinMapEntry[K]) bool) []CoinMapEntry[K] {
	out := m.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// CoinSelection is a draft transaction: the UTxO entries consumed as
// inputs, the requested payment outputs, and the change coins needed to
// balance the two against the fee. Change has no keys of its own — its
// order is significant only to the rounding determinism of
// DistributeFee/ReduceChangeOutputs, not to any notion of identity.
type CoinSelection[I comparable, O comparable] struct {
	Inputs  CoinMap[I]
	Outputs CoinMap[O]
	Change  []Coin
}

// TotalIn returns the sum of the selection's inputs.
func (s CoinSelection[I, O]) TotalIn() (Coin, bool) {
	return SumCoins(s.Inputs.Values())
}

// TotalOut returns the sum of the selection's payment outputs.
func (s CoinSelection[I, O]) TotalOut() (Coin, bool) {
	return SumCoins(s.Outputs.Values())
}

// TotalChange returns the sum of the selection's change coins.
func (s CoinSelection[I, O]) TotalChange() (Coin, bool) {
	return SumCoins(s.Change)
}

// WithChange returns a copy of s with its change list replaced. Inputs
// and outputs are shared with s (CoinMap is treated as an immutable value
// once constructed), matching spec §3's "no aliasing" rule for the parts
// that do change across adjuster iterations.
func (s CoinSelection[I, O]) WithChange(change []Coin) CoinSelection[I, O] {
	s.Change = change
	return s
}
