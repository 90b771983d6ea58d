package coinselect

import "math/rand"

// UtxoEntry is a single UTxO available for AdjustForFee to draw on when
// change alone cannot absorb the estimated fee.
type UtxoEntry[I comparable] struct {
	Key  I
	Coin Coin
}

// RandomSource is the capability AdjustForFee uses to sample additional
// UTxO entries from a pool. Draw removes and returns a uniformly random
// entry from pool, reporting ok=false if the pool is empty. Implementors
// must not retain pool across calls — the adjuster always passes the
// freshest slice — and must behave as a pure function of pool and their
// own internal state, so that a fixed seed reproduces a fixed draw
// sequence (spec §5, §8 property 7).
type RandomSource[I comparable] interface {
	Draw(pool []UtxoEntry[I]) (entry UtxoEntry[I], rest []UtxoEntry[I], ok bool)
}

// Rand is a RandomSource backed by math/rand. It is explicitly seedable
// so tests can inject a fixed seed and obtain deterministic draws; a
// production caller that wants cryptographic unpredictability should
// instead provide its own RandomSource wrapping crypto/rand, since
// math/rand's output is trivially predictable from its seed.
type Rand[I comparable] struct {
	rng *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand[I comparable](seed int64) *Rand[I] {
	return &Rand[I]{rng: rand.New(rand.NewSource(seed))}
}

// Draw implements RandomSource.
func (r *Rand[I]) Draw(pool []UtxoEntry[I]) (UtxoEntry[I], []UtxoEntry[I], bool) {
	if len(pool) == 0 {
		return UtxoEntry[I]{}, pool, false
	}

	i := r.rng.Intn(len(pool))
	entry := pool[i]

	rest := make([]UtxoEntry[I], 0, len(pool)-1)
	rest = append(rest, pool[:i]...)
	rest = append(rest, pool[i+1:]...)

	return entry, rest, true
}
