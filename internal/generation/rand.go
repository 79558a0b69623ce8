package generation

import "math/rand"

// Source is the single reseedable pseudorandom stream behind every sampling
// decision in a run. All generators draw from one Source owned by the
// generation context, never from package-global state.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with the given value.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Reseed resets the stream. Each generation phase reseeds with the master
// seed at entry, which makes output depend on the phase call order as well
// as the seed value. This is a documented compatibility policy, not a bug:
// replacing it with a single continuous stream would change every
// reproducible dataset.
func (s *Source) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Between returns a uniform integer in [min, max] inclusive.
// If the bounds are inverted they are swapped.
func (s *Source) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability p. Values outside [0, 1] behave
// as a clamped probability.
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Read fills p with pseudorandom bytes. It lets the stream act as the
// entropy source for UUID minting so identifiers reproduce under a seed.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// pick returns a uniformly chosen element of items. items must be non-empty.
func pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// sampleN returns k distinct elements of items in random draw order,
// leaving items untouched. k is clamped to len(items).
func sampleN[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// shuffle permutes items in place.
func shuffle[T any](s *Source, items []T) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
