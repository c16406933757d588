package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Choice picks an index with probability proportional to its weight.
// It returns -1 if no weight is positive.
func (r *RNG) Choice(weights ...int) int {
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total == 0 {
		return -1
	}

	n := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}

	return len(weights) - 1
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfKeys generates n keys in [0, keyCount) with Zipfian distribution.
// A few keys hold most positions, which exercises Multi key indexes.
func (r *RNG) ZipfKeys(n, keyCount int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int, n)
	for i := range n {
		keys[i] = r.zipfLocked(keyCount, s)
	}

	return keys
}

// Perm returns a pseudo-random permutation of [0, n).
// Useful for visiting positions in random order.
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// String returns a random lowercase string of length n drawn from the first
// alphabet letters.
func (r *RNG) String(n, alphabet int) string {
	alphabet = min(max(alphabet, 1), 26)

	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.rand.Intn(alphabet))
	}
	return string(b)
}
