// Package kaczmarz - RNG utilities shared by the stochastic strategies.
//
// This file centralizes deterministic random generation for the Random
// family, the quantile subsamplers and the orthogonality-graph strategy.
//
// Goals:
//   - Determinism: same seed ⇒ identical selection sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: O(m) weighted draws, O(m) subset sampling, no hidden allocations
//     beyond the returned slices.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand (and
//     therefore a stochastic Strategy or its Solver) across goroutines.
package kaczmarz

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleIndex draws one index from weights (non-negative, total > 0) by a
// cumulative scan: u ~ U[0,total), return the first i with cum(i) > u.
// Zero-weight entries are never returned. Callers must validate weights
// beforehand; this is a hot-path helper, not a validator.
//
// Complexity: O(m) time, O(1) space.
func sampleIndex(rng *rand.Rand, weights []float64, total float64) int {
	u := rng.Float64() * total

	var cum float64
	last := 0 // last index with positive weight, fallback against FP round-off
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		last = i
		if u < cum {
			return i
		}
	}

	return last
}

// sampleWithoutReplacement returns k distinct indices drawn uniformly from
// 0..m-1 using a partial Fisher–Yates shuffle. Requires 1 ≤ k ≤ m (validated
// by callers at construction time).
//
// Complexity: O(m) time, O(m) space.
func sampleWithoutReplacement(rng *rand.Rand, m, k int) []int {
	pool := make([]int, m)
	var i int
	for i = 0; i < m; i++ {
		pool[i] = i
	}

	// Only the first k positions need to be shuffled.
	var j int
	for i = 0; i < k; i++ {
		j = i + rng.Intn(m-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
