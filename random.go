// Package kaczmarz - the Random family: sampling rows from a fixed
// probability distribution chosen at construction.
//
// The distribution is validated and normalized once; each call draws one
// index independently (no memory of past draws) from the strategy's own
// deterministic RNG.

package kaczmarz

import (
	"math"
	"math/rand"
)

// Random returns the fixed-distribution sampling policy. p is the per-row
// sampling weight vector; nil selects the uniform distribution. A non-nil p
// must have exactly m entries, all finite and non-negative, with a positive
// sum — anything else fails with ErrBadDistribution. Weights are normalized
// internally, so p need not sum to 1.
func Random(p []float64) StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		w, err := normalizeWeights(p, sys.Rows())
		if err != nil {
			return nil, err
		}

		return newRandomStrategy(w, rng), nil
	}
}

// UniformRandom returns the uniform sampling policy — Random with the
// default distribution left in place.
func UniformRandom() StrategyFactory {
	return Random(nil)
}

// SVRandom returns the Strohmer–Vershynin policy: rows are sampled with
// probability proportional to their squared Euclidean norm,
//
//	p[i] = ‖A[i]‖² / Σⱼ ‖A[j]‖²
//
// computed once at construction from the System's precomputed row norms.
// If every row norm is zero the distribution is undefined and construction
// fails with ErrZeroRowNorms — the documented policy is an explicit failure,
// never a silent fallback to uniform. (NewSystem already rejects individual
// zero-norm rows, so this gate matters for systems built by other means.)
func SVRandom() StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		norms := sys.RowNorms()

		var sum float64
		for _, n := range norms {
			sum += n * n
		}
		if sum == 0 {
			return nil, ErrZeroRowNorms
		}

		p := make([]float64, len(norms))
		for i, n := range norms {
			p[i] = n * n / sum
		}

		return newRandomStrategy(p, rng), nil
	}
}

// randomStrategy samples one index per call from a fixed normalized
// distribution. It is the composable base of the quantile family.
type randomStrategy struct {
	rng *rand.Rand
	p   []float64 // normalized weights, length m, summing to 1
}

func newRandomStrategy(p []float64, rng *rand.Rand) *randomStrategy {
	if rng == nil {
		rng = rngFromSeed(0) // default deterministic stream
	}

	return &randomStrategy{rng: rng, p: p}
}

func (s *randomStrategy) SelectRow(_ []float64) (int, bool, error) {
	return sampleIndex(s.rng, s.p, 1), true, nil
}

// Weights returns a copy of the normalized sampling distribution.
// Introspection surface for callers and tests; mutation-safe.
func (s *randomStrategy) Weights() []float64 {
	cp := make([]float64, len(s.p))
	copy(cp, s.p)

	return cp
}

// normalizeWeights validates p against row count m and returns an owned,
// normalized copy. nil p yields the uniform distribution.
//
// Errors: ErrBadDistribution on wrong length, negative or non-finite
// entries, or a non-positive sum.
//
// Complexity: O(m) time and space.
func normalizeWeights(p []float64, m int) ([]float64, error) {
	// Uniform default.
	if p == nil {
		w := make([]float64, m)
		u := 1 / float64(m)
		for i := range w {
			w[i] = u
		}

		return w, nil
	}

	if len(p) != m {
		return nil, ErrBadDistribution
	}

	var sum float64
	for _, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadDistribution
		}
		sum += v
	}
	if sum <= 0 {
		return nil, ErrBadDistribution
	}

	w := make([]float64, m)
	for i, v := range p {
		w[i] = v / sum
	}

	return w, nil
}
