// Package kaczmarz - the row-selection contract and the deterministic
// strategies (Cyclic, MaxDistance, Lookahead).
//
// Contract:
//   - SelectRow is called exactly once per outer-loop iteration, in the order
//     the solver iterates; stateful strategies (cyclic pointer, lookahead
//     cache) depend on that, so callers must never invoke it speculatively.
//   - The iterate is read-only for strategies: they may read the System's
//     immutable data and their own private state, nothing else.
//   - (i, true, nil)  ⇒ project onto row i this iteration.
//   - (0, false, nil) ⇒ skip: perform no projection (a valid outcome, not a
//     failure — see the quantile family).
//   - (_, _, err)     ⇒ selection failed; the solver aborts.

package kaczmarz

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/kaczmarz/matrix"
)

// Strategy picks the row to project onto next.
type Strategy interface {
	// SelectRow returns the next row index for the given read-only iterate,
	// ok=false to skip this iteration, or an error to abort the solve.
	SelectRow(xk []float64) (ik int, ok bool, err error)
}

// StrategyFactory builds a Strategy against a frozen System and an explicit
// deterministic RNG. NewSolver calls the factory once, after system
// validation; rng may be nil for purely deterministic strategies (and is
// replaced by the default stream for stochastic ones).
type StrategyFactory func(sys *System, rng *rand.Rand) (Strategy, error)

// ---------------------------------------------------------------------------
// Cyclic
// ---------------------------------------------------------------------------

// Cyclic returns the classic round-robin policy: rows 0,1,…,m−1,0,1,…
// Deterministic, never skips, O(1) per call.
func Cyclic() StrategyFactory {
	return func(sys *System, _ *rand.Rand) (Strategy, error) {
		// last starts "before the first row" so the first call yields 0.
		return &cyclicStrategy{m: sys.Rows(), last: -1}, nil
	}
}

type cyclicStrategy struct {
	m    int // row count
	last int // last returned index; -1 before the first call
}

func (s *cyclicStrategy) SelectRow(_ []float64) (int, bool, error) {
	s.last = (s.last + 1) % s.m

	return s.last, true, nil
}

// ---------------------------------------------------------------------------
// MaxDistance (Motzkin)
// ---------------------------------------------------------------------------

// MaxDistance returns the greedy policy: project onto the row with the
// largest residual magnitude (ties broken by first occurrence). One full
// matrix-vector product per call — greedy progress at higher compute cost.
func MaxDistance() StrategyFactory {
	return func(sys *System, _ *rand.Rand) (Strategy, error) {
		return &maxDistanceStrategy{sys: sys}, nil
	}
}

type maxDistanceStrategy struct {
	sys *System
}

func (s *maxDistanceStrategy) SelectRow(xk []float64) (int, bool, error) {
	res, err := s.sys.residualAbs(xk)
	if err != nil {
		return 0, false, err
	}

	return argmax(res), true, nil
}

// argmax returns the index of the largest entry, first occurrence on ties.
func argmax(v []float64) int {
	best, bestV := 0, math.Inf(-1)
	for i, x := range v {
		if x > bestV {
			best, bestV = i, x
		}
	}

	return best
}

// ---------------------------------------------------------------------------
// Lookahead
// ---------------------------------------------------------------------------

// Lookahead returns the two-step greedy policy. A fresh search scores every
// candidate pair (i, i2) — where i2 is the MaxDistance continuation after
// projecting onto i — by the lexicographic key
//
//	(residual norm after two steps, residual norm after one step)
//
// and returns the i of the smallest key, caching i2 for the following call.
// The one-slot cache is part of the algorithm, not an optimization: the call
// after a fresh search MUST consume the cached i2, so the two-step search is
// amortized over two consecutive outer iterations.
//
// Complexity: a fresh search costs O(m²·n); the cached call is O(1).
func Lookahead() StrategyFactory {
	return func(sys *System, _ *rand.Rand) (Strategy, error) {
		return &lookaheadStrategy{sys: sys}, nil
	}
}

type lookaheadStrategy struct {
	sys    *System
	next   int  // cached second step of the best pair
	cached bool // whether next holds a value
}

func (s *lookaheadStrategy) SelectRow(xk []float64) (int, bool, error) {
	// Consume the cache: no computation on this call.
	if s.cached {
		s.cached = false

		return s.next, true, nil
	}

	if len(xk) != s.sys.Cols() {
		return 0, false, ErrDimensionMismatch
	}

	bestI, bestNext := -1, -1
	bestTwo := math.Inf(1) // residual norm after both projections
	bestOne := math.Inf(1) // residual norm after the first projection

	var ik int
	for ik = 0; ik < s.sys.Rows(); ik++ {
		// (a) iterate after projecting onto candidate ik.
		x1 := s.sys.project(xk, ik)
		r1, err := s.sys.residualAbs(x1)
		if err != nil {
			return 0, false, err
		}

		// (b) greedy continuation from x1.
		ik2 := argmax(r1)
		one := matrix.EuclideanNorm(r1)

		// (c) iterate after also projecting onto ik2.
		x2 := s.sys.project(x1, ik2)
		r2, err := s.sys.residualAbs(x2)
		if err != nil {
			return 0, false, err
		}
		two := matrix.EuclideanNorm(r2)

		// (d) lexicographic comparison: two-step norm first, one-step breaks ties.
		if two < bestTwo || (two == bestTwo && one < bestOne) {
			bestI, bestNext = ik, ik2
			bestTwo, bestOne = two, one
		}
	}

	s.next = bestNext
	s.cached = true

	return bestI, true, nil
}
