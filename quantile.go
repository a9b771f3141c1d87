// Package kaczmarz - the Quantile family: outlier rejection on top of a
// fixed-distribution sampler.
//
// Intended for corrupted systems: when a minority of equations is
// inconsistent with the rest, corrupted rows tend to produce residuals that
// are outliers relative to the bulk distribution. Rejecting proposals whose
// residual distance exceeds a high quantile of the distance distribution
// filters corrupted equations out probabilistically over many iterations.
//
// Composition, not inheritance: a quantile strategy OWNS a Random sampler
// and delegates the draw to it; the "which distance distribution" extension
// point (full residual / random subsample / sliding window) is an explicit
// hook, so the three variants share one accept/reject implementation.
//
// Per call:
//  1. Draw a candidate ik via the wrapped sampler.
//  2. Compute distance(x, ik) = |b[ik] − A[ik]·x|; the windowed variant
//     records it before the decision.
//  3. Threshold = the configured quantile of the hook's distance
//     distribution.
//  4. Accept when distance < threshold or the two are equal within
//     tolerance (matrix.WithinEps); otherwise skip — no projection this
//     iteration, and no error.

package kaczmarz

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/kaczmarz/matrix"
)

// Quantile wraps the Random(p) sampler with a rejection test against the
// q-th quantile of the full residual distribution |b − A·x| (recomputed
// every call — one matrix-vector product). q must lie in [0,1]; the default
// of 1.0 never rejects, making the strategy equivalent in acceptance
// behavior to Random(p) alone.
func Quantile(p []float64, q float64) StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		return newQuantileStrategy(sys, p, q, rng, nil, 0)
	}
}

// SampledQuantile thresholds against distances from a uniformly-random
// subset of nSamples rows, drawn fresh each call without replacement —
// trading threshold accuracy for a cheaper per-iteration cost than the full
// residual. nSamples == 0 selects the default of all m rows; values outside
// 1..m fail with ErrBadSampleCount.
func SampledQuantile(p []float64, q float64, nSamples int) StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		m := sys.Rows()
		if nSamples == 0 {
			nSamples = m
		}
		if nSamples < 1 || nSamples > m {
			return nil, ErrBadSampleCount
		}

		return newQuantileStrategy(sys, p, q, rng, nil, nSamples)
	}
}

// WindowedQuantile thresholds against the most recent windowSize distances
// actually computed by the accept test across past calls — a fixed-capacity
// FIFO of scalars, oldest evicted when full. The threshold adapts online
// using only values already computed as a byproduct of normal operation: no
// extra matrix-vector work versus the wrapped Random policy alone.
// windowSize == 0 selects the default of m; negative values fail with
// ErrBadWindowSize.
func WindowedQuantile(p []float64, q float64, windowSize int) StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		if windowSize < 0 {
			return nil, ErrBadWindowSize
		}
		if windowSize == 0 {
			windowSize = sys.Rows()
		}

		return newQuantileStrategy(sys, p, q, rng, newDistanceWindow(windowSize), 0)
	}
}

// quantileStrategy is the shared accept/reject core of the family.
type quantileStrategy struct {
	sys  *System
	pick *randomStrategy // owned fixed-distribution sampler
	q    float64

	// thresholds is the distance-distribution hook: full residual by
	// default, overridden by the sampled and windowed variants.
	thresholds func(xk []float64) ([]float64, error)

	window *distanceWindow // non-nil only for the windowed variant
}

// newQuantileStrategy validates q, builds the owned sampler and wires the
// distance-distribution hook. Exactly one of window / nSamples is set by the
// variant constructors (both zero selects the full-residual default).
func newQuantileStrategy(sys *System, p []float64, q float64, rng *rand.Rand, window *distanceWindow, nSamples int) (*quantileStrategy, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return nil, ErrBadQuantile
	}
	w, err := normalizeWeights(p, sys.Rows())
	if err != nil {
		return nil, err
	}

	qs := &quantileStrategy{
		sys:    sys,
		pick:   newRandomStrategy(w, rng),
		q:      q,
		window: window,
	}

	switch {
	case window != nil:
		// Sliding window of past distances; push happens in SelectRow
		// before this hook runs, so the snapshot is never empty.
		qs.thresholds = func(_ []float64) ([]float64, error) {
			return window.snapshot(), nil
		}
	case nSamples > 0:
		// Fresh uniform subsample each call, without replacement; reuses
		// the sampler's RNG so one seed drives the whole strategy.
		qs.thresholds = func(xk []float64) ([]float64, error) {
			if len(xk) != sys.Cols() {
				return nil, ErrDimensionMismatch
			}
			idxs := sampleWithoutReplacement(qs.pick.rng, sys.Rows(), nSamples)
			out := make([]float64, len(idxs))
			for i, ik := range idxs {
				out[i] = sys.distance(xk, ik)
			}

			return out, nil
		}
	default:
		qs.thresholds = qs.sys.residualAbs
	}

	return qs, nil
}

func (s *quantileStrategy) SelectRow(xk []float64) (int, bool, error) {
	if len(xk) != s.sys.Cols() {
		return 0, false, ErrDimensionMismatch
	}

	// Stage 1 - propose a candidate via the wrapped sampler.
	ik, ok, err := s.pick.SelectRow(xk)
	if err != nil || !ok {
		return ik, ok, err
	}

	// Stage 2 - the candidate's own distance; the windowed variant records
	// it BEFORE the threshold is computed, so the window always contains
	// the current value.
	d := s.sys.distance(xk, ik)
	if s.window != nil {
		s.window.push(d)
	}

	// Stage 3 - threshold from the configured distance distribution.
	dist, err := s.thresholds(xk)
	if err != nil {
		return 0, false, err
	}
	thr, err := matrix.Quantile(dist, s.q)
	if err != nil {
		return 0, false, err
	}

	// Stage 4 - accept at or below the threshold; equality is tested within
	// the standard closeness tolerance.
	if d < thr || matrix.WithinEps(d, thr) {
		return ik, true, nil
	}

	return 0, false, nil // skip: no projection this iteration
}

// Weights exposes the owned sampler's normalized distribution.
func (s *quantileStrategy) Weights() []float64 { return s.pick.Weights() }

// distanceWindow is a bounded ring buffer of the most recent distances:
// head indexes the oldest element, size grows to capacity and then the
// oldest is evicted on every push. No per-push allocation.
type distanceWindow struct {
	buf  []float64
	head int
	size int
}

func newDistanceWindow(capacity int) *distanceWindow {
	return &distanceWindow{buf: make([]float64, capacity)}
}

// push appends d, evicting the oldest value when the window is full.
func (w *distanceWindow) push(d float64) {
	capN := len(w.buf)
	if w.size < capN {
		w.buf[(w.head+w.size)%capN] = d
		w.size++

		return
	}
	w.buf[w.head] = d
	w.head = (w.head + 1) % capN
}

// snapshot returns the window contents oldest-first as an owned slice.
func (w *distanceWindow) snapshot() []float64 {
	out := make([]float64, w.size)
	capN := len(w.buf)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%capN]
	}

	return out
}
