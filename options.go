// Package kaczmarz: functional configuration for the solver loop.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package kaczmarz

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultTolerance is the residual norm below which Solve declares
	// convergence: ‖b − A·x‖₂ ≤ tol.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations of 0 means no iteration budget: Solve runs until
	// the tolerance is met. Strategies that may skip every iteration (e.g.
	// Quantile with a very low quantile) should be paired with an explicit
	// budget to guarantee termination.
	DefaultMaxIterations = 0

	// DefaultSeed of 0 selects the package's fixed default RNG stream, so
	// unseeded runs are still reproducible.
	DefaultSeed int64 = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "kaczmarz: WithTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "kaczmarz: WithMaxIterations: n must be non-negative"
	panicNilCallback      = "kaczmarz: WithCallback: fn must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	x0       []float64                // initial iterate; nil ⇒ zero vector
	tol      float64                  // DefaultTolerance
	maxIter  int                      // DefaultMaxIterations; 0 ⇒ unbounded
	seed     int64                    // DefaultSeed; 0 ⇒ fixed default stream
	callback func(k int, x []float64) // optional per-iteration observer
}

// WithInitialGuess sets the initial iterate x0 (copied; the caller's slice is
// not retained). Length is validated against A.Cols at solver construction,
// not here, so the option stays reusable across systems.
func WithInitialGuess(x0 []float64) Option {
	cp := make([]float64, len(x0))
	copy(cp, x0)

	return func(o *Options) { o.x0 = cp }
}

// WithTolerance sets the residual norm tolerance used by Solve.
// Panics with a stable message when tol is NaN, infinite or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of outer-loop iterations (skips included).
// n == 0 keeps the loop unbounded. Panics on negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSeed fixes the RNG seed for every stochastic strategy attached to the
// solver. seed == 0 selects the fixed default stream (still deterministic).
// Same seed ⇒ identical selection sequences across runs and platforms.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithCallback registers an observer invoked after every iteration with the
// 1-based iteration count and a copy of the current iterate. The callback is
// the package's observation surface; it must not block for long, since it
// runs synchronously inside the solve loop.
func WithCallback(fn func(k int, x []float64)) Option {
	if fn == nil {
		panic(panicNilCallback)
	}

	return func(o *Options) { o.callback = fn }
}

// DefaultOptions returns the documented defaults (single source of truth).
// Use this as a starting point for further functional-option overrides.
func DefaultOptions() Options {
	return Options{
		x0:      nil, // zero vector, sized at solver construction
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		seed:    DefaultSeed,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry; prefer it over ad-hoc defaulting.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
