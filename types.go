// Package kaczmarz: sentinel error set and result types.
// This file defines ONLY package-level sentinel errors and the Result value
// returned by Solver.Solve. All entry points MUST return these sentinels and
// tests MUST check them via errors.Is. Panics are reserved for programmer
// errors in option constructors.

package kaczmarz

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "kaczmarz: ..." for consistency and to allow
// easy grepping across logs. When context is essential (e.g. a row index),
// wrap with fmt.Errorf("%w: row %d", ErrX, i) — callers still match via
// errors.Is.

var (
	// ErrNilMatrix indicates that a nil *matrix.Dense was passed as the system matrix.
	ErrNilMatrix = errors.New("kaczmarz: matrix is nil")

	// ErrNilStrategy indicates that a nil StrategyFactory was passed to NewSolver.
	ErrNilStrategy = errors.New("kaczmarz: strategy factory is nil")

	// ErrDimensionMismatch indicates incompatible dimensions between A, b or an
	// iterate: len(b) must equal A.Rows and every iterate must have A.Cols entries.
	ErrDimensionMismatch = errors.New("kaczmarz: dimension mismatch")

	// ErrBadInitialGuess indicates that the supplied initial iterate does not
	// have exactly A.Cols entries.
	ErrBadInitialGuess = errors.New("kaczmarz: initial guess length must equal column count")

	// ErrRowOutOfRange indicates a row index outside [0, m).
	ErrRowOutOfRange = errors.New("kaczmarz: row index out of range")

	// ErrZeroRowNorm indicates that a row of A has zero Euclidean norm.
	// Projection onto such a row is undefined (division by ‖A[i]‖²), so the
	// system is rejected at construction.
	ErrZeroRowNorm = errors.New("kaczmarz: zero-norm row")

	// ErrZeroRowNorms indicates that every row of A has zero norm, which
	// makes the squared-row-norm sampling distribution of SVRandom undefined.
	// The documented policy is an explicit construction-time failure; there is
	// no silent fallback to uniform sampling.
	ErrZeroRowNorms = errors.New("kaczmarz: all row norms are zero")

	// ErrBadDistribution indicates an invalid sampling distribution: wrong
	// length, a negative or non-finite weight, or weights summing to zero
	// (including the mass restricted to the selectable set vanishing).
	ErrBadDistribution = errors.New("kaczmarz: invalid sampling distribution")

	// ErrBadQuantile indicates a rejection quantile outside the closed [0,1] range.
	ErrBadQuantile = errors.New("kaczmarz: quantile must be within [0,1]")

	// ErrBadSampleCount indicates an n_samples parameter outside 1..m for
	// SampledQuantile (0 selects the default of all m rows).
	ErrBadSampleCount = errors.New("kaczmarz: sample count must be between 1 and row count")

	// ErrBadWindowSize indicates a negative window size for WindowedQuantile
	// (0 selects the default of m).
	ErrBadWindowSize = errors.New("kaczmarz: window size must be non-negative")

	// ErrNoSelectableRows is returned by RandomOrthoGraph when the selectable
	// set is empty: every row is presumed satisfied, yet another selection was
	// requested. Callers should treat convergence before reaching this path.
	ErrNoSelectableRows = errors.New("kaczmarz: no selectable rows")
)

// Result holds the outcome of Solver.Solve.
type Result struct {
	// X is the final iterate.
	X []float64

	// Residual is ‖b − A·X‖₂ at termination.
	Residual float64

	// Iterations is the number of outer-loop iterations performed,
	// including iterations the strategy chose to skip.
	Iterations int

	// Converged reports whether the residual tolerance was met
	// (as opposed to stopping on the iteration budget).
	Converged bool
}
