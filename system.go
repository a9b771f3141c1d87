// Package kaczmarz - the linear system owned by a solver.
//
// System bundles the immutable problem data (A, b, precomputed row norms,
// initial iterate) and the row projection primitive every strategy builds on.
// A System is computed once at construction and never mutated afterwards, so
// it may be read concurrently by multiple strategies within one solve; the
// iterate itself is owned by the Solver and is NOT part of the System.

package kaczmarz

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kaczmarz/matrix"
)

// System is the immutable problem data of a solve: the m×n matrix A, the
// right-hand side b, the Euclidean norm of every row, and the initial
// iterate x0 (zeros unless overridden).
type System struct {
	a        *matrix.Dense
	b        []float64
	rowNorms []float64
	x0       []float64
}

// NewSystem validates and freezes the problem data.
//
// Preconditions and validation (in order):
//  1. a must be non-nil (ErrNilMatrix).
//  2. len(b) must equal a.Rows (ErrDimensionMismatch).
//  3. x0, when non-nil, must have a.Cols entries (ErrBadInitialGuess);
//     nil x0 selects the zero vector.
//  4. Every row must have a positive Euclidean norm (ErrZeroRowNorm, wrapped
//     with the offending row index) — projection divides by ‖A[i]‖².
//  5. All entries of A, b and x0 must be finite (matrix.ErrNaNInf forwarded).
//
// b and x0 are copied; the caller's slices are not retained.
//
// Complexity: O(m·n) time for the row-norm precomputation.
func NewSystem(a *matrix.Dense, b, x0 []float64) (*System, error) {
	// Stage 1 - shape validation.
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(b) != a.Rows() {
		return nil, ErrDimensionMismatch
	}
	if x0 != nil && len(x0) != a.Cols() {
		return nil, ErrBadInitialGuess
	}

	// Stage 2 - finite-value validation (fail fast, before any allocation
	// beyond the norms).
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		row, _ := a.Row(i)
		for j = range row {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return nil, fmt.Errorf("%w: A[%d][%d]", matrix.ErrNaNInf, i, j)
			}
		}
	}
	for i = range b {
		if math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return nil, fmt.Errorf("%w: b[%d]", matrix.ErrNaNInf, i)
		}
	}
	for i = range x0 {
		if math.IsNaN(x0[i]) || math.IsInf(x0[i], 0) {
			return nil, fmt.Errorf("%w: x0[%d]", matrix.ErrNaNInf, i)
		}
	}

	// Stage 3 - precompute row norms once; reject degenerate rows.
	norms, err := matrix.RowNorms(a)
	if err != nil {
		return nil, err
	}
	for i, n := range norms {
		if n == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrZeroRowNorm, i)
		}
	}

	// Stage 4 - freeze owned copies.
	bc := make([]float64, len(b))
	copy(bc, b)
	x0c := make([]float64, a.Cols())
	copy(x0c, x0) // nil x0 leaves the zero vector

	return &System{a: a.Clone(), b: bc, rowNorms: norms, x0: x0c}, nil
}

// Rows returns m, the number of equations.
func (s *System) Rows() int { return s.a.Rows() }

// Cols returns n, the number of unknowns.
func (s *System) Cols() int { return s.a.Cols() }

// Matrix returns the system matrix. Callers MUST NOT mutate it.
func (s *System) Matrix() *matrix.Dense { return s.a }

// RightHandSide returns b. Callers MUST NOT mutate the returned slice.
func (s *System) RightHandSide() []float64 { return s.b }

// RowNorms returns the precomputed Euclidean row norms.
// Callers MUST NOT mutate the returned slice.
func (s *System) RowNorms() []float64 { return s.rowNorms }

// InitialGuess returns an owned copy of x0.
func (s *System) InitialGuess() []float64 {
	cp := make([]float64, len(s.x0))
	copy(cp, s.x0)

	return cp
}

// UpdateIterate applies one orthogonal projection step: the returned vector
// is the unique closest point to x on the hyperplane A[i]·x = b[i]:
//
//	x' = x + ((b[i] − A[i]·x) / ‖A[i]‖²) · A[i]
//
// x is not mutated; a fresh slice is returned.
//
// Errors:
//   - ErrRowOutOfRange when i ∉ [0, m).
//   - ErrDimensionMismatch when len(x) != n.
//
// Complexity: O(n) time and space.
func (s *System) UpdateIterate(x []float64, i int) ([]float64, error) {
	if i < 0 || i >= s.a.Rows() {
		return nil, fmt.Errorf("%w: row %d", ErrRowOutOfRange, i)
	}
	if len(x) != s.a.Cols() {
		return nil, ErrDimensionMismatch
	}

	return s.project(x, i), nil
}

// project is the unchecked projection kernel behind UpdateIterate.
// Callers guarantee 0 ≤ i < m and len(x) == n.
func (s *System) project(x []float64, i int) []float64 {
	row, _ := s.a.Row(i)

	var dot float64
	for j, v := range row {
		dot += v * x[j]
	}
	scale := (s.b[i] - dot) / (s.rowNorms[i] * s.rowNorms[i])

	out := make([]float64, len(x))
	for j := range x {
		out[j] = x[j] + scale*row[j]
	}

	return out
}

// distance is the per-row residual magnitude |b[i] − A[i]·x| used by the
// quantile family's accept/reject test. Unchecked hot-path helper.
func (s *System) distance(x []float64, i int) float64 {
	row, _ := s.a.Row(i)

	var dot float64
	for j, v := range row {
		dot += v * x[j]
	}

	return math.Abs(s.b[i] - dot)
}

// residualAbs returns |b − A·x| over all rows.
// Complexity: O(m·n) time, O(m) space — the dominant per-iteration cost of
// the greedy strategies and the full-residual quantile threshold.
func (s *System) residualAbs(x []float64) ([]float64, error) {
	r, err := matrix.Residual(s.a, x, s.b)
	if err != nil {
		return nil, ErrDimensionMismatch
	}
	for i, v := range r {
		r[i] = math.Abs(v)
	}

	return r, nil
}
