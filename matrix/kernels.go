// Package matrix: vector kernels shared by the solver core.
//
// Purpose:
//   - Declare the canonical dense kernels (matrix-vector product, row dot
//     products, residuals, norms, Gram matrix, interpolated quantile).
//   - Define the numeric policy constants used for tolerant comparisons.
//
// Design principles:
//   - Deterministic: fixed loop orders, no data-dependent reordering.
//   - Strict sentinels: only errors from errors.go; fail fast on shape issues.
//   - Hot-path discipline: single result allocation per kernel, no temps
//     beyond scalars in inner loops; operands are never mutated.

package matrix

import (
	"math"
	"slices"
)

// Numeric policy (single source of truth).
const (
	// DefaultEpsilon is the non-negative tolerance used by structural zero
	// tests (e.g. deciding whether a Gram entry couples two rows).
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance of WithinEps.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute tolerance of WithinEps.
	DefaultAbsTol = 1e-8
)

// WithinEps reports whether a and b are equal within the package tolerance:
//
//	|a − b| ≤ DefaultAbsTol + DefaultRelTol·|b|
//
// The asymmetric form (scaled by |b|) matches the reference comparison used
// throughout the solver's accept/reject boundaries. NaN operands never
// compare equal; infinities compare equal only to themselves.
// Complexity: O(1).
func WithinEps(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= DefaultAbsTol+DefaultRelTol*math.Abs(b)
}

// MulVec computes y = A·x for a Dense A and a vector x.
// Stage 1 (Validate): A non-nil, len(x) == A.Cols.
// Stage 2 (Execute): one dot product per row, fixed i→j order.
// Complexity: O(r*c) time, O(r) space.
func MulVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrInvalidDimensions
	}
	if len(x) != a.c {
		return nil, ErrDimensionMismatch
	}

	y := make([]float64, a.r)
	var i, j int
	var sum float64
	for i = 0; i < a.r; i++ {
		sum = 0
		row := a.data[i*a.c : (i+1)*a.c]
		for j = 0; j < a.c; j++ {
			sum += row[j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// RowDot computes the dot product A[i]·x of one row with a vector.
// Complexity: O(c) time, O(1) space.
func RowDot(a *Dense, i int, x []float64) (float64, error) {
	if a == nil {
		return 0, ErrInvalidDimensions
	}
	if i < 0 || i >= a.r {
		return 0, ErrIndexOutOfBounds
	}
	if len(x) != a.c {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	row := a.data[i*a.c : (i+1)*a.c]
	for j, v := range row {
		sum += v * x[j]
	}

	return sum, nil
}

// Residual computes r = b − A·x, the per-row violation of the iterate x.
// Stage 1 (Validate): shapes of A, b and x must agree.
// Stage 2 (Execute): MulVec then a single subtraction pass.
// Complexity: O(r*c) time, O(r) space.
func Residual(a *Dense, x, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrInvalidDimensions
	}
	if len(b) != a.r {
		return nil, ErrDimensionMismatch
	}
	ax, err := MulVec(a, x)
	if err != nil {
		return nil, err
	}
	for i, v := range ax {
		ax[i] = b[i] - v // reuse the product buffer; no extra allocation
	}

	return ax, nil
}

// EuclideanNorm returns ‖v‖₂.
// Complexity: O(n) time, O(1) space.
func EuclideanNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// RowNorms returns the Euclidean norm of every row of A.
// Complexity: O(r*c) time, O(r) space.
func RowNorms(a *Dense) ([]float64, error) {
	if a == nil {
		return nil, ErrInvalidDimensions
	}

	norms := make([]float64, a.r)
	var i int
	for i = 0; i < a.r; i++ {
		norms[i] = EuclideanNorm(a.data[i*a.c : (i+1)*a.c])
	}

	return norms, nil
}

// Gram computes G = A·Aᵀ, the m×m matrix of pairwise row dot products.
// G[i][j] ≠ 0 means rows i and j are non-orthogonal. G is symmetric, so only
// the upper triangle is computed and mirrored.
// Complexity: O(r²·c) time, O(r²) space.
func Gram(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrInvalidDimensions
	}

	g, err := NewDense(a.r, a.r)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var sum float64
	for i = 0; i < a.r; i++ {
		ri := a.data[i*a.c : (i+1)*a.c]
		for j = i; j < a.r; j++ {
			rj := a.data[j*a.c : (j+1)*a.c]
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += ri[k] * rj[k]
			}
			g.data[i*a.r+j] = sum
			g.data[j*a.r+i] = sum // mirror into the lower triangle
		}
	}

	return g, nil
}

// Quantile returns the q-th quantile of data using linear interpolation
// between adjacent order statistics (the "linear" method):
//
//	h = q·(n−1);  result = x_⌊h⌋ + (h − ⌊h⌋)·(x_⌊h⌋₊₁ − x_⌊h⌋)
//
// where x is the ascending sort of data. q=0 yields the minimum, q=1 the
// maximum. The input slice is not mutated.
//
// Errors:
//   - ErrEmptyData when len(data) == 0.
//   - ErrBadQuantile when q ∉ [0,1] or q is NaN.
//   - ErrNaNInf when data contains NaN (quantiles of NaN data are undefined).
//
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func Quantile(data []float64, q float64) (float64, error) {
	// Stage 1 - validation.
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, ErrBadQuantile
	}
	for _, v := range data {
		if math.IsNaN(v) {
			return 0, ErrNaNInf
		}
	}

	// Stage 2 - sort an owned copy; the caller's slice stays untouched.
	sorted := make([]float64, len(data))
	copy(sorted, data)
	slices.Sort(sorted)

	// Stage 3 - interpolate between the two bracketing order statistics.
	n := len(sorted)
	if n == 1 {
		return sorted[0], nil
	}
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1], nil
	}
	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}
