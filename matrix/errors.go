// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where len(x) != A.Cols, or ragged rows in NewDenseFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyData signals that a non-empty sample was required (Quantile on
	// an empty distance distribution).
	ErrEmptyData = errors.New("matrix: empty data")

	// ErrBadQuantile signals a quantile parameter outside the closed [0,1] range.
	ErrBadQuantile = errors.New("matrix: quantile must be within [0,1]")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (quantile input, tolerant comparison operands).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
