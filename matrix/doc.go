// Package matrix offers the dense linear-algebra primitives consumed by the
// kaczmarz solver core.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with strict, fail-fast indexing.
//   - Vector kernels: MulVec, RowDot, Residual, EuclideanNorm, RowNorms.
//   - Gram for the A·Aᵀ product (the orthogonality structure of a system).
//   - Quantile with linear interpolation between order statistics.
//   - WithinEps, a tolerant floating-point equality check.
//
// Dense storage is best for the small-to-medium systems the solver targets,
// where O(m·n) memory and cache-friendly row access are acceptable.
//
// All functions validate their inputs and return sentinel errors from
// errors.go; none of them mutates its operands.
package matrix
