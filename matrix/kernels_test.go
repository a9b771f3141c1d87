// Package matrix_test exercises the dense vector kernels: products, norms,
// residuals, Gram matrices and the interpolated quantile. Focus: exact values
// on small fixtures, strict sentinel errors, and operand immutability.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kaczmarz/matrix"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestMulVec_KnownValues(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MulVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)
}

func TestMulVec_ShapeErrors(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	_, err := matrix.MulVec(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowDot_KnownValues(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	d, err := matrix.RowDot(a, 1, []float64{2, 0.5})
	require.NoError(t, err)
	require.Equal(t, 8.0, d)

	_, err = matrix.RowDot(a, 2, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = matrix.RowDot(a, 0, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResidual_KnownValues(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	r, err := matrix.Residual(a, []float64{0.25, 0.5}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{0.75, 0.5}, r)

	_, err = matrix.Residual(a, []float64{0, 0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEuclideanNorm(t *testing.T) {
	require.Equal(t, 5.0, matrix.EuclideanNorm([]float64{3, 4}))
	require.Equal(t, 0.0, matrix.EuclideanNorm(nil))
}

func TestRowNorms(t *testing.T) {
	a := mustDense(t, [][]float64{{3, 4}, {0, 2}})
	norms, err := matrix.RowNorms(a)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 2}, norms)
}

func TestGram_IdentityAndSymmetry(t *testing.T) {
	// Orthonormal rows ⇒ G == I.
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	g, err := matrix.Gram(a)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 2, g.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, aerr := g.At(i, j)
			require.NoError(t, aerr)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}

	// Interacting rows produce symmetric non-zero couplings.
	b := mustDense(t, [][]float64{{1, 1}, {1, -1}, {0, 1}})
	g, err = matrix.Gram(b)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			vij, _ := g.At(i, j)
			vji, _ := g.At(j, i)
			require.Equal(t, vij, vji)
		}
	}
	v, _ := g.At(0, 1)
	require.Equal(t, 0.0, v) // rows 0 and 1 are orthogonal
	v, _ = g.At(0, 2)
	require.Equal(t, 1.0, v) // rows 0 and 2 interact
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	data := []float64{4, 1, 3, 2} // unsorted on purpose

	q, err := matrix.Quantile(data, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2.5, q)

	q, err = matrix.Quantile(data, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, q)

	q, err = matrix.Quantile(data, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, q)

	q, err = matrix.Quantile(data, 0.25)
	require.NoError(t, err)
	require.Equal(t, 1.75, q)

	// Input order must be preserved (sort happens on a copy).
	require.Equal(t, []float64{4, 1, 3, 2}, data)
}

func TestQuantile_SingleElement(t *testing.T) {
	q, err := matrix.Quantile([]float64{7}, 0.3)
	require.NoError(t, err)
	require.Equal(t, 7.0, q)
}

func TestQuantile_Errors(t *testing.T) {
	_, err := matrix.Quantile(nil, 0.5)
	require.ErrorIs(t, err, matrix.ErrEmptyData)

	_, err = matrix.Quantile([]float64{1}, -0.1)
	require.ErrorIs(t, err, matrix.ErrBadQuantile)
	_, err = matrix.Quantile([]float64{1}, 1.1)
	require.ErrorIs(t, err, matrix.ErrBadQuantile)
	_, err = matrix.Quantile([]float64{1}, math.NaN())
	require.ErrorIs(t, err, matrix.ErrBadQuantile)

	_, err = matrix.Quantile([]float64{1, math.NaN()}, 0.5)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestWithinEps(t *testing.T) {
	require.True(t, matrix.WithinEps(1.0, 1.0))
	require.True(t, matrix.WithinEps(1.0, 1.0+1e-9))
	require.False(t, matrix.WithinEps(1.0, 1.1))
	require.False(t, matrix.WithinEps(math.NaN(), math.NaN()))
	require.True(t, matrix.WithinEps(math.Inf(1), math.Inf(1)))
	require.False(t, matrix.WithinEps(math.Inf(1), 1.0))
}
