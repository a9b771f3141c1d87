package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kaczmarz/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, 0.0, v)
		}
	}
}

func TestNewDenseFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	// Mutating the source must not leak into the matrix.
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNewDenseFromRows_RejectsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewDenseFromRows_RejectsEmpty(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_RowViewAndCopy(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	cp, err := m.RowCopy(1)
	require.NoError(t, err)
	cp[0] = -1 // owned copy; the matrix must be unaffected
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
