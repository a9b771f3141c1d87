package kaczmarz_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kaczmarz"
	"github.com/stretchr/testify/require"
)

// weighter is implemented by the sampling strategies and exposes the
// normalized distribution they draw from.
type weighter interface {
	Weights() []float64
}

func TestUniformRandom_EmpiricalFrequencies(t *testing.T) {
	sys := newSystem(t,
		[][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
		[]float64{1, 2, 3, 4}, nil)

	st, err := kaczmarz.UniformRandom()(sys, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	const draws = 20000
	counts := make([]int, sys.Rows())
	x := []float64{0, 0, 0, 0}
	for k := 0; k < draws; k++ {
		ik, ok, serr := st.SelectRow(x)
		require.NoError(t, serr)
		require.True(t, ok)
		counts[ik]++
	}

	// Each row should land near 1/4 of the draws.
	for i, c := range counts {
		freq := float64(c) / draws
		require.InDelta(t, 0.25, freq, 0.03, "row %d", i)
	}
}

func TestRandom_HonorsFixedDistribution(t *testing.T) {
	sys := newSystem(t,
		[][]float64{{1, 0}, {0, 1}},
		[]float64{1, 1}, nil)

	// A delta distribution makes the draw deterministic.
	st, err := kaczmarz.Random([]float64{0, 1})(sys, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for k := 0; k < 25; k++ {
		ik, ok, serr := st.SelectRow([]float64{0, 0})
		require.NoError(t, serr)
		require.True(t, ok)
		require.Equal(t, 1, ik)
	}
}

func TestRandom_NormalizesWeights(t *testing.T) {
	sys := newSystem(t,
		[][]float64{{1, 0}, {0, 1}},
		[]float64{1, 1}, nil)

	st, err := kaczmarz.Random([]float64{2, 6})(sys, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	w, ok := st.(weighter)
	require.True(t, ok)
	require.Equal(t, []float64{0.25, 0.75}, w.Weights())
}

func TestRandom_RejectsBadDistributions(t *testing.T) {
	sys := newSystem(t,
		[][]float64{{1, 0}, {0, 1}},
		[]float64{1, 1}, nil)

	cases := []struct {
		name string
		p    []float64
	}{
		{name: "wrong length", p: []float64{1, 2, 3}},
		{name: "negative mass", p: []float64{0.5, -0.5}},
		{name: "zero sum", p: []float64{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kaczmarz.Random(tc.p)(sys, rand.New(rand.NewSource(1)))
			require.ErrorIs(t, err, kaczmarz.ErrBadDistribution)
		})
	}
}

func TestSVRandom_WeightsProportionalToSquaredNorms(t *testing.T) {
	// Row norms 1 and 2 → squared norms 1 and 4 → weights 0.2 and 0.8.
	sys := newSystem(t,
		[][]float64{{1, 0}, {0, 2}},
		[]float64{1, 1}, nil)

	st, err := kaczmarz.SVRandom()(sys, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	w, ok := st.(weighter)
	require.True(t, ok)
	require.Equal(t, []float64{0.2, 0.8}, w.Weights())
}

func TestSVRandom_FavorsHeavyRows(t *testing.T) {
	sys := newSystem(t,
		[][]float64{{1, 0}, {0, 3}},
		[]float64{1, 1}, nil)

	st, err := kaczmarz.SVRandom()(sys, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	const draws = 20000
	var heavy int
	for k := 0; k < draws; k++ {
		ik, ok, serr := st.SelectRow([]float64{0, 0})
		require.NoError(t, serr)
		require.True(t, ok)
		if ik == 1 {
			heavy++
		}
	}
	// Expected frequency 9/10.
	require.InDelta(t, 0.9, float64(heavy)/draws, 0.03)
}
