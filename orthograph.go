// Package kaczmarz - graph-constrained sampling over the orthogonality
// structure of the system.
//
// Projecting onto an already-satisfied row that is orthogonal to everything
// unsatisfied wastes an iteration. RandomOrthoGraph therefore restricts
// sampling to a dynamic "selectable" set of rows that are plausibly still
// violated, using the sparsity structure of G = A·Aᵀ as a cheap proxy:
// G[i][j] ≠ 0 means projecting onto row i can perturb satisfaction of row j.
//
// Lifecycle:
//   - Construction: G and the per-row neighbor lists are computed once; the
//     selectable set is seeded from the rows violated by the initial iterate.
//   - Per call: restrict and renormalize the sampling weights to the
//     selectable set, draw one row ik, then add every neighbor of ik to the
//     set (they may have become unsatisfied) and remove ik itself (presumed
//     satisfied right after projection). Set semantics: unions collapse
//     duplicates, removal is order-independent.

package kaczmarz

import (
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/kaczmarz/matrix"
)

// RandomOrthoGraph returns the orthogonality-graph policy of Nutini et al.
// p is the fixed sampling weight over all m rows (nil ⇒ uniform), validated
// like Random's; it is renormalized over the selectable subset at each draw.
//
// Construction cost: O(m²·n) for the Gram matrix plus O(m·n) for the initial
// violation scan. SelectRow fails with ErrNoSelectableRows once every row is
// presumed satisfied.
func RandomOrthoGraph(p []float64) StrategyFactory {
	return func(sys *System, rng *rand.Rand) (Strategy, error) {
		w, err := normalizeWeights(p, sys.Rows())
		if err != nil {
			return nil, err
		}
		if rng == nil {
			rng = rngFromSeed(0)
		}

		// Stage 1 - orthogonality graph G = A·Aᵀ, computed once.
		g, err := matrix.Gram(sys.Matrix())
		if err != nil {
			return nil, err
		}

		// Stage 2 - per-row neighbor lists: j is a neighbor of i when
		// G[i][j] is structurally non-zero. The diagonal is always non-zero
		// (‖A[i]‖² > 0), so i is its own neighbor; the update step removes
		// ik after the union, matching the set algebra of the method.
		m := sys.Rows()
		neighbors := make([][]int, m)
		var i, j int
		for i = 0; i < m; i++ {
			row, _ := g.Row(i)
			for j = 0; j < m; j++ {
				if math.Abs(row[j]) > matrix.DefaultEpsilon {
					neighbors[i] = append(neighbors[i], j)
				}
			}
		}

		// Stage 3 - seed the selectable set with the rows violated by x0.
		res, err := sys.residualAbs(sys.InitialGuess())
		if err != nil {
			return nil, err
		}
		selectable := make(map[int]struct{}, m)
		for i, r := range res {
			if r > matrix.DefaultEpsilon {
				selectable[i] = struct{}{}
			}
		}

		return &orthoGraphStrategy{
			rng:        rng,
			p:          w,
			neighbors:  neighbors,
			selectable: selectable,
		}, nil
	}
}

type orthoGraphStrategy struct {
	rng        *rand.Rand
	p          []float64        // normalized full-length weights
	neighbors  [][]int          // rows coupled through G, per row
	selectable map[int]struct{} // rows not known to be satisfied
}

func (s *orthoGraphStrategy) SelectRow(_ []float64) (int, bool, error) {
	// Stage 1 - materialize the selectable set in a stable order, so a
	// fixed seed yields an identical draw sequence regardless of map
	// iteration order.
	if len(s.selectable) == 0 {
		return 0, false, ErrNoSelectableRows
	}
	rows := make([]int, 0, len(s.selectable))
	for i := range s.selectable {
		rows = append(rows, i)
	}
	slices.Sort(rows)

	// Stage 2 - restrict and renormalize the weights to the selectable set.
	var total float64
	for _, i := range rows {
		total += s.p[i]
	}
	if total <= 0 {
		// All mass sits outside the selectable set; sampling is undefined.
		return 0, false, ErrBadDistribution
	}

	// Stage 3 - weighted draw within the restricted set. Zero-weight rows
	// are never returned; the last positive-weight candidate is the
	// fallback against FP round-off in the cumulative scan.
	u := s.rng.Float64() * total
	ik := -1
	last := -1
	var cum float64
	for _, i := range rows {
		if s.p[i] <= 0 {
			continue
		}
		cum += s.p[i]
		last = i
		if u < cum {
			ik = i

			break
		}
	}
	if ik < 0 {
		ik = last // total > 0 guarantees at least one positive weight
	}

	// Stage 4 - update the selectable set: neighbors of ik may have become
	// unsatisfied, ik itself is presumed satisfied after the projection.
	for _, j := range s.neighbors[ik] {
		s.selectable[j] = struct{}{}
	}
	delete(s.selectable, ik)

	return ik, true, nil
}
