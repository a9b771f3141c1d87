// Package kaczmarz implements the Kaczmarz family of iterative algorithms for
// solving (possibly inconsistent or corrupted) linear systems A·x = b by
// repeatedly projecting an iterate onto the hyperplane of one equation at a
// time.
//
// The heart of the package is the row-selection layer: at every iteration the
// solver asks a pluggable Strategy which equation to project onto next, and
// different policies yield dramatically different convergence behavior,
// robustness to corrupted equations, and per-step cost.
//
// Strategies:
//
//   - Cyclic: deterministic round-robin over all rows (Kaczmarz, 1937).
//   - MaxDistance: greedy largest-residual row, a.k.a. Motzkin's method.
//   - Lookahead: two-step greedy search with a one-slot cache that amortizes
//     the second step over consecutive iterations.
//   - Random / UniformRandom / SVRandom: sampling from a fixed distribution;
//     SVRandom weights rows by squared norm (Strohmer–Vershynin, 2009).
//   - Quantile / SampledQuantile / WindowedQuantile: wrap a Random sampler
//     with an outlier-rejection test against a quantile of residual
//     distances, for systems where a minority of equations is corrupted.
//   - RandomOrthoGraph: restricts sampling to rows plausibly still violated,
//     tracked through the orthogonality graph A·Aᵀ (Nutini et al., 2016).
//
// Design principles:
//
//   - Deterministic: every stochastic strategy draws from an explicit seeded
//     RNG (WithSeed); no global randomness, no time-based sources.
//   - Strict sentinels: all failures surface as errors from types.go,
//     matched via errors.Is; a strategy's "skip this iteration" outcome is
//     NOT an error but an explicit (index, ok) result.
//   - Single-threaded by contract: a Solver and its Strategy assume strict
//     sequential access; use one Solver per goroutine.
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
//	s, _ := kaczmarz.NewSolver(A, []float64{1, 1}, kaczmarz.Cyclic())
//	res, _ := s.Solve()
//	fmt.Println(res.X) // [1 1]
//
// See the examples in this package for quantile-based corruption filtering
// and step-by-step iteration.
package kaczmarz
