// Package kaczmarz - the outer iteration driver.
//
// Solver owns the running iterate and the iteration loop; the choice of row
// is delegated to the attached Strategy, the projection itself to
// System.UpdateIterate. The loop contract is strict: the strategy is invoked
// exactly once per outer iteration (never speculatively), then the projection
// is applied — or skipped when the strategy says so — and the convergence
// check runs.
//
// Concurrency: a Solver is single-threaded by contract. All mutable state
// (iterate, iteration counter, strategy-local state) assumes one sequential
// caller; create one Solver per goroutine if you need parallel solves.

package kaczmarz

import (
	"github.com/katalvlaran/kaczmarz/matrix"
)

// Solver runs the Kaczmarz iteration for one System under one Strategy.
type Solver struct {
	sys   *System
	strat Strategy
	opt   Options

	x    []float64 // current iterate, owned exclusively by the Solver
	iter int       // outer-loop iterations performed (skips included)
}

// NewSolver validates the problem data, resolves options, seeds the RNG and
// constructs the strategy against the frozen System.
//
// Validation order: options are resolved first (panics on programmer error),
// then the System is built (shape/finiteness/zero-row checks), then the
// strategy factory runs (distribution/parameter checks).
//
// Complexity: O(m·n) for system construction; RandomOrthoGraph adds the
// O(m²·n) Gram precomputation inside its factory.
func NewSolver(a *matrix.Dense, b []float64, strategy StrategyFactory, opts ...Option) (*Solver, error) {
	// Stage 1 - resolve configuration.
	opt := gatherOptions(opts...)

	if strategy == nil {
		return nil, ErrNilStrategy
	}

	// Stage 2 - freeze the problem data.
	sys, err := NewSystem(a, b, opt.x0)
	if err != nil {
		return nil, err
	}

	// Stage 3 - build the strategy with an explicit deterministic RNG.
	strat, err := strategy(sys, rngFromSeed(opt.seed))
	if err != nil {
		return nil, err
	}

	return &Solver{
		sys:   sys,
		strat: strat,
		opt:   opt,
		x:     sys.InitialGuess(),
	}, nil
}

// System returns the frozen problem data shared with the strategy.
func (s *Solver) System() *System { return s.sys }

// X returns a copy of the current iterate.
func (s *Solver) X() []float64 {
	cp := make([]float64, len(s.x))
	copy(cp, s.x)

	return cp
}

// Iterations returns the number of outer-loop iterations performed so far,
// including iterations the strategy chose to skip.
func (s *Solver) Iterations() int { return s.iter }

// Residual returns ‖b − A·x‖₂ for the current iterate.
// Complexity: O(m·n).
func (s *Solver) Residual() float64 {
	r, _ := s.sys.residualAbs(s.x) // iterate length is maintained internally
	return matrix.EuclideanNorm(r)
}

// Iterate performs exactly one outer-loop step: ask the strategy for a row,
// project onto it (or do nothing on a skip), then notify the callback.
// skipped reports whether the strategy declined to project this iteration —
// a valid outcome for the quantile family, not an error.
func (s *Solver) Iterate() (skipped bool, err error) {
	ik, ok, err := s.strat.SelectRow(s.x)
	if err != nil {
		return false, err
	}

	s.iter++
	if ok {
		if ik < 0 || ik >= s.sys.Rows() {
			return false, ErrRowOutOfRange
		}
		s.x = s.sys.project(s.x, ik)
	}

	if s.opt.callback != nil {
		s.opt.callback(s.iter, s.X())
	}

	return !ok, nil
}

// Solve runs the iteration loop until the residual tolerance is met or the
// iteration budget (WithMaxIterations) is spent.
//
// Termination:
//   - Converged=true  when ‖b − A·x‖₂ ≤ tol (checked before every step, so a
//     satisfied initial iterate solves in zero iterations).
//   - Converged=false when the budget runs out first.
//   - An error from the strategy (e.g. ErrNoSelectableRows) aborts the loop.
//
// With an unbounded budget (the default) and a strategy that can skip every
// iteration, Solve may not terminate; pair such strategies with
// WithMaxIterations.
func (s *Solver) Solve() (Result, error) {
	for {
		res := s.Residual()
		if res <= s.opt.tol {
			return Result{X: s.X(), Residual: res, Iterations: s.iter, Converged: true}, nil
		}
		if s.opt.maxIter > 0 && s.iter >= s.opt.maxIter {
			return Result{X: s.X(), Residual: res, Iterations: s.iter, Converged: false}, nil
		}

		if _, err := s.Iterate(); err != nil {
			return Result{}, err
		}
	}
}
