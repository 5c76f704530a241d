// SPDX-License-Identifier: MIT
// Package desirability: multi-response optimization over fitted surfaces.

package desirability

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/doe/surface"
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// GridSearch scans a deterministic lattice over the box, sharded
	// across workers. Accuracy is set by GridResolution.
	GridSearch Strategy = iota

	// PatternSearch runs a compass search with step halving from the box
	// center. Cheaper than a dense grid in higher dimensions.
	PatternSearch
)

// DefaultGridResolution is the per-axis lattice size for GridSearch.
const DefaultGridResolution = 11

// DefaultMaxEvaluations bounds objective evaluations per Optimize call.
const DefaultMaxEvaluations = 200_000

// patternStepTol stops the compass search once every step has shrunk
// below this fraction of its axis range.
const patternStepTol = 1e-6

// SearchSpace is the coded-unit box to search, one bound pair per factor.
type SearchSpace struct {
	Min, Max []float64
}

func (s SearchSpace) validate(k int) error {
	if len(s.Min) != k || len(s.Max) != k {
		return ErrBadSpace
	}
	for i := 0; i < k; i++ {
		if math.IsNaN(s.Min[i]) || math.IsNaN(s.Max[i]) || s.Min[i] >= s.Max[i] {
			return ErrBadSpace
		}
	}

	return nil
}

// Options configures Optimize.
//
// Fields:
//   - Strategy       — GridSearch (default) or PatternSearch.
//   - GridResolution — lattice points per axis for GridSearch; 0 selects
//     DefaultGridResolution, values below 2 are rejected.
//   - MaxEvaluations — hard budget of objective evaluations; 0 selects
//     DefaultMaxEvaluations.
//   - Workers        — grid shard count; 0 selects runtime.NumCPU().
//     The result is identical for any worker count.
type Options struct {
	Strategy       Strategy
	GridResolution int
	MaxEvaluations int
	Workers        int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:       GridSearch,
		GridResolution: DefaultGridResolution,
		MaxEvaluations: DefaultMaxEvaluations,
		Workers:        runtime.NumCPU(),
	}
}

func (o Options) resolution() (int, error) {
	if o.GridResolution == 0 {
		return DefaultGridResolution, nil
	}
	if o.GridResolution < 2 {
		return 0, ErrBadResolution
	}

	return o.GridResolution, nil
}

func (o Options) budget() int {
	if o.MaxEvaluations <= 0 {
		return DefaultMaxEvaluations
	}

	return o.MaxEvaluations
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}

	return o.Workers
}

// Result is the best point found by Optimize.
type Result struct {
	// Point is the coded-unit location of the optimum.
	Point []float64

	// Desirability is the overall weighted geometric mean at Point.
	Desirability float64

	// Predicted maps response name → fitted model prediction at Point.
	Predicted map[string]float64

	// PerResponse maps response name → individual desirability at Point.
	PerResponse map[string]float64

	// Evaluations is the number of objective evaluations spent.
	Evaluations int
}

// objective binds models and profiles into one evaluation.
type objective struct {
	models   []*surface.Model
	profiles []Profile
}

// eval computes the overall desirability at x. Per-point buffers are
// caller-owned so parallel shards do not share state.
func (ob *objective) eval(x, values []float64) (float64, error) {
	var (
		y   float64
		err error
	)
	for i, m := range ob.models {
		y, err = m.Predict(x)
		if err != nil {
			return 0, err
		}
		values[i] = ob.profiles[i].Value(y)
	}

	return Overall(values, ob.profiles), nil
}

// Optimize locates the coded-unit point maximizing the overall
// desirability of the fitted response models.
//
// Implementation:
//   - GridSearch: a deterministic lattice of resolution^k points, split
//     into contiguous flat-index shards, one errgroup goroutine each;
//     shards reduce to a local best, the merge takes the global max and
//     breaks ties by the lowest flat index, so parallel and serial runs
//     agree bit-for-bit.
//   - PatternSearch: compass search from the box center; per round all
//     2k axis neighbors (clamped to the box) are scored, the best
//     improving move is taken, otherwise every step halves; terminates
//     when the steps shrink below a fixed fraction of the box.
//
// Inputs:
//   - models: one fitted model per profile, same factor space;
//   - profiles: at least one, validated bounds;
//   - space: the box to search, dimension == factor count;
//   - opts: see Options.
//
// Returns:
//   - *Result with the point, overall and per-response desirabilities,
//     predictions and the evaluation count.
//
// Errors:
//   - ErrNoProfiles, ErrModelMismatch, ErrBadProfile, ErrBadSpace,
//     ErrBadResolution;
//   - ErrBudgetExceeded when the strategy would need more evaluations
//     than opts.MaxEvaluations (grid: checked upfront from the lattice
//     size; pattern: checked before each evaluation).
//
// Determinism: identical inputs yield identical results regardless of
// Workers.
func Optimize(models []*surface.Model, profiles []Profile, space SearchSpace, opts Options) (*Result, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}
	if len(models) != len(profiles) {
		return nil, ErrModelMismatch
	}
	k := models[0].FactorCount
	for _, m := range models {
		if m == nil || m.FactorCount != k {
			return nil, ErrModelMismatch
		}
	}
	for _, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	if err := space.validate(k); err != nil {
		return nil, err
	}

	ob := &objective{models: models, profiles: profiles}

	var (
		point []float64
		evals int
		err   error
	)
	switch opts.Strategy {
	case PatternSearch:
		point, evals, err = patternSearch(ob, space, k, opts)
	default:
		point, evals, err = gridSearch(ob, space, k, opts)
	}
	if err != nil {
		return nil, err
	}

	return finishResult(ob, point, evals)
}

// finishResult re-evaluates the winning point once to fill the report.
func finishResult(ob *objective, point []float64, evals int) (*Result, error) {
	predicted := make(map[string]float64, len(ob.models))
	perResponse := make(map[string]float64, len(ob.models))
	values := make([]float64, len(ob.models))
	var (
		y   float64
		err error
	)
	for i, m := range ob.models {
		y, err = m.Predict(point)
		if err != nil {
			return nil, err
		}
		values[i] = ob.profiles[i].Value(y)
		predicted[ob.profiles[i].Response] = y
		perResponse[ob.profiles[i].Response] = values[i]
	}

	return &Result{
		Point:        point,
		Desirability: Overall(values, ob.profiles),
		Predicted:    predicted,
		PerResponse:  perResponse,
		Evaluations:  evals,
	}, nil
}

// gridSearch scans the full lattice, sharded across workers.
func gridSearch(ob *objective, space SearchSpace, k int, opts Options) ([]float64, int, error) {
	res, err := opts.resolution()
	if err != nil {
		return nil, 0, err
	}
	budget := opts.budget()

	// Lattice size with overflow-safe budget check.
	total := 1
	for i := 0; i < k; i++ {
		if total > budget/res+1 {
			return nil, 0, ErrBudgetExceeded
		}
		total *= res
	}
	if total > budget {
		return nil, 0, ErrBudgetExceeded
	}

	type shardBest struct {
		value float64
		index int
	}
	workers := opts.workers()
	if workers > total {
		workers = total
	}
	bests := make([]shardBest, workers)
	chunk := (total + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			lo, hi := w*chunk, (w+1)*chunk
			if hi > total {
				hi = total
			}
			best := shardBest{value: math.Inf(-1), index: -1}
			x := make([]float64, k)
			values := make([]float64, len(ob.models))
			var (
				d   float64
				err error
			)
			for idx := lo; idx < hi; idx++ {
				latticePoint(idx, res, space, x)
				d, err = ob.eval(x, values)
				if err != nil {
					return err
				}
				if d > best.value {
					best = shardBest{value: d, index: idx}
				}
			}
			bests[w] = best

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, 0, err
	}

	// Merge: max value, ties broken by the lowest flat index.
	winner := bests[0]
	for _, b := range bests[1:] {
		if b.index < 0 {
			continue
		}
		if b.value > winner.value || (b.value == winner.value && b.index < winner.index) {
			winner = b
		}
	}

	point := make([]float64, k)
	latticePoint(winner.index, res, space, point)

	return point, total, nil
}

// latticePoint decodes a flat lattice index into coded coordinates;
// factor 0 varies fastest.
func latticePoint(idx, res int, space SearchSpace, x []float64) {
	for j := range x {
		step := idx % res
		idx /= res
		x[j] = space.Min[j] + float64(step)*(space.Max[j]-space.Min[j])/float64(res-1)
	}
}

// patternSearch runs a deterministic compass search with step halving.
func patternSearch(ob *objective, space SearchSpace, k int, opts Options) ([]float64, int, error) {
	budget := opts.budget()

	current := make([]float64, k)
	steps := make([]float64, k)
	var spans float64
	for j := 0; j < k; j++ {
		current[j] = (space.Min[j] + space.Max[j]) / 2
		spans = space.Max[j] - space.Min[j]
		steps[j] = spans / 4
	}

	values := make([]float64, len(ob.models))
	evals := 0
	evalAt := func(x []float64) (float64, error) {
		if evals >= budget {
			return 0, ErrBudgetExceeded
		}
		evals++

		return ob.eval(x, values)
	}

	best, err := evalAt(current)
	if err != nil {
		return nil, 0, err
	}

	candidate := make([]float64, k)
	moveTo := make([]float64, k)
	for !stepsConverged(steps, space) {
		improved := false
		moveValue := best
		// Fixed scan order: axis ascending, minus then plus.
		for j := 0; j < k; j++ {
			for _, dir := range []float64{-1, 1} {
				copy(candidate, current)
				candidate[j] = clamp(current[j]+dir*steps[j], space.Min[j], space.Max[j])
				d, err := evalAt(candidate)
				if err != nil {
					return nil, 0, err
				}
				if d > moveValue {
					moveValue = d
					copy(moveTo, candidate)
					improved = true
				}
			}
		}
		if improved {
			best = moveValue
			copy(current, moveTo)

			continue
		}
		for j := 0; j < k; j++ {
			steps[j] /= 2
		}
	}

	return current, evals, nil
}

func stepsConverged(steps []float64, space SearchSpace) bool {
	for j, s := range steps {
		if s > patternStepTol*(space.Max[j]-space.Min[j]) {
			return false
		}
	}

	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
