// Package desirability scores multi-response predictions on a common
// [0,1] scale and searches the coded factor space for the most desirable
// operating point.
//
// # Scoring
//
// Each response carries a Profile (Maximize, Minimize or Target) mapping
// its predicted value through a piecewise power law onto [0,1]. The
// overall score is the weighted geometric mean of the individual values,
// with a hard veto: any response at exactly 0 forces the overall score
// to 0, so no trade-off can paper over a completely failed response.
//
// # Optimization
//
// Optimize evaluates fitted surface models over a box in coded units
// using one of two strategies:
//
//   - GridSearch (default): a deterministic lattice scan sharded across
//     goroutines; ties break toward the lowest lattice index, so the
//     result is identical for any worker count.
//   - PatternSearch: compass search with step halving, for factor counts
//     where a dense lattice would blow the evaluation budget.
//
// Both strategies respect Options.MaxEvaluations and fail with
// ErrBudgetExceeded rather than running unbounded.
package desirability
