// SPDX-License-Identifier: MIT
// Package design: run-matrix generators for full factorial and central
// composite designs. Fractional factorial generation lives in
// fractional.go next to its generator-word table.
//
// Design principles:
//   - Deterministic: standard (Yates) order is fixed by construction;
//     RunOrder == StdOrder (randomization is a caller concern).
//   - Strict sentinels: only errors from errors.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Immutability: generators allocate fresh Designs; inputs are never
//     retained mutable — the factor slice is copied.

package design

import "math"

// DefaultMaxFactors caps 2^k run tables at 4096 runs. Beyond that a
// screening design stops being a useful experiment plan.
const DefaultMaxFactors = 12

// Coded two-level constants; used instead of bare literals in generators.
const (
	levelLow    = -1.0
	levelHigh   = +1.0
	levelCenter = 0.0
)

// Options configures run-matrix generation.
//
// Fields:
//   - MaxFactors — maximum factor count k accepted by the 2^k generators.
//     A value of 0 (or negative) selects DefaultMaxFactors.
type Options struct {
	MaxFactors int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{MaxFactors: DefaultMaxFactors}
}

// maxFactors resolves the effective cap.
func (o Options) maxFactors() int {
	if o.MaxFactors <= 0 {
		return DefaultMaxFactors
	}

	return o.MaxFactors
}

// FullFactorial builds the 2^k full factorial design in standard order.
//
// Run i's coded level for factor j is derived from bit j of i: a clear
// bit maps to −1, a set bit to +1. Factor 0 therefore alternates fastest.
//
// Inputs:
//   - factors: k validated factor descriptors (non-empty, unique names,
//     non-degenerate bounds).
//   - opts: generation options; see Options.
//
// Returns:
//   - *Design with 2^k runs, Type == FullFactorialType.
//
// Errors:
//   - ErrNoFactors, ErrDegenerateFactor, ErrDuplicateFactor,
//     ErrTooManyFactors (k exceeds the configured maximum).
//
// Complexity: O(k·2^k) time and space.
func FullFactorial(factors []Factor, opts Options) (*Design, error) {
	if err := validateFactors(factors); err != nil {
		return nil, err
	}
	k := len(factors)
	if k > opts.maxFactors() {
		return nil, ErrTooManyFactors
	}

	n := 1 << k
	runs := make([]Run, n)
	var (
		i, j  int
		coded []float64
	)
	for i = 0; i < n; i++ {
		coded = make([]float64, k)
		for j = 0; j < k; j++ {
			if i&(1<<j) == 0 {
				coded[j] = levelLow
			} else {
				coded[j] = levelHigh
			}
		}
		runs[i] = Run{
			StdOrder: i,
			RunOrder: i,
			Coded:    coded,
			Natural:  naturalLevels(factors, coded),
		}
	}

	return &Design{
		Factors: cloneFactors(factors),
		Runs:    runs,
		Type:    FullFactorialType,
	}, nil
}

// CentralComposite builds a central composite design: a 2^k factorial
// block, an axial block of 2k runs (±alpha on exactly one factor, 0 on
// the rest), and centerPoints all-zero runs.
//
// Total runs = 2^k + 2k + centerPoints. The axial block is ordered by
// factor index, −alpha before +alpha, which keeps standard order stable
// across invocations.
//
// Errors:
//   - ErrNoFactors, ErrDegenerateFactor, ErrDuplicateFactor,
//     ErrTooManyFactors, ErrBadAlpha (alpha ≤ 0 or non-finite),
//     ErrBadCenterPoints (negative count).
//
// Complexity: O(k·(2^k + 2k + centerPoints)).
func CentralComposite(factors []Factor, alpha float64, centerPoints int, opts Options) (*Design, error) {
	if err := validateFactors(factors); err != nil {
		return nil, err
	}
	k := len(factors)
	if k > opts.maxFactors() {
		return nil, ErrTooManyFactors
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, ErrBadAlpha
	}
	if centerPoints < 0 {
		return nil, ErrBadCenterPoints
	}

	nFact := 1 << k
	n := nFact + 2*k + centerPoints
	runs := make([]Run, 0, n)

	// Factorial block: same bit derivation as FullFactorial.
	var (
		i, j  int
		coded []float64
	)
	for i = 0; i < nFact; i++ {
		coded = make([]float64, k)
		for j = 0; j < k; j++ {
			if i&(1<<j) == 0 {
				coded[j] = levelLow
			} else {
				coded[j] = levelHigh
			}
		}
		runs = append(runs, Run{Coded: coded, Natural: naturalLevels(factors, coded)})
	}

	// Axial block: ±alpha on one factor at a time, zeros elsewhere.
	var sign float64
	for j = 0; j < k; j++ {
		for _, sign = range [2]float64{-1, +1} {
			coded = make([]float64, k) // all zeros
			coded[j] = sign * alpha
			runs = append(runs, Run{Coded: coded, Natural: naturalLevels(factors, coded)})
		}
	}

	// Center block: all zeros.
	for i = 0; i < centerPoints; i++ {
		coded = make([]float64, k)
		runs = append(runs, Run{Coded: coded, Natural: naturalLevels(factors, coded)})
	}

	// Stamp standard/run order after concatenation.
	for i = 0; i < len(runs); i++ {
		runs[i].StdOrder = i
		runs[i].RunOrder = i
	}

	return &Design{
		Factors:      cloneFactors(factors),
		Runs:         runs,
		Type:         CentralCompositeType,
		Alpha:        alpha,
		CenterPoints: centerPoints,
	}, nil
}

// cloneFactors copies the caller's factor slice so the Design cannot be
// mutated through it afterwards.
func cloneFactors(factors []Factor) []Factor {
	out := make([]Factor, len(factors))
	copy(out, factors)

	return out
}
