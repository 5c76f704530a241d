// SPDX-License-Identifier: MIT
// Package design: fractional factorial generation with resolution-driven
// confounding.
//
// A 2^(k−q) fractional factorial runs the full factorial on p = k−q base
// factors and derives each remaining factor's column as the elementwise
// product of a chosen subset of base columns (the "generator word"). The
// word lengths fix the design resolution: a word of length L confounds the
// generated factor with an L-factor interaction, so resolution III uses
// 2-letter words, IV uses 3-letter words, V uses 4-letter words.
//
// Generator words come from a lookup table of standard minimum-aberration
// designs keyed by (k, resolution), replacing ad-hoc per-resolution rules
// and the factor-count ceilings they drag along. Pairs without a table
// entry fail with ErrResolutionUnachievable.

package design

// generatorKey addresses the word table by total factor count and
// requested resolution.
type generatorKey struct {
	k   int
	res Resolution
}

// generatorWords maps (k, resolution) to one word per generated factor.
// Each word lists base-column indices whose elementwise product forms the
// generated column. Base factors are the first p = k − len(words) factors.
//
// Entries are the standard minimum-aberration generators (Box–Hunter
// catalog). Word length is resolution−1 by construction, which is what
// makes the confounding law of each entry exact.
var generatorWords = map[generatorKey][][]int{
	{3, ResolutionIII}: {{0, 1}},                         // C = AB      (2^(3-1))
	{4, ResolutionIII}: {{0, 1}},                         // D = AB      (2^(4-1))
	{4, ResolutionIV}:  {{0, 1, 2}},                      // D = ABC     (2^(4-1))
	{5, ResolutionIII}: {{0, 1}, {0, 2}},                 // D = AB, E = AC
	{5, ResolutionIV}:  {{0, 1, 2}},                      // E = ABC     (2^(5-1))
	{5, ResolutionV}:   {{0, 1, 2, 3}},                   // E = ABCD    (2^(5-1))
	{6, ResolutionIII}: {{0, 1}, {0, 2}, {1, 2}},         // D = AB, E = AC, F = BC
	{6, ResolutionIV}:  {{0, 1, 2}, {1, 2, 3}},           // E = ABC, F = BCD
	{6, ResolutionV}:   {{0, 1, 2, 3}},                   // F = ABCD    (2^(6-1))
	{7, ResolutionIII}: {{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}},
	{7, ResolutionIV}:  {{0, 1, 2}, {0, 1, 3}, {0, 2, 3}},
	{8, ResolutionIV}:  {{1, 2, 3}, {0, 2, 3}, {0, 1, 2}, {0, 1, 3}},
}

// FractionalFactorial builds a 2^(k−q) fractional factorial with the
// requested resolution.
//
// Implementation:
//   - Stage 1: Validate factors and look up generator words for
//     (k, resolution); p = k − q base factors.
//   - Stage 2: Generate the full factorial on the base factors (same bit
//     derivation as FullFactorial).
//   - Stage 3: Derive each generated column as the product of its word's
//     base columns, appended after the base columns in factor order.
//
// Behavior highlights:
//   - The declared resolution's confounding law holds exactly: generated
//     columns are ±1 products, so aliased term pairs correlate at ±1 and
//     everything else at 0.
//   - Deterministic: standard order is fixed by the base factorial; the
//     word table is static.
//
// Errors:
//   - ErrNoFactors, ErrDegenerateFactor, ErrDuplicateFactor,
//     ErrTooManyFactors, ErrResolutionUnachievable (no table entry for
//     the (k, resolution) pair, including unknown resolutions).
//
// Complexity: O(k·2^(k−q)) time and space.
func FractionalFactorial(factors []Factor, res Resolution, opts Options) (*Design, error) {
	if err := validateFactors(factors); err != nil {
		return nil, err
	}
	k := len(factors)
	if k > opts.maxFactors() {
		return nil, ErrTooManyFactors
	}

	words, ok := generatorWords[generatorKey{k: k, res: res}]
	if !ok {
		return nil, ErrResolutionUnachievable
	}
	base := k - len(words) // p base factors carry the full factorial

	n := 1 << base
	runs := make([]Run, n)
	var (
		i, j, w int
		coded   []float64
		prod    float64
	)
	for i = 0; i < n; i++ {
		coded = make([]float64, k)

		// Base columns from the bit pattern of the standard-order index.
		for j = 0; j < base; j++ {
			if i&(1<<j) == 0 {
				coded[j] = levelLow
			} else {
				coded[j] = levelHigh
			}
		}

		// Generated columns: elementwise product of the word's base columns.
		for w = 0; w < len(words); w++ {
			prod = levelHigh
			for _, j = range words[w] {
				prod *= coded[j]
			}
			coded[base+w] = prod
		}

		runs[i] = Run{
			StdOrder: i,
			RunOrder: i,
			Coded:    coded,
			Natural:  naturalLevels(factors, coded),
		}
	}

	return &Design{
		Factors:    cloneFactors(factors),
		Runs:       runs,
		Type:       FractionalFactorialType,
		Resolution: res,
	}, nil
}
