// SPDX-License-Identifier: MIT
// Package model: model-matrix construction from a design's coded run table.

package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/doe/design"
)

// ModelMatrix is the expanded design: one row per run, one column per
// term, entries are coded-level products.
type ModelMatrix struct {
	// X is the n×t matrix of term columns.
	X *mat.Dense

	// Terms are the column definitions, aligned with X's columns.
	Terms []Term

	// FactorCount is the number of factors in the originating design;
	// downstream surface fitting needs it for canonical analysis.
	FactorCount int
}

// Runs returns the row count of the model matrix.
func (m *ModelMatrix) Runs() int {
	r, _ := m.X.Dims()

	return r
}

// Build expands d's coded columns into one column per requested term.
//
// Implementation:
//   - Stage 1: Validate the design, the term set and every factor index.
//   - Stage 2: Fill the n×t matrix row-major; per cell, multiply the
//     coded levels of the term's factors (quadratic = square).
//
// Behavior highlights:
//   - Deterministic i→t traversal; one allocation for the result.
//   - The design is read-only; the returned matrix shares no storage
//     with it.
//
// Inputs:
//   - d: generated design (non-nil, n runs, k factors).
//   - terms: at least one term; factor indices within [0..k-1].
//
// Returns:
//   - *ModelMatrix with X (n×t), the term list and the factor count.
//
// Errors:
//   - ErrNilDesign, ErrNoTerms, ErrTermOutOfRange.
//
// Complexity: O(n·t·degree) time, O(n·t) space.
func Build(d *design.Design, terms []Term) (*ModelMatrix, error) {
	if d == nil {
		return nil, ErrNilDesign
	}
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	k := len(d.Factors)
	var ti, fi int
	for ti = 0; ti < len(terms); ti++ {
		if len(terms[ti].Factors) == 0 {
			return nil, ErrTermOutOfRange
		}
		for _, fi = range terms[ti].Factors {
			if fi < 0 || fi >= k {
				return nil, ErrTermOutOfRange
			}
		}
	}

	n := len(d.Runs)
	X := mat.NewDense(n, len(terms), nil)
	var i int
	for i = 0; i < n; i++ {
		for ti = 0; ti < len(terms); ti++ {
			X.Set(i, ti, termValue(terms[ti], d.Runs[i].Coded))
		}
	}

	return &ModelMatrix{X: X, Terms: cloneTerms(terms), FactorCount: k}, nil
}

// termValue evaluates one term at one run's coded levels.
func termValue(t Term, coded []float64) float64 {
	if t.Kind == Quadratic {
		c := coded[t.Factors[0]]

		return c * c
	}
	v := 1.0
	for _, j := range t.Factors {
		v *= coded[j]
	}

	return v
}

// cloneTerms deep-copies a term slice so the matrix cannot be mutated
// through the caller's slice.
func cloneTerms(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		factors := make([]int, len(t.Factors))
		copy(factors, t.Factors)
		out[i] = Term{Label: t.Label, Kind: t.Kind, Factors: factors}
	}

	return out
}
