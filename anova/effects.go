// SPDX-License-Identifier: MIT
// Package anova: contrast-based effect estimation on two-level designs.

package anova

import (
	"math"

	"github.com/katalvlaran/doe/design"
	"github.com/katalvlaran/doe/model"
)

// EffectEstimate is one estimated effect: the term and its signed value
// in response units (the change across the factor's full coded range).
type EffectEstimate struct {
	Term   model.Term
	Effect float64
}

// Magnitude returns |Effect|.
func (e EffectEstimate) Magnitude() float64 { return math.Abs(e.Effect) }

// Sign returns +1, −1 or 0 for the direction of the effect.
func (e EffectEstimate) Sign() int {
	switch {
	case e.Effect > 0:
		return 1
	case e.Effect < 0:
		return -1
	default:
		return 0
	}
}

// MainEffect estimates factor's main effect on the named response:
// mean(y | factor = +1) − mean(y | factor = −1), over the factorial core.
//
// Center and axial runs sit at coded 0 (or ±alpha) and carry no contrast
// information; they are excluded before balance is checked.
//
// Errors:
//   - ErrNilDesign, ErrFactorIndex, ErrNoFactorialRuns,
//     ErrImbalancedDesign; design.ErrUnknownResponse from the lookup.
func MainEffect(d *design.Design, response string, factor int) (float64, error) {
	return contrastEffect(d, response, []int{factor})
}

// Interaction estimates the two-factor interaction effect AB:
//
//	[(Σy at ++ and −−) − (Σy at +− and −+)] / (n/2)
//
// where n is the factorial-core run count. Requires every one of the four
// sign cells to hold the same positive number of runs.
//
// Errors: as MainEffect, plus ErrImbalancedDesign when any cell is empty
// or the cells are unequal.
func Interaction(d *design.Design, response string, a, b int) (float64, error) {
	return contrastEffect(d, response, []int{a, b})
}

// Estimates evaluates a batch of terms against one response. Main effects
// and 2–3 factor interactions are estimable by contrasts; quadratic terms
// are not (fit them with the surface package) and fail the whole batch
// with ErrUnsupportedTerm.
func Estimates(d *design.Design, response string, terms []model.Term) ([]EffectEstimate, error) {
	out := make([]EffectEstimate, 0, len(terms))
	var (
		eff float64
		err error
	)
	for _, term := range terms {
		if term.Kind == model.Quadratic || len(term.Factors) > 3 {
			return nil, ErrUnsupportedTerm
		}
		eff, err = contrastEffect(d, response, term.Factors)
		if err != nil {
			return nil, err
		}
		out = append(out, EffectEstimate{Term: term, Effect: eff})
	}

	return out, nil
}

// contrastEffect is the shared kernel: effect = contrast / (n/2), where
// contrast = Σ y·∏sign(factor levels) over the factorial core and n is
// the core run count. Balance means every sign cell (2^d of them) holds
// the same positive count.
func contrastEffect(d *design.Design, response string, factors []int) (float64, error) {
	if d == nil {
		return 0, ErrNilDesign
	}
	k := len(d.Factors)
	var f int
	for _, f = range factors {
		if f < 0 || f >= k {
			return 0, ErrFactorIndex
		}
	}
	y, err := d.ResponseVector(response)
	if err != nil {
		return 0, err
	}

	core := factorialCore(d)
	if len(core) == 0 {
		return 0, ErrNoFactorialRuns
	}

	// Accumulate the contrast and per-cell counts in one pass.
	cells := make(map[int]int, 1<<len(factors))
	var (
		contrast float64
		sign     float64
		cell     int
		c        float64
	)
	for _, i := range core {
		sign = 1
		cell = 0
		for bit, f := range factors {
			c = d.Runs[i].Coded[f]
			sign *= c
			if c > 0 {
				cell |= 1 << bit
			}
		}
		cells[cell]++
		contrast += sign * y[i]
	}

	want := len(core) >> len(factors)
	if want == 0 || len(cells) != 1<<len(factors) {
		return 0, ErrImbalancedDesign
	}
	for _, count := range cells {
		if count != want {
			return 0, ErrImbalancedDesign
		}
	}

	return contrast / (float64(len(core)) / 2), nil
}

// factorialCore returns the standard-order indices of runs whose every
// coded level is exactly ±1.
func factorialCore(d *design.Design) []int {
	core := make([]int, 0, len(d.Runs))
	var (
		ok bool
		c  float64
	)
	for i := range d.Runs {
		ok = true
		for _, c = range d.Runs[i].Coded {
			if c != 1 && c != -1 {
				ok = false

				break
			}
		}
		if ok {
			core = append(core, i)
		}
	}

	return core
}
