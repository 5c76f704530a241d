// SPDX-License-Identifier: MIT
// Package anova: sum-of-squares decomposition and the F-test table.

package anova

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/doe/design"
	"github.com/katalvlaran/doe/model"
)

// SourceError and SourceTotal name the two closing rows of every table.
const (
	SourceError = "Error"
	SourceTotal = "Total"
)

// Row is one line of an ANOVA table. F and P are NaN on the Error and
// Total rows, where the ratio is undefined.
type Row struct {
	Source string
	DF     int
	SumSq  float64
	MeanSq float64
	F      float64
	P      float64
}

// Table is a complete variance decomposition: one row per model term,
// then Error, then Total.
type Table struct {
	Rows []Row
}

// TermRows returns the rows excluding Error and Total.
func (t *Table) TermRows() []Row {
	if len(t.Rows) < 2 {
		return nil
	}

	return t.Rows[:len(t.Rows)-2]
}

// Decompose partitions the response variance over the factorial core of
// the design into per-term sums of squares and tests each term against
// the residual.
//
// Implementation:
//   - Stage 1: Estimate every term's effect by contrasts (Estimates).
//   - Stage 2: SS_total = Σ(y−ȳ)² over the core; per 1-df two-level term
//     SS = (n/4)·effect²; SS_error = SS_total − ΣSS_term.
//   - Stage 3: df_error = n − 1 − #terms; per-term F = MS_term/MS_error
//     and p = upper tail of F(1, df_error).
//
// Invariants on the output:
//   - SS_total == ΣSS_term + SS_error (within float round-off),
//   - Σdf over all rows except Total == df(Total) == n − 1.
//
// Errors:
//   - ErrNoReplication when df_error ≤ 0 (saturated model);
//   - everything Estimates can return.
//
// Complexity: O(n·#terms) time, O(#terms) space.
func Decompose(d *design.Design, response string, terms []model.Term) (*Table, error) {
	estimates, err := Estimates(d, response, terms)
	if err != nil {
		return nil, err
	}

	y, err := d.ResponseVector(response)
	if err != nil {
		return nil, err
	}
	core := factorialCore(d)
	n := len(core)

	dfError := n - 1 - len(terms)
	if dfError <= 0 {
		return nil, ErrNoReplication
	}

	// Stage 2: total and per-term sums of squares.
	var mean float64
	for _, i := range core {
		mean += y[i]
	}
	mean /= float64(n)
	var ssTotal float64
	var dev float64
	for _, i := range core {
		dev = y[i] - mean
		ssTotal += dev * dev
	}

	ssTerms := make([]float64, len(estimates))
	var ssModel float64
	for i, est := range estimates {
		ssTerms[i] = float64(n) / 4 * est.Effect * est.Effect
		ssModel += ssTerms[i]
	}
	ssError := ssTotal - ssModel
	if ssError < 0 {
		ssError = 0 // round-off guard on noiseless data
	}
	msError := ssError / float64(dfError)

	// Stage 3: assemble rows with F(1, dfError) upper-tail p-values.
	fDist := distuv.F{D1: 1, D2: float64(dfError)}
	rows := make([]Row, 0, len(estimates)+2)
	var fStat, p float64
	for i, est := range estimates {
		fStat = math.NaN()
		p = math.NaN()
		if msError > 0 {
			fStat = ssTerms[i] / msError
			p = fDist.Survival(fStat)
		}
		rows = append(rows, Row{
			Source: est.Term.Label,
			DF:     1,
			SumSq:  ssTerms[i],
			MeanSq: ssTerms[i],
			F:      fStat,
			P:      p,
		})
	}
	rows = append(rows, Row{
		Source: SourceError,
		DF:     dfError,
		SumSq:  ssError,
		MeanSq: msError,
		F:      math.NaN(),
		P:      math.NaN(),
	})
	rows = append(rows, Row{
		Source: SourceTotal,
		DF:     n - 1,
		SumSq:  ssTotal,
		MeanSq: math.NaN(),
		F:      math.NaN(),
		P:      math.NaN(),
	})

	return &Table{Rows: rows}, nil
}
