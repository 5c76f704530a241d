// SPDX-License-Identifier: MIT
// Package model: design-quality diagnostics over a model matrix.
//
// Purpose:
//   - Compute the information matrix G = XᵀX and report orthogonality,
//     column correlations, D-efficiency and alias pairs as plain data.
//   - Degenerate designs produce degenerate metrics, never errors: a
//     valid-but-poor design is a legitimate object to analyze.

package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultEpsilon is the off-diagonal tolerance for the orthogonality test.
const DefaultEpsilon = 1e-4

// DefaultAliasThreshold flags term pairs whose |correlation| exceeds it.
const DefaultAliasThreshold = 0.5

// DEfficiencyMax is the score of an information-optimal (orthogonal) design.
const DEfficiencyMax = 100.0

// DiagnosticsOptions configures Analyze.
//
// Fields:
//   - Epsilon        — orthogonality tolerance for |G[i,j]| and |G[i,i]−n|.
//     0 (or negative) selects DefaultEpsilon.
//   - AliasThreshold — |correlation| above which a term pair is reported
//     as aliased. 0 (or negative) selects DefaultAliasThreshold.
type DiagnosticsOptions struct {
	Epsilon        float64
	AliasThreshold float64
}

// DefaultDiagnosticsOptions returns production-safe defaults.
func DefaultDiagnosticsOptions() DiagnosticsOptions {
	return DiagnosticsOptions{
		Epsilon:        DefaultEpsilon,
		AliasThreshold: DefaultAliasThreshold,
	}
}

func (o DiagnosticsOptions) epsilon() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}

	return o.Epsilon
}

func (o DiagnosticsOptions) aliasThreshold() float64 {
	if o.AliasThreshold <= 0 {
		return DefaultAliasThreshold
	}

	return o.AliasThreshold
}

// AliasPair records two terms whose columns are statistically entangled:
// their effects cannot be distinguished by this design.
type AliasPair struct {
	A, B        Term
	Correlation float64
}

// Diagnostics is the design-quality report for one model matrix.
type Diagnostics struct {
	// Orthogonal is true iff G = XᵀX is n·I within tolerance.
	Orthogonal bool

	// DEfficiency ∈ [0,100]; 100 iff orthogonal.
	DEfficiency float64

	// Correlation is the t×t Pearson correlation matrix of term columns:
	// symmetric, unit diagonal, zero-variance columns correlate at 0.
	Correlation *mat.SymDense

	// AliasPairs lists term pairs with |correlation| above the threshold,
	// in (i<j) column order.
	AliasPairs []AliasPair
}

// Analyze computes the diagnostics report for a model matrix.
//
// Implementation:
//   - Stage 1: Validate, compute G = XᵀX.
//   - Stage 2: Orthogonality: every |G[i,j]| (i≠j) < ε and every
//     |G[i,i] − n| < ε.
//   - Stage 3: Pearson correlation per column pair; a zero-variance
//     column yields 0 by convention (unit diagonal is kept regardless).
//   - Stage 4: D-efficiency and alias pairs from the matrices above.
//
// D-efficiency is a heuristic, kept deliberately: 100 when orthogonal,
// otherwise 100·(1 − mean of |G[i,j]|/√(G[i,i]·G[j,j]) over i<j), clipped
// to [0,100]. It is exactly 100 on orthogonal designs and degrades with
// the average column entanglement; it is NOT the determinant-based
// |XᵀX|^(1/p)/n formula and should not be compared against one.
//
// Errors:
//   - ErrNilMatrix for a nil report target. Poor designs never error.
//
// Complexity: O(n·t²) time, O(t²) space.
func Analyze(mm *ModelMatrix, opts DiagnosticsOptions) (*Diagnostics, error) {
	if mm == nil || mm.X == nil {
		return nil, ErrNilMatrix
	}

	n, t := mm.X.Dims()
	eps := opts.epsilon()

	// Stage 1: information matrix G = XᵀX.
	var g mat.Dense
	g.Mul(mm.X.T(), mm.X)

	// Stage 2: orthogonality scan (fixed i→j order).
	orthogonal := true
	var i, j int
	for i = 0; i < t && orthogonal; i++ {
		if math.Abs(g.At(i, i)-float64(n)) >= eps {
			orthogonal = false

			break
		}
		for j = 0; j < t; j++ {
			if i != j && math.Abs(g.At(i, j)) >= eps {
				orthogonal = false

				break
			}
		}
	}

	// Stage 3: column correlations with the zero-variance convention.
	corr := mat.NewSymDense(t, nil)
	cols := make([][]float64, t)
	degenerate := make([]bool, t)
	for j = 0; j < t; j++ {
		cols[j] = mat.Col(nil, j, mm.X)
		degenerate[j] = stat.Variance(cols[j], nil) == 0
		corr.SetSym(j, j, 1) // unit diagonal by invariant
	}
	var r float64
	for i = 0; i < t; i++ {
		for j = i + 1; j < t; j++ {
			if degenerate[i] || degenerate[j] {
				corr.SetSym(i, j, 0) // defined 0, never NaN

				continue
			}
			r = stat.Correlation(cols[i], cols[j], nil)
			corr.SetSym(i, j, r)
		}
	}

	// Stage 4a: D-efficiency heuristic.
	dEff := DEfficiencyMax
	if !orthogonal {
		dEff = dEfficiency(&g, t)
	}

	// Stage 4b: alias pairs above the threshold, (i<j) order.
	threshold := opts.aliasThreshold()
	var pairs []AliasPair
	for i = 0; i < t; i++ {
		for j = i + 1; j < t; j++ {
			r = corr.At(i, j)
			if math.Abs(r) > threshold {
				pairs = append(pairs, AliasPair{A: mm.Terms[i], B: mm.Terms[j], Correlation: r})
			}
		}
	}

	return &Diagnostics{
		Orthogonal:  orthogonal,
		DEfficiency: dEff,
		Correlation: corr,
		AliasPairs:  pairs,
	}, nil
}

// dEfficiency computes 100·(1 − mean relative off-diagonal magnitude)
// clipped to [0,100]. A degenerate diagonal entry (all-zero column)
// carries no information and contributes 0 to the mean.
func dEfficiency(g *mat.Dense, t int) float64 {
	if t < 2 {
		return DEfficiencyMax
	}
	var (
		i, j  int
		sum   float64
		count int
		denom float64
	)
	for i = 0; i < t; i++ {
		for j = i + 1; j < t; j++ {
			denom = math.Sqrt(g.At(i, i) * g.At(j, j))
			if denom > 0 {
				sum += math.Abs(g.At(i, j)) / denom
			}
			count++
		}
	}
	d := DEfficiencyMax * (1 - sum/float64(count))
	if d < 0 {
		return 0
	}
	if d > DEfficiencyMax {
		return DEfficiencyMax
	}

	return d
}
