// SPDX-License-Identifier: MIT
// Package surface: ordinary least squares over a model matrix.

package surface

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/doe/model"
)

// Model is a fitted response surface: an intercept plus one coefficient
// per model term, in the term order of the matrix it was fitted from.
type Model struct {
	Intercept    float64
	Terms        []model.Term
	Coefficients []float64

	// FactorCount is the dimension of the coded factor space; Predict,
	// Gradient and the canonical analysis operate in this space.
	FactorCount int
}

// Fit estimates the model by ordinary least squares on the intercept-
// augmented matrix [1 | X].
//
// Implementation:
//   - Stage 1: Validate dimensions, build the n×(t+1) augmented matrix.
//   - Stage 2: Solve the least-squares system via QR (mat.VecDense.SolveVec);
//     a rank-deficient system fails with ErrSingularDesign.
//   - Stage 3: Split the solution into intercept and term coefficients.
//
// Noiseless responses generated by a quadratic within the model span are
// recovered to machine precision.
//
// Errors:
//   - ErrNilMatrix, ErrLengthMismatch, ErrSingularDesign.
//
// Complexity: O(n·t²) time, O(n·t) space.
func Fit(mm *model.ModelMatrix, y []float64) (*Model, error) {
	if mm == nil || mm.X == nil {
		return nil, ErrNilMatrix
	}
	n, t := mm.X.Dims()
	if len(y) != n {
		return nil, ErrLengthMismatch
	}

	// Stage 1: augment with the intercept column.
	a := mat.NewDense(n, t+1, nil)
	var i, j int
	for i = 0; i < n; i++ {
		a.Set(i, 0, 1)
		for j = 0; j < t; j++ {
			a.Set(i, j+1, mm.X.At(i, j))
		}
	}

	// Stage 2: least-squares solve.
	var beta mat.VecDense
	if err := beta.SolveVec(a, mat.NewVecDense(n, y)); err != nil {
		return nil, ErrSingularDesign
	}

	// Stage 3: unpack.
	coefs := make([]float64, t)
	for j = 0; j < t; j++ {
		coefs[j] = beta.AtVec(j + 1)
	}
	terms := make([]model.Term, len(mm.Terms))
	copy(terms, mm.Terms)

	return &Model{
		Intercept:    beta.AtVec(0),
		Terms:        terms,
		Coefficients: coefs,
		FactorCount:  mm.FactorCount,
	}, nil
}

// Predict evaluates the fitted surface at a coded point.
func (m *Model) Predict(x []float64) (float64, error) {
	if len(x) != m.FactorCount {
		return 0, ErrBadPoint
	}
	v := m.Intercept
	var tv float64
	for i, term := range m.Terms {
		tv = 1
		if term.Kind == model.Quadratic {
			tv = x[term.Factors[0]] * x[term.Factors[0]]
		} else {
			for _, f := range term.Factors {
				tv *= x[f]
			}
		}
		v += m.Coefficients[i] * tv
	}

	return v, nil
}
