// SPDX-License-Identifier: MIT
// Package surface: canonical analysis and ascent directions.

package surface

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/doe/model"
)

// eigenTol is the magnitude below which an eigenvalue counts as zero:
// a flat direction, classified as Saddle by convention.
const eigenTol = 1e-10

// SurfaceKind classifies the stationary point of a quadratic surface.
type SurfaceKind int

const (
	// Maximum: all curvature eigenvalues negative.
	Maximum SurfaceKind = iota

	// Minimum: all curvature eigenvalues positive.
	Minimum

	// Saddle: mixed-sign or near-zero eigenvalues.
	Saddle
)

// String returns a stable name for the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case Maximum:
		return "maximum"
	case Minimum:
		return "minimum"
	default:
		return "saddle"
	}
}

// Canonical is the second-order characterization of a fitted surface.
type Canonical struct {
	// Stationary is the coded-unit point where the gradient vanishes.
	Stationary []float64

	// Eigenvalues are the curvature eigenvalues in ascending order.
	Eigenvalues []float64

	// Kind classifies the stationary point.
	Kind SurfaceKind
}

// Analyze performs the canonical analysis of a fitted second-order model.
//
// Implementation:
//   - Stage 1: Assemble the linear vector b and the symmetric curvature
//     matrix B (quadratic coefficients on the diagonal, half the 2-way
//     interaction coefficients off it).
//   - Stage 2: Stationary point xₛ = −½·B⁻¹·b via a linear solve.
//   - Stage 3: Eigen-decompose B (mat.EigenSym) and classify: all λ < 0
//     → Maximum, all λ > 0 → Minimum, otherwise Saddle. An eigenvalue
//     within eigenTol of zero is a flat direction and forces Saddle.
//
// Errors:
//   - ErrNotQuadratic for interactions above two factors;
//   - ErrDegenerateSurface when B is singular (ridge system, no unique
//     stationary point).
func Analyze(m *Model) (*Canonical, error) {
	k := m.FactorCount
	b := make([]float64, k)
	curv := mat.NewSymDense(k, nil)

	// Stage 1: split coefficients into b and B.
	for i, term := range m.Terms {
		switch term.Kind {
		case model.MainEffect:
			b[term.Factors[0]] += m.Coefficients[i]
		case model.Quadratic:
			f := term.Factors[0]
			curv.SetSym(f, f, curv.At(f, f)+m.Coefficients[i])
		case model.Interaction:
			if len(term.Factors) != 2 {
				return nil, ErrNotQuadratic
			}
			fa, fb := term.Factors[0], term.Factors[1]
			curv.SetSym(fa, fb, curv.At(fa, fb)+m.Coefficients[i]/2)
		}
	}

	// Stage 2: xₛ = −½·B⁻¹·b.
	var xs mat.VecDense
	if err := xs.SolveVec(curv, mat.NewVecDense(k, b)); err != nil {
		return nil, ErrDegenerateSurface
	}
	stationary := make([]float64, k)
	for i := 0; i < k; i++ {
		stationary[i] = -0.5 * xs.AtVec(i)
	}

	// Stage 3: eigenvalues and classification.
	var eig mat.EigenSym
	if !eig.Factorize(curv, false) {
		return nil, ErrDegenerateSurface
	}
	values := eig.Values(nil)

	kind := classify(values)

	return &Canonical{Stationary: stationary, Eigenvalues: values, Kind: kind}, nil
}

// classify maps the eigenvalue signs onto a SurfaceKind.
func classify(values []float64) SurfaceKind {
	neg, pos := 0, 0
	for _, v := range values {
		switch {
		case math.Abs(v) <= eigenTol:
			return Saddle
		case v < 0:
			neg++
		default:
			pos++
		}
	}
	switch {
	case neg == len(values):
		return Maximum
	case pos == len(values):
		return Minimum
	default:
		return Saddle
	}
}

// Gradient evaluates ∇f at a coded point: ∂f/∂xᵢ = bᵢ + 2·Σⱼ B[i,j]·xⱼ.
func Gradient(m *Model, x []float64) ([]float64, error) {
	if len(x) != m.FactorCount {
		return nil, ErrBadPoint
	}
	k := m.FactorCount
	grad := make([]float64, k)
	for i, term := range m.Terms {
		switch term.Kind {
		case model.MainEffect:
			grad[term.Factors[0]] += m.Coefficients[i]
		case model.Quadratic:
			f := term.Factors[0]
			grad[f] += 2 * m.Coefficients[i] * x[f]
		case model.Interaction:
			if len(term.Factors) != 2 {
				return nil, ErrNotQuadratic
			}
			fa, fb := term.Factors[0], term.Factors[1]
			grad[fa] += m.Coefficients[i] * x[fb]
			grad[fb] += m.Coefficients[i] * x[fa]
		}
	}

	return grad, nil
}

// SteepestAscent returns the unit-length direction of fastest increase at
// a coded point, the path a sequential experimenter follows toward the
// optimum region. Fails with ErrZeroGradient at a stationary point.
func SteepestAscent(m *Model, x []float64) ([]float64, error) {
	grad, err := Gradient(m, x)
	if err != nil {
		return nil, err
	}
	var norm float64
	for _, g := range grad {
		norm += g * g
	}
	norm = math.Sqrt(norm)
	if norm <= eigenTol {
		return nil, ErrZeroGradient
	}
	for i := range grad {
		grad[i] /= norm
	}

	return grad, nil
}
