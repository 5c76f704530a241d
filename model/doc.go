// Package model expands a design's factor columns into model-term columns
// and diagnoses the statistical quality of the resulting model matrix.
//
// # Model matrix
//
// Build maps a design onto one column per requested term:
//
//	– main effect     → the factor's coded column,
//	– interaction     → elementwise product of the constituent columns,
//	– quadratic       → the squared coded column (non-degenerate only for
//	  designs with non-±1 levels, e.g. the axial block of a CCD).
//
// Term sets are constructed with MainEffects, Interactions, Quadratics and
// SecondOrder; requesting an interaction order greater than the factor
// count yields an empty set, not an error.
//
// # Diagnostics
//
// Analyze computes the information matrix G = XᵀX and derives:
//
//	– Orthogonality: all |off-diagonal| < ε and every diagonal equals the
//	  run count n.
//	– Pearson correlation between every pair of term columns; a
//	  zero-variance column yields a defined 0 correlation by convention
//	  rather than propagating NaN.
//	– D-efficiency in [0,100]: exactly 100 for orthogonal matrices, else
//	  100·(1 − mean relative off-diagonal magnitude). This is a
//	  deliberate heuristic, not the determinant formula — see Analyze.
//	– Alias pairs: term pairs whose |correlation| exceeds the configured
//	  threshold.
//
// Diagnostics never fail on poor designs: a valid-but-poor design is a
// legitimate object to analyze, and degenerate quality metrics are
// reported as data.
//
// # Integration
//
//   - Consumes github.com/katalvlaran/doe/design run tables.
//   - Model matrices are gonum mat.Dense values, directly consumable by
//     the surface package's least-squares fitter.
package model
