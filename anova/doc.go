// Package anova estimates factor effects on two-level designs and
// decomposes response variance into an F-test table.
//
// # Effect estimation
//
// Effects are computed by contrasts over the factorial core of a design —
// the runs whose every coded level is exactly ±1. Center and axial runs
// carry no contrast information and are excluded before balance is
// checked:
//
//	main effect  = mean(y | factor at +1) − mean(y | factor at −1)
//	interaction  = [(Σy at matching signs) − (Σy at opposing signs)] / (n/2)
//
// Both forms are one kernel: effect = contrast/(n/2) with the contrast
// sign being the product of the involved coded levels. Balance — equal
// positive run counts in every sign cell — is a hard precondition
// (ErrImbalancedDesign); an unbalanced contrast is biased, and reporting
// a biased number would be worse than refusing.
//
// Quadratic terms are not estimable by contrasts; fit them with the
// surface package instead (Estimates fails with ErrUnsupportedTerm).
//
// # Variance decomposition
//
// Decompose produces the classical table: per-term sum of squares
// (n/4)·effect², residual by subtraction, F ratios against the residual
// mean square, and upper-tail p-values from the F(1, df_error)
// distribution. A saturated model (df_error ≤ 0) fails with
// ErrNoReplication rather than dividing by zero.
package anova
