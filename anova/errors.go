package anova

import "errors"

var (
	// ErrNilDesign indicates a nil *design.Design input.
	ErrNilDesign = errors.New("anova: design is nil")

	// ErrFactorIndex indicates a factor index outside the design's
	// factor list.
	ErrFactorIndex = errors.New("anova: factor index out of range")

	// ErrImbalancedDesign indicates unequal run counts at the level
	// combinations of the requested effect. Contrast-based estimation is
	// only unbiased on balanced designs.
	ErrImbalancedDesign = errors.New("anova: imbalanced design for requested effect")

	// ErrNoReplication indicates zero (or negative) error degrees of
	// freedom: the model saturates the design and no variance is left to
	// estimate noise from.
	ErrNoReplication = errors.New("anova: no degrees of freedom left for error")

	// ErrUnsupportedTerm indicates a term kind the contrast engine cannot
	// estimate (quadratic terms need the least-squares surface fitter).
	ErrUnsupportedTerm = errors.New("anova: term kind not estimable by contrasts")

	// ErrNoFactorialRuns indicates a design whose runs are all center or
	// axial points, leaving no ±1 core to compute contrasts on.
	ErrNoFactorialRuns = errors.New("anova: design has no factorial runs")
)
