package desirability

import "errors"

var (
	// ErrNoProfiles indicates an empty profile set: there is nothing to
	// optimize.
	ErrNoProfiles = errors.New("desirability: no profiles")

	// ErrBadProfile indicates inconsistent profile bounds (Low ≥ High, a
	// target outside [Low, High], or non-finite values).
	ErrBadProfile = errors.New("desirability: invalid profile bounds")

	// ErrModelMismatch indicates profile and model counts that disagree,
	// or models over different factor-space dimensions.
	ErrModelMismatch = errors.New("desirability: profiles and models do not align")

	// ErrBadSpace indicates a search space whose bounds are missing,
	// inverted or of the wrong dimension.
	ErrBadSpace = errors.New("desirability: invalid search space")

	// ErrBadResolution indicates a grid resolution below 2.
	ErrBadResolution = errors.New("desirability: grid resolution must be at least 2")

	// ErrBudgetExceeded indicates the search would need more objective
	// evaluations than Options.MaxEvaluations allows.
	ErrBudgetExceeded = errors.New("desirability: evaluation budget exceeded")
)
