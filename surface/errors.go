package surface

import "errors"

var (
	// ErrNilMatrix indicates a nil model matrix passed to Fit.
	ErrNilMatrix = errors.New("surface: model matrix is nil")

	// ErrLengthMismatch indicates a response vector whose length differs
	// from the model matrix row count.
	ErrLengthMismatch = errors.New("surface: response length does not match run count")

	// ErrSingularDesign indicates a rank-deficient design: the
	// least-squares system has no unique solution, typically because two
	// term columns are perfectly aliased or a column is constant.
	ErrSingularDesign = errors.New("surface: design matrix is singular")

	// ErrNotQuadratic indicates a model containing terms a second-order
	// canonical analysis cannot represent (interactions above two factors).
	ErrNotQuadratic = errors.New("surface: model is not second-order")

	// ErrDegenerateSurface indicates a singular curvature matrix: the
	// fitted surface has no unique stationary point (a ridge).
	ErrDegenerateSurface = errors.New("surface: curvature matrix is singular")

	// ErrBadPoint indicates a point whose dimension differs from the
	// model's factor count.
	ErrBadPoint = errors.New("surface: point dimension does not match factor count")

	// ErrZeroGradient indicates a vanishing gradient: there is no ascent
	// direction at a stationary point.
	ErrZeroGradient = errors.New("surface: gradient is zero at this point")
)
