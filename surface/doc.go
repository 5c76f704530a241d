// Package surface fits second-order response models by ordinary least
// squares and characterizes the fitted surface.
//
// Fit solves the intercept-augmented least-squares system over a model
// matrix; a rank-deficient design (perfectly aliased or constant columns)
// fails with ErrSingularDesign instead of returning an arbitrary solution
// from the null space.
//
// Analyze locates the stationary point xₛ = −½·B⁻¹·b of the fitted
// quadratic and classifies it from the curvature eigenvalues: Maximum
// (all negative), Minimum (all positive) or Saddle (mixed, or any
// eigenvalue within tolerance of zero — a flat ridge direction makes the
// classification unreliable, so the conservative answer is Saddle).
//
// Gradient and SteepestAscent support sequential experimentation: the
// normalized ascent direction at the design center is the canonical path
// toward the optimum region when the current design is far from it.
package surface
