// Package design generates experimental run matrices and converts between
// natural factor units and coded levels.
//
// The package covers three classical families of two-level screening and
// response-surface designs:
//
//   - Full factorial
//
//   - Runs:   2^k for k factors.
//
//   - Levels: every factor at −1/+1; run i's level for factor j comes
//     from bit j of the standard-order index (0→−1, 1→+1).
//
//   - Use when k is small and every interaction must stay estimable.
//
//   - Fractional factorial
//
//   - Runs:   2^(k−q) where q columns are derived from base columns.
//
//   - Levels: derived column = elementwise product of a generator word
//     of base columns, chosen from a minimum-aberration table
//     keyed by (k, resolution).
//
//   - Resolution III/IV/V controls which effect orders are confounded
//     (generated factors with 2-/3-/4-factor interactions).
//
//   - Central composite (CCD)
//
//   - Runs:   2^k factorial block + 2k axial runs (±alpha on exactly one
//     factor) + centerPoints all-zero runs.
//
//   - The axial and center blocks make pure quadratic terms estimable,
//     enabling second-order surface fitting.
//
// # Data model
//
// A Design is immutable after generation: the factor list, run count and
// coded levels never change. Observed responses are attached per run by
// the analysis caller via AttachResponses; this is the only sanctioned
// mutation and it never resizes the run table.
//
// Coded levels obey the invariant: every entry is −1, 0 or +1, except the
// axial block of a CCD where exactly one entry per run is ±alpha.
//
// # Errors
//
//	ErrNoFactors               - empty factor list.
//	ErrTooManyFactors          - 2^k would exceed the configured maximum.
//	ErrDegenerateFactor        - Low == High or non-finite bounds.
//	ErrDuplicateFactor         - two factors share a name.
//	ErrResolutionUnachievable  - no generator word set for (k, resolution).
//	ErrBadAlpha                - alpha ≤ 0 or non-finite.
//	ErrBadCenterPoints         - negative center-point count.
//	ErrResponseLength          - response vector length ≠ run count.
//	ErrUnknownResponse         - response name never attached.
//
// All are matched via errors.Is; none of the generators panic on user
// input.
package design
