// SPDX-License-Identifier: MIT
// Package design: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the design
// package. All generators MUST return these sentinels and tests MUST check
// them via errors.Is. No generator panics on user-triggered conditions.

package design

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "design: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrNoFactors is returned when a generator receives an empty factor list.
	ErrNoFactors = errors.New("design: no factors")

	// ErrTooManyFactors is returned when 2^k runs would exceed the configured
	// maximum (Options.MaxFactors). Screening designs beyond that size stop
	// being useful run tables and almost certainly indicate a caller bug.
	ErrTooManyFactors = errors.New("design: too many factors for requested design")

	// ErrDegenerateFactor signals a factor whose Low and High coincide or are
	// not finite; such a factor has no coded axis.
	ErrDegenerateFactor = errors.New("design: degenerate factor bounds")

	// ErrDuplicateFactor signals two factors sharing the same name.
	ErrDuplicateFactor = errors.New("design: duplicate factor name")

	// ErrResolutionUnachievable is returned when no minimum-aberration
	// generator word set exists for the requested (k, resolution) pair.
	ErrResolutionUnachievable = errors.New("design: resolution unachievable for factor count")

	// ErrBadAlpha signals a non-positive or non-finite axial distance.
	ErrBadAlpha = errors.New("design: axial alpha must be positive and finite")

	// ErrBadCenterPoints signals a negative center-point count.
	ErrBadCenterPoints = errors.New("design: center points must be non-negative")

	// ErrResponseLength is returned by AttachResponses when the value vector
	// length differs from the design's run count.
	ErrResponseLength = errors.New("design: response length does not match run count")

	// ErrUnknownResponse is returned by ResponseVector for a name that was
	// never attached to the design.
	ErrUnknownResponse = errors.New("design: unknown response name")

	// ErrFactorOutOfRange indicates a factor index outside [0..k-1].
	ErrFactorOutOfRange = errors.New("design: factor index out of range")
)
