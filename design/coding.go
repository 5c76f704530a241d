// SPDX-License-Identifier: MIT
// Package design: coding transforms between natural factor units and coded
// levels. Coding rescales a factor's [Low, High] interval onto [−1, +1] so
// that every factor contributes on a common, unit-free axis.

package design

import "math"

// Coded converts a natural-unit value to the coded scale of f.
//
// Contract:
//   - f must be non-degenerate: finite bounds with Low != High.
//
// Formula: (v − center) / halfRange, where center = (Low+High)/2 and
// halfRange = (High−Low)/2. Low maps to −1, High to +1, center to 0;
// values outside the bounds map beyond ±1 (axial points rely on this).
//
// Complexity: O(1).
func Coded(f Factor, v float64) (float64, error) {
	if err := validateFactor(f); err != nil {
		return 0, err
	}
	center := (f.Low + f.High) / 2
	halfRange := (f.High - f.Low) / 2

	return (v - center) / halfRange, nil
}

// Natural converts a coded level back to natural units of f.
// Inverse of Coded; the same degeneracy contract applies.
//
// Complexity: O(1).
func Natural(f Factor, coded float64) (float64, error) {
	if err := validateFactor(f); err != nil {
		return 0, err
	}
	center := (f.Low + f.High) / 2
	halfRange := (f.High - f.Low) / 2

	return center + coded*halfRange, nil
}

// validateFactor rejects factors that have no coded axis: non-finite
// bounds, or Low == High (zero half-range).
func validateFactor(f Factor) error {
	if math.IsNaN(f.Low) || math.IsInf(f.Low, 0) ||
		math.IsNaN(f.High) || math.IsInf(f.High, 0) {
		return ErrDegenerateFactor
	}
	if f.Low == f.High {
		return ErrDegenerateFactor
	}

	return nil
}

// validateFactors applies validateFactor to every factor, checks name
// uniqueness, and rejects empty lists.
//
// Complexity: O(k) time, O(k) extra space for the uniqueness set.
func validateFactors(factors []Factor) error {
	if len(factors) == 0 {
		return ErrNoFactors
	}
	seen := make(map[string]struct{}, len(factors))
	var (
		i  int
		ok bool
	)
	for i = 0; i < len(factors); i++ {
		if err := validateFactor(factors[i]); err != nil {
			return err
		}
		if _, ok = seen[factors[i].Name]; ok {
			return ErrDuplicateFactor
		}
		seen[factors[i].Name] = struct{}{}
	}

	return nil
}

// naturalLevels decodes one run's coded levels into natural units.
// Factors are assumed pre-validated by the calling generator.
func naturalLevels(factors []Factor, coded []float64) []float64 {
	out := make([]float64, len(factors))
	var center, halfRange float64
	for j := 0; j < len(factors); j++ {
		center = (factors[j].Low + factors[j].High) / 2
		halfRange = (factors[j].High - factors[j].Low) / 2
		out[j] = center + coded[j]*halfRange
	}

	return out
}
