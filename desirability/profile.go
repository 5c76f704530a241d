// SPDX-License-Identifier: MIT
// Package desirability: per-response desirability transforms.

package desirability

import "math"

// Kind selects the shape of a desirability transform.
type Kind int

const (
	// Maximize: larger is better; 0 at/below Low, 1 at/above Target.
	Maximize Kind = iota

	// Minimize: smaller is better; 1 at/below Target, 0 at/above High.
	Minimize

	// Target: best at Target, 0 outside [Low, High].
	Target
)

// String returns a stable name for the kind.
func (k Kind) String() string {
	switch k {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "target"
	}
}

// Profile maps one response's predicted value onto a [0,1] desirability.
//
// The anchors depend on the kind: Maximize ramps over [Low, Target],
// Minimize over [Target, High], and the Target kind rises on
// [Low, Target] then falls on [Target, High]. Weight sets the response's
// share in the geometric mean and Exponent shapes the power law between
// the anchor points; zero (or negative) values of either select 1.
type Profile struct {
	Response string
	Kind     Kind
	Low      float64
	Target   float64
	High     float64
	Weight   float64
	Exponent float64
}

func (p Profile) weight() float64 {
	if p.Weight <= 0 {
		return 1
	}

	return p.Weight
}

func (p Profile) exponent() float64 {
	if p.Exponent <= 0 {
		return 1
	}

	return p.Exponent
}

// validate rejects non-finite or inverted anchors. Only the anchors the
// kind actually uses are constrained: Maximize never reads High and
// Minimize never reads Low.
func (p Profile) validate() error {
	for _, v := range []float64{p.Low, p.Target, p.High} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadProfile
		}
	}
	switch p.Kind {
	case Maximize:
		if p.Low >= p.Target {
			return ErrBadProfile
		}
	case Minimize:
		if p.Target >= p.High {
			return ErrBadProfile
		}
	default: // Target
		if p.Target <= p.Low || p.Target >= p.High {
			return ErrBadProfile
		}
	}

	return nil
}

// Value maps a response value onto [0,1] by the profile's piecewise power
// law, clamped to 0 or 1 outside the anchor points.
func (p Profile) Value(v float64) float64 {
	e := p.exponent()
	switch p.Kind {
	case Maximize:
		switch {
		case v <= p.Low:
			return 0
		case v >= p.Target:
			return 1
		default:
			return math.Pow((v-p.Low)/(p.Target-p.Low), e)
		}
	case Minimize:
		switch {
		case v <= p.Target:
			return 1
		case v >= p.High:
			return 0
		default:
			return math.Pow((p.High-v)/(p.High-p.Target), e)
		}
	default: // Target
		switch {
		case v <= p.Low || v >= p.High:
			return 0
		case v == p.Target:
			return 1
		case v < p.Target:
			return math.Pow((v-p.Low)/(p.Target-p.Low), e)
		default:
			return math.Pow((p.High-v)/(p.High-p.Target), e)
		}
	}
}

// Overall combines per-response desirabilities into the weighted
// geometric mean. Any exact 0 vetoes the whole point: a batch that fails
// one response completely is worthless no matter how the others score.
// Empty or mismatched inputs score 0 rather than panicking.
func Overall(values []float64, profiles []Profile) float64 {
	if len(values) == 0 || len(values) != len(profiles) {
		return 0
	}
	// Hard veto before any arithmetic.
	for _, d := range values {
		if d == 0 {
			return 0
		}
	}
	var logSum, weightSum, w float64
	for i, d := range values {
		w = profiles[i].weight()
		logSum += w * math.Log(d)
		weightSum += w
	}

	return math.Exp(logSum / weightSum)
}
