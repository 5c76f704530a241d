package desirability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/doe/desirability"
	"github.com/katalvlaran/doe/model"
	"github.com/katalvlaran/doe/surface"
)

// peakModel has its maximum f = 10 at (0.5, 0):
// f = 9.75 + x1 − x1² − x2².
func peakModel() *surface.Model {
	return &surface.Model{
		Intercept:    9.75,
		Terms:        model.SecondOrder(2),
		Coefficients: []float64{1, 0, 0, -1, -1},
		FactorCount:  2,
	}
}

func unitBox() desirability.SearchSpace {
	return desirability.SearchSpace{Min: []float64{-1, -1}, Max: []float64{1, 1}}
}

// TestProfileValue covers the three shapes, clamping and the exponent.
// Maximize ramps over [Low, Target] and Minimize over [Target, High];
// the unused outer anchor never shifts the curve.
func TestProfileValue(t *testing.T) {
	t.Run("maximize", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Maximize, Low: 0, Target: 10, High: 10}
		assert.Equal(t, 0.0, p.Value(-5))
		assert.Equal(t, 0.0, p.Value(0))
		assert.InDelta(t, 0.5, p.Value(5), 1e-12)
		assert.Equal(t, 1.0, p.Value(10))
		assert.Equal(t, 1.0, p.Value(99))
	})

	t.Run("maximize saturates at target below high", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Maximize, Low: 0, Target: 5, High: 10}
		assert.Equal(t, 1.0, p.Value(5))
		assert.Equal(t, 1.0, p.Value(7))
		assert.InDelta(t, 0.5, p.Value(2.5), 1e-12)
	})

	t.Run("minimize", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Minimize, Target: 0, High: 10}
		assert.Equal(t, 1.0, p.Value(-5))
		assert.Equal(t, 1.0, p.Value(0))
		assert.InDelta(t, 0.5, p.Value(5), 1e-12)
		assert.Equal(t, 0.0, p.Value(10))
	})

	t.Run("minimize saturates at target above low", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Minimize, Low: 0, Target: 4, High: 10}
		assert.Equal(t, 1.0, p.Value(2))
		assert.Equal(t, 1.0, p.Value(4))
		assert.InDelta(t, 0.5, p.Value(7), 1e-12)
	})

	t.Run("target", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Target, Low: 0, Target: 4, High: 10}
		assert.Equal(t, 0.0, p.Value(0))
		assert.Equal(t, 1.0, p.Value(4))
		assert.Equal(t, 0.0, p.Value(10))
		assert.InDelta(t, 0.5, p.Value(2), 1e-12)
		assert.InDelta(t, 0.5, p.Value(7), 1e-12)
	})

	t.Run("monotone toward target", func(t *testing.T) {
		p := desirability.Profile{Kind: desirability.Target, Low: 0, Target: 5, High: 10}
		prev := -1.0
		for _, v := range []float64{0.5, 1, 2, 3, 4, 4.9, 5} {
			d := p.Value(v)
			assert.Greater(t, d, prev, "value %v", v)
			prev = d
		}
	})

	t.Run("exponent sharpens the ramp", func(t *testing.T) {
		flat := desirability.Profile{Kind: desirability.Maximize, Low: 0, Target: 10}
		sharp := desirability.Profile{Kind: desirability.Maximize, Low: 0, Target: 10, Exponent: 2}
		assert.InDelta(t, 0.25, sharp.Value(5), 1e-12)
		assert.Less(t, sharp.Value(5), flat.Value(5))
	})
}

// TestOverall pins the geometric mean and the hard veto.
func TestOverall(t *testing.T) {
	two := []desirability.Profile{{}, {}}

	t.Run("geometric mean", func(t *testing.T) {
		assert.InDelta(t, 0.5, desirability.Overall([]float64{0.25, 1}, two), 1e-12)
	})

	t.Run("hard veto", func(t *testing.T) {
		assert.Equal(t, 0.0, desirability.Overall([]float64{0, 1}, two))
		assert.Equal(t, 0.0, desirability.Overall([]float64{1, 0}, two))
	})

	t.Run("weights shift the mean", func(t *testing.T) {
		weighted := []desirability.Profile{{Weight: 3}, {Weight: 1}}
		// (0.25³·1)^(1/4) = 0.125^... — heavier weight drags toward 0.25.
		assert.Less(t,
			desirability.Overall([]float64{0.25, 1}, weighted),
			desirability.Overall([]float64{0.25, 1}, two))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, desirability.Overall(nil, nil))
	})

	t.Run("mismatched lengths score zero, never panic", func(t *testing.T) {
		assert.Equal(t, 0.0, desirability.Overall([]float64{0.5, 0.5, 0.5}, two))
		assert.Equal(t, 0.0, desirability.Overall([]float64{0.5}, two))
	})
}

// TestOptimize_Grid finds the exact lattice optimum: with resolution 5
// the peak (0.5, 0) sits on the lattice and scores desirability 1.
func TestOptimize_Grid(t *testing.T) {
	profiles := []desirability.Profile{
		{Response: "yield", Kind: desirability.Maximize, Low: 0, Target: 10, High: 10},
	}
	opts := desirability.DefaultOptions()
	opts.GridResolution = 5

	res, err := desirability.Optimize([]*surface.Model{peakModel()}, profiles, unitBox(), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0}, res.Point)
	assert.Equal(t, 1.0, res.Desirability)
	assert.Equal(t, 25, res.Evaluations)
	assert.InDelta(t, 10, res.Predicted["yield"], 1e-12)
	assert.Equal(t, 1.0, res.PerResponse["yield"])
}

// TestOptimize_GridDeterministicTieBreak: when many lattice points clamp
// to desirability 1, the lowest flat index (factor 0 fastest) wins for
// any worker count.
func TestOptimize_GridDeterministicTieBreak(t *testing.T) {
	m := &surface.Model{ // f = 10 − x1² − x2², plateau once f ≥ 8
		Intercept:    10,
		Terms:        model.SecondOrder(2),
		Coefficients: []float64{0, 0, 0, -1, -1},
		FactorCount:  2,
	}
	profiles := []desirability.Profile{
		{Response: "y", Kind: desirability.Maximize, Low: 0, Target: 8, High: 10},
	}

	for _, workers := range []int{1, 3, 8} {
		opts := desirability.DefaultOptions()
		opts.GridResolution = 5
		opts.Workers = workers

		res, err := desirability.Optimize([]*surface.Model{m}, profiles, unitBox(), opts)
		require.NoError(t, err)
		// (−1,−1) scores f = 8 → clamped to 1, and is lattice index 0.
		assert.Equal(t, []float64{-1, -1}, res.Point, "workers=%d", workers)
		assert.Equal(t, 1.0, res.Desirability, "workers=%d", workers)
	}
}

// TestOptimize_Pattern converges to the interior peak without a lattice.
func TestOptimize_Pattern(t *testing.T) {
	profiles := []desirability.Profile{
		{Response: "yield", Kind: desirability.Maximize, Low: 0, Target: 10, High: 10},
	}
	opts := desirability.DefaultOptions()
	opts.Strategy = desirability.PatternSearch

	res, err := desirability.Optimize([]*surface.Model{peakModel()}, profiles, unitBox(), opts)
	require.NoError(t, err)

	require.Len(t, res.Point, 2)
	assert.InDelta(t, 0.5, res.Point[0], 1e-4)
	assert.InDelta(t, 0, res.Point[1], 1e-4)
	assert.InDelta(t, 1, res.Desirability, 1e-6)
	assert.Greater(t, res.Evaluations, 0)
}

// TestOptimize_Budget: both strategies refuse rather than overrun.
func TestOptimize_Budget(t *testing.T) {
	profiles := []desirability.Profile{
		{Response: "y", Kind: desirability.Maximize, Low: 0, Target: 10, High: 10},
	}

	t.Run("grid upfront", func(t *testing.T) {
		opts := desirability.DefaultOptions()
		opts.GridResolution = 11 // 121 points
		opts.MaxEvaluations = 100
		_, err := desirability.Optimize([]*surface.Model{peakModel()}, profiles, unitBox(), opts)
		assert.ErrorIs(t, err, desirability.ErrBudgetExceeded)
	})

	t.Run("pattern mid-flight", func(t *testing.T) {
		opts := desirability.DefaultOptions()
		opts.Strategy = desirability.PatternSearch
		opts.MaxEvaluations = 3
		_, err := desirability.Optimize([]*surface.Model{peakModel()}, profiles, unitBox(), opts)
		assert.ErrorIs(t, err, desirability.ErrBudgetExceeded)
	})
}

// TestOptimize_Validation covers the refusal paths.
func TestOptimize_Validation(t *testing.T) {
	good := []desirability.Profile{{Kind: desirability.Maximize, Low: 0, Target: 10, High: 10}}
	m := peakModel()

	t.Run("no profiles", func(t *testing.T) {
		_, err := desirability.Optimize([]*surface.Model{m}, nil, unitBox(), desirability.DefaultOptions())
		assert.ErrorIs(t, err, desirability.ErrNoProfiles)
	})

	t.Run("model count mismatch", func(t *testing.T) {
		_, err := desirability.Optimize(nil, good, unitBox(), desirability.DefaultOptions())
		assert.ErrorIs(t, err, desirability.ErrModelMismatch)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		bad := []desirability.Profile{{Kind: desirability.Maximize, Low: 10, Target: 0}}
		_, err := desirability.Optimize([]*surface.Model{m}, bad, unitBox(), desirability.DefaultOptions())
		assert.ErrorIs(t, err, desirability.ErrBadProfile)
	})

	t.Run("target outside bounds", func(t *testing.T) {
		bad := []desirability.Profile{{Kind: desirability.Target, Low: 0, Target: 11, High: 10}}
		_, err := desirability.Optimize([]*surface.Model{m}, bad, unitBox(), desirability.DefaultOptions())
		assert.ErrorIs(t, err, desirability.ErrBadProfile)
	})

	t.Run("bad space", func(t *testing.T) {
		space := desirability.SearchSpace{Min: []float64{1, 1}, Max: []float64{-1, -1}}
		_, err := desirability.Optimize([]*surface.Model{m}, good, space, desirability.DefaultOptions())
		assert.ErrorIs(t, err, desirability.ErrBadSpace)
	})

	t.Run("bad resolution", func(t *testing.T) {
		opts := desirability.DefaultOptions()
		opts.GridResolution = 1
		_, err := desirability.Optimize([]*surface.Model{m}, good, unitBox(), opts)
		assert.ErrorIs(t, err, desirability.ErrBadResolution)
	})
}
