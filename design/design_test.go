package design_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/doe/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoFactors returns a fresh pair of valid factors for generator tests.
func twoFactors() []design.Factor {
	return []design.Factor{
		{Name: "temperature", Low: 150, High: 200, Units: "°C"},
		{Name: "pressure", Low: 1, High: 3, Units: "bar"},
	}
}

// TestCoded_Endpoints verifies Low→−1, High→+1, center→0.
func TestCoded_Endpoints(t *testing.T) {
	f := design.Factor{Name: "temperature", Low: 150, High: 200}

	for _, tc := range []struct {
		name    string
		natural float64
		want    float64
	}{
		{"low", 150, -1},
		{"high", 200, +1},
		{"center", 175, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := design.Coded(f, tc.natural)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestCoding_RoundTrip checks Natural(Coded(v)) == v across the range,
// including points beyond the ±1 bounds (axial levels rely on this).
func TestCoding_RoundTrip(t *testing.T) {
	f := design.Factor{Name: "speed", Low: -4, High: 10}
	for _, v := range []float64{-4, -1.5, 0, 3, 10, 12.5} {
		c, err := design.Coded(f, v)
		require.NoError(t, err)
		back, err := design.Natural(f, c)
		require.NoError(t, err)
		assert.InDelta(t, v, back, 1e-12, "round trip through coded units")
	}
}

// TestCoded_DegenerateFactor ensures zero-width or non-finite bounds error.
func TestCoded_DegenerateFactor(t *testing.T) {
	for _, f := range []design.Factor{
		{Name: "flat", Low: 5, High: 5},
		{Name: "nan", Low: math.NaN(), High: 1},
		{Name: "inf", Low: 0, High: math.Inf(1)},
	} {
		_, err := design.Coded(f, 0)
		assert.ErrorIs(t, err, design.ErrDegenerateFactor, f.Name)
	}
}

// TestFullFactorial_RunCountAndLevels checks n == 2^k and the bit
// derivation: factor 0 alternates fastest, levels are exactly ±1.
func TestFullFactorial_RunCountAndLevels(t *testing.T) {
	d, err := design.FullFactorial(twoFactors(), design.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d.Runs, 4)
	assert.Equal(t, design.FullFactorialType, d.Type)

	wantCoded := [][]float64{
		{-1, -1},
		{+1, -1},
		{-1, +1},
		{+1, +1},
	}
	for i, run := range d.Runs {
		assert.Equal(t, i, run.StdOrder)
		assert.Equal(t, i, run.RunOrder)
		assert.Equal(t, wantCoded[i], run.Coded, "run %d coded levels", i)
	}
}

// TestFullFactorial_NaturalLevels verifies the decoded run table.
func TestFullFactorial_NaturalLevels(t *testing.T) {
	d, err := design.FullFactorial(twoFactors(), design.DefaultOptions())
	require.NoError(t, err)

	// Run 0 is all-low, last run is all-high.
	assert.InDelta(t, 150.0, d.Runs[0].Natural[0], 1e-12)
	assert.InDelta(t, 1.0, d.Runs[0].Natural[1], 1e-12)
	assert.InDelta(t, 200.0, d.Runs[3].Natural[0], 1e-12)
	assert.InDelta(t, 3.0, d.Runs[3].Natural[1], 1e-12)
}

// TestFullFactorial_Validation covers the configuration error class.
func TestFullFactorial_Validation(t *testing.T) {
	t.Run("no factors", func(t *testing.T) {
		_, err := design.FullFactorial(nil, design.DefaultOptions())
		assert.ErrorIs(t, err, design.ErrNoFactors)
	})

	t.Run("too many factors", func(t *testing.T) {
		factors := make([]design.Factor, 13)
		for i := range factors {
			factors[i] = design.Factor{Name: string(rune('a' + i)), Low: 0, High: 1}
		}
		_, err := design.FullFactorial(factors, design.DefaultOptions())
		assert.ErrorIs(t, err, design.ErrTooManyFactors)
	})

	t.Run("duplicate names", func(t *testing.T) {
		factors := []design.Factor{
			{Name: "x", Low: 0, High: 1},
			{Name: "x", Low: 2, High: 3},
		}
		_, err := design.FullFactorial(factors, design.DefaultOptions())
		assert.ErrorIs(t, err, design.ErrDuplicateFactor)
	})

	t.Run("custom cap", func(t *testing.T) {
		_, err := design.FullFactorial(twoFactors(), design.Options{MaxFactors: 1})
		assert.ErrorIs(t, err, design.ErrTooManyFactors)
	})
}

// TestFractionalFactorial_GeneratedColumn verifies the generator word
// D = ABC for the 2^(4−1) resolution IV design: 8 runs and the fourth
// column equal to the elementwise product of the first three.
func TestFractionalFactorial_GeneratedColumn(t *testing.T) {
	factors := []design.Factor{
		{Name: "A", Low: -1, High: 1},
		{Name: "B", Low: -1, High: 1},
		{Name: "C", Low: -1, High: 1},
		{Name: "D", Low: -1, High: 1},
	}
	d, err := design.FractionalFactorial(factors, design.ResolutionIV, design.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d.Runs, 8, "2^(4-1) has 8 runs")
	assert.Equal(t, design.ResolutionIV, d.Resolution)

	for i, run := range d.Runs {
		prod := run.Coded[0] * run.Coded[1] * run.Coded[2]
		assert.Equal(t, prod, run.Coded[3], "run %d: D must equal ABC", i)
	}
}

// TestFractionalFactorial_ResolutionIII checks the saturated 2^(7−4)
// design: 8 runs for 7 factors, every generated column a ±1 product.
func TestFractionalFactorial_ResolutionIII(t *testing.T) {
	factors := make([]design.Factor, 7)
	for i := range factors {
		factors[i] = design.Factor{Name: string(rune('A' + i)), Low: 0, High: 1}
	}
	d, err := design.FractionalFactorial(factors, design.ResolutionIII, design.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d.Runs, 8)

	for _, run := range d.Runs {
		for j, c := range run.Coded {
			assert.True(t, c == -1 || c == +1, "factor %d level must be ±1, got %v", j, c)
		}
	}
}

// TestFractionalFactorial_Unachievable covers (k, resolution) pairs with
// no minimum-aberration table entry.
func TestFractionalFactorial_Unachievable(t *testing.T) {
	factors := make([]design.Factor, 8)
	for i := range factors {
		factors[i] = design.Factor{Name: string(rune('A' + i)), Low: 0, High: 1}
	}
	_, err := design.FractionalFactorial(factors, design.ResolutionV, design.DefaultOptions())
	assert.ErrorIs(t, err, design.ErrResolutionUnachievable)

	_, err = design.FractionalFactorial(factors[:2], design.ResolutionIII, design.DefaultOptions())
	assert.ErrorIs(t, err, design.ErrResolutionUnachievable, "k=2 has no fraction")
}

// TestCentralComposite_RunCount checks the combinatorial law
// 2^k + 2k + centerPoints on the textbook k=2, alpha=1.414, cp=3 case
// (11 runs).
func TestCentralComposite_RunCount(t *testing.T) {
	d, err := design.CentralComposite(twoFactors(), 1.414, 3, design.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, d.Runs, 11)
	assert.Equal(t, design.CentralCompositeType, d.Type)
	assert.Equal(t, 1.414, d.Alpha)
	assert.Equal(t, 3, d.CenterPoints)
}

// TestCentralComposite_Blocks verifies the factorial/axial/center
// structure of the concatenated run table.
func TestCentralComposite_Blocks(t *testing.T) {
	const alpha = 1.414
	d, err := design.CentralComposite(twoFactors(), alpha, 2, design.DefaultOptions())
	require.NoError(t, err)

	// Factorial block: all entries ±1.
	for i := 0; i < 4; i++ {
		for _, c := range d.Runs[i].Coded {
			assert.True(t, c == -1 || c == +1, "factorial block run %d", i)
		}
	}

	// Axial block: exactly one entry ±alpha, the rest zero.
	wantAxial := [][]float64{
		{-alpha, 0},
		{+alpha, 0},
		{0, -alpha},
		{0, +alpha},
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, wantAxial[i], d.Runs[4+i].Coded, "axial run %d", i)
	}

	// Center block: all zeros.
	for i := 8; i < 10; i++ {
		assert.Equal(t, []float64{0, 0}, d.Runs[i].Coded, "center run %d", i)
	}
}

// TestCentralComposite_Validation covers alpha and center-point guards.
func TestCentralComposite_Validation(t *testing.T) {
	for name, alpha := range map[string]float64{
		"zero": 0, "negative": -1, "nan": math.NaN(), "inf": math.Inf(1),
	} {
		t.Run("alpha "+name, func(t *testing.T) {
			_, err := design.CentralComposite(twoFactors(), alpha, 0, design.DefaultOptions())
			assert.ErrorIs(t, err, design.ErrBadAlpha)
		})
	}

	_, err := design.CentralComposite(twoFactors(), 1.5, -1, design.DefaultOptions())
	assert.ErrorIs(t, err, design.ErrBadCenterPoints)
}

// TestAttachResponses_RoundTrip attaches a response vector and reads it
// back in standard order.
func TestAttachResponses_RoundTrip(t *testing.T) {
	d, err := design.FullFactorial(twoFactors(), design.DefaultOptions())
	require.NoError(t, err)

	y := []float64{45, 58, 52, 70}
	require.NoError(t, d.AttachResponses("yield", y))

	got, err := d.ResponseVector("yield")
	require.NoError(t, err)
	assert.Equal(t, y, got)
	assert.Equal(t, []string{"yield"}, d.ResponseNames())
}

// TestAttachResponses_Errors covers length mismatch and unknown names.
func TestAttachResponses_Errors(t *testing.T) {
	d, err := design.FullFactorial(twoFactors(), design.DefaultOptions())
	require.NoError(t, err)

	assert.ErrorIs(t, d.AttachResponses("yield", []float64{1, 2}), design.ErrResponseLength)

	_, err = d.ResponseVector("missing")
	assert.ErrorIs(t, err, design.ErrUnknownResponse)
}

// TestCodedColumn guards the factor index and returns standard-order levels.
func TestCodedColumn(t *testing.T) {
	d, err := design.FullFactorial(twoFactors(), design.DefaultOptions())
	require.NoError(t, err)

	col, err := d.CodedColumn(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, +1, -1, +1}, col)

	_, err = d.CodedColumn(2)
	assert.ErrorIs(t, err, design.ErrFactorOutOfRange)
}
