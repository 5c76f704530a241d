package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/doe/anova"
	"github.com/katalvlaran/doe/design"
	"github.com/katalvlaran/doe/desirability"
	"github.com/katalvlaran/doe/model"
	"github.com/katalvlaran/doe/report"
)

// analyzedDesign builds the 2² textbook design with responses attached.
func analyzedDesign(t *testing.T) *design.Design {
	t.Helper()
	d, err := design.FullFactorial([]design.Factor{
		{Name: "Temperature", Low: 140, High: 180, Units: "°C"},
		{Name: "Pressure", Low: 2, High: 6, Units: "bar"},
	}, design.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, d.AttachResponses("yield", []float64{45, 58, 52, 70}))

	return d
}

// TestCSVRunTable checks the header layout and a decoded data row.
func TestCSVRunTable(t *testing.T) {
	d := analyzedDesign(t)

	var buf bytes.Buffer
	require.NoError(t, report.CSVRunTable(&buf, d))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 runs

	assert.Equal(t, []string{
		"std_order", "run_order",
		"Temperature (coded)", "Pressure (coded)",
		"Temperature (°C)", "Pressure (bar)",
		"yield",
	}, records[0])

	// Run 1 in standard order: Temperature high, Pressure low.
	assert.Equal(t, []string{"1", "1", "1", "-1", "180", "2", "58"}, records[2])
}

func TestCSVRunTable_NilDesign(t *testing.T) {
	assert.ErrorIs(t, report.CSVRunTable(&bytes.Buffer{}, nil), report.ErrNilDesign)
}

// TestMarkdown_FullReport renders every section and spot-checks the
// rendered text rather than pinning the exact layout.
func TestMarkdown_FullReport(t *testing.T) {
	d := analyzedDesign(t)

	mm, err := model.Build(d, model.MainEffects(2))
	require.NoError(t, err)
	diag, err := model.Analyze(mm, model.DefaultDiagnosticsOptions())
	require.NoError(t, err)

	terms := append(model.MainEffects(2), model.Interactions(2, 2)...)
	estimates, err := anova.Estimates(d, "yield", terms)
	require.NoError(t, err)
	table, err := anova.Decompose(d, "yield", model.MainEffects(2))
	require.NoError(t, err)

	res := &desirability.Result{
		Point:        []float64{0.5, -0.25},
		Desirability: 0.82,
		Predicted:    map[string]float64{"yield": 67.3},
		PerResponse:  map[string]float64{"yield": 0.82},
		Evaluations:  121,
	}

	var buf bytes.Buffer
	err = report.NewMarkdown(&buf).
		Title("Reactor screening").
		RunTable(d).
		Diagnostics(diag).
		Effects(estimates).
		Anova(table).
		Optimum(res, d.Factors).
		Build()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Reactor screening")
	assert.Contains(t, out, "## Run table (coded units)")
	assert.Contains(t, out, "Orthogonal: yes")
	assert.Contains(t, out, "## Effect estimates")
	assert.Contains(t, out, "15.5") // main effect of Temperature
	assert.Contains(t, out, "## ANOVA")
	assert.Contains(t, out, "240.25") // SS for Temperature
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "## Recommended operating point")
	assert.Contains(t, out, "121 evaluations")
	assert.NotContains(t, out, "NaN") // undefined F/p cells render as dashes
}

// TestMarkdown_AliasSection appears only when aliasing exists.
func TestMarkdown_AliasSection(t *testing.T) {
	factors := make([]design.Factor, 4)
	for i := range factors {
		factors[i] = design.Factor{Name: string(rune('A' + i)), Low: -1, High: 1}
	}
	d, err := design.FractionalFactorial(factors, design.ResolutionIV, design.DefaultOptions())
	require.NoError(t, err)

	terms := append(model.MainEffects(4), model.Interactions(4, 2)...)
	mm, err := model.Build(d, terms)
	require.NoError(t, err)
	diag, err := model.Analyze(mm, model.DefaultDiagnosticsOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.NewMarkdown(&buf).Diagnostics(diag).Build())

	out := buf.String()
	assert.Contains(t, out, "Orthogonal: no")
	assert.Contains(t, out, "Aliased terms")
	assert.Contains(t, out, "AB")
	assert.Contains(t, out, "CD")
}
