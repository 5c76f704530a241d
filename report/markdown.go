// SPDX-License-Identifier: MIT
// Package report: markdown rendering of engine outputs.

package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/katalvlaran/doe/anova"
	"github.com/katalvlaran/doe/design"
	"github.com/katalvlaran/doe/desirability"
	"github.com/katalvlaran/doe/model"
)

// Markdown accumulates report sections and renders them on Build.
// Sections appear in call order; every section is optional.
type Markdown struct {
	md *markdown.Markdown
}

// NewMarkdown starts a report written to w.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{md: markdown.NewMarkdown(w)}
}

// Title adds the top-level heading.
func (r *Markdown) Title(name string) *Markdown {
	r.md.H1(name)

	return r
}

// RunTable adds the design's run table section.
func (r *Markdown) RunTable(d *design.Design) *Markdown {
	responses := d.ResponseNames()
	header := []string{"Std", "Run"}
	for _, f := range d.Factors {
		header = append(header, f.Name)
	}
	header = append(header, responses...)

	rows := make([][]string, 0, len(d.Runs))
	for _, run := range d.Runs {
		row := []string{strconv.Itoa(run.StdOrder), strconv.Itoa(run.RunOrder)}
		for _, c := range run.Coded {
			row = append(row, formatValue(c))
		}
		for _, name := range responses {
			row = append(row, formatValue(run.Responses[name]))
		}
		rows = append(rows, row)
	}

	r.md.H2("Run table (coded units)")
	r.md.Table(markdown.TableSet{Header: header, Rows: rows})

	return r
}

// Diagnostics adds the design-quality section.
func (r *Markdown) Diagnostics(diag *model.Diagnostics) *Markdown {
	r.md.H2("Design diagnostics")
	orth := "no"
	if diag.Orthogonal {
		orth = "yes"
	}
	r.md.PlainTextf("Orthogonal: %s. D-efficiency: %s.", orth, formatValue(diag.DEfficiency))

	if len(diag.AliasPairs) > 0 {
		rows := make([][]string, 0, len(diag.AliasPairs))
		for _, p := range diag.AliasPairs {
			rows = append(rows, []string{p.A.Label, p.B.Label, formatValue(p.Correlation)})
		}
		r.md.H3("Aliased terms")
		r.md.Table(markdown.TableSet{Header: []string{"Term", "Aliased with", "Correlation"}, Rows: rows})
	}

	return r
}

// Effects adds the estimated-effects section.
func (r *Markdown) Effects(estimates []anova.EffectEstimate) *Markdown {
	rows := make([][]string, 0, len(estimates))
	for _, est := range estimates {
		rows = append(rows, []string{est.Term.Label, formatValue(est.Effect)})
	}
	r.md.H2("Effect estimates")
	r.md.Table(markdown.TableSet{Header: []string{"Term", "Effect"}, Rows: rows})

	return r
}

// Anova adds the variance-decomposition table.
func (r *Markdown) Anova(table *anova.Table) *Markdown {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []string{
			row.Source,
			strconv.Itoa(row.DF),
			formatValue(row.SumSq),
			formatValue(row.MeanSq),
			formatValue(row.F),
			formatValue(row.P),
		})
	}
	r.md.H2("ANOVA")
	r.md.Table(markdown.TableSet{Header: []string{"Source", "DF", "SS", "MS", "F", "p"}, Rows: rows})

	return r
}

// Optimum adds the desirability-optimization section.
func (r *Markdown) Optimum(res *desirability.Result, factors []design.Factor) *Markdown {
	r.md.H2("Recommended operating point")
	rows := make([][]string, 0, len(res.Point))
	for i, x := range res.Point {
		name := "x" + strconv.Itoa(i+1)
		if i < len(factors) {
			name = factors[i].Name
		}
		rows = append(rows, []string{name, formatValue(x)})
	}
	r.md.Table(markdown.TableSet{Header: []string{"Factor", "Coded level"}, Rows: rows})

	r.md.PlainTextf("Overall desirability: %s (%d evaluations).",
		formatValue(res.Desirability), res.Evaluations)

	if len(res.Predicted) > 0 {
		rows = rows[:0]
		for _, name := range sortedKeys(res.Predicted) {
			rows = append(rows, []string{
				name,
				formatValue(res.Predicted[name]),
				formatValue(res.PerResponse[name]),
			})
		}
		r.md.Table(markdown.TableSet{Header: []string{"Response", "Predicted", "Desirability"}, Rows: rows})
	}

	return r
}

// Build renders every accumulated section to the writer.
func (r *Markdown) Build() error {
	return r.md.Build()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
