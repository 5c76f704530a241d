// SPDX-License-Identifier: MIT
// Package report: CSV export of design run tables.

package report

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/doe/design"
)

// ErrNilDesign indicates a nil design passed to an exporter.
var ErrNilDesign = errors.New("report: design is nil")

// CSVRunTable writes the design's run table as CSV: standard and run
// order, each factor's coded and natural level, then every attached
// response in name order.
//
// Column layout:
//
//	std_order, run_order,
//	<factor> (coded)…, <factor>…, <response>…
func CSVRunTable(w io.Writer, d *design.Design) error {
	if d == nil {
		return ErrNilDesign
	}
	responses := d.ResponseNames()

	header := []string{"std_order", "run_order"}
	for _, f := range d.Factors {
		header = append(header, f.Name+" (coded)")
	}
	for _, f := range d.Factors {
		name := f.Name
		if f.Units != "" {
			name += " (" + f.Units + ")"
		}
		header = append(header, name)
	}
	header = append(header, responses...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for _, run := range d.Runs {
		row = row[:0]
		row = append(row, strconv.Itoa(run.StdOrder), strconv.Itoa(run.RunOrder))
		for _, c := range run.Coded {
			row = append(row, formatValue(c))
		}
		for _, v := range run.Natural {
			row = append(row, formatValue(v))
		}
		for _, name := range responses {
			row = append(row, formatValue(run.Responses[name]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatValue renders a float compactly; NaN becomes an empty-ish dash
// so spreadsheets do not choke on it.
func formatValue(v float64) string {
	if v != v {
		return "-"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
