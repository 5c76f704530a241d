// Package report renders engine outputs into portable formats: CSV for
// the run table and markdown for a complete analysis report.
//
// The analysis packages return plain data and own no presentation; this
// package is the one place formatting lives, so a different front end
// can replace it without touching the engine.
package report
