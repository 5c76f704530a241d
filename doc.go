// Package doe is your in-memory workbench for planning, diagnosing and
// analyzing designed experiments — from run-matrix generation to
// response-surface optimization.
//
// 🚀 What is doe?
//
//	A pure, deterministic computation engine for Design of Experiments:
//		• Run matrices: full factorial, fractional factorial, central composite
//		• Design quality: orthogonality, correlation, D-efficiency, aliasing
//		• Effect estimation: main effects & interactions on balanced designs
//		• ANOVA: sum-of-squares decomposition, F-statistics, p-values
//		• Response surfaces: OLS quadratic fit, canonical analysis, steepest ascent
//		• Multi-response optimization: desirability functions, grid & pattern search
//
// ✨ Why choose doe?
//
//   - Stateless & pure – every function maps immutable inputs to fresh results
//   - Strict sentinels – every failure mode is a named error matched via errors.Is
//   - Deterministic – fixed traversal orders, reproducible optima, no hidden randomness
//   - Presentation-agnostic – plain data structures out; markdown/CSV adapters in report/
//
// Everything is organized as one package per concern:
//
//	design/       — factors, coded units, run-matrix generators
//	model/        — model-matrix expansion & design diagnostics
//	anova/        — effect estimation & ANOVA decomposition
//	surface/      — second-order model fitting & canonical analysis
//	desirability/ — desirability transforms & multi-response search
//	study/        — YAML study-file loader (factors, design, responses, goals)
//	report/       — markdown & CSV export of engine outputs
//
// Quick taste:
//
//	d, _ := design.FullFactorial(factors, design.DefaultOptions())
//	_ = d.AttachResponses("yield", []float64{45, 58, 52, 70})
//	eff, _ := anova.MainEffect(d, "yield", 0) // 15.5
//
// Dive into each package's doc.go for contracts, invariants and complexity.
//
//	go get github.com/katalvlaran/doe
package doe
