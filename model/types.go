package model

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilDesign indicates a nil *design.Design was passed to Build.
	ErrNilDesign = errors.New("model: design is nil")

	// ErrNoTerms indicates an empty term set where at least one term is
	// required (a model matrix must have at least one column).
	ErrNoTerms = errors.New("model: empty term set")

	// ErrTermOutOfRange indicates a term referencing a factor index
	// outside the design's factor list.
	ErrTermOutOfRange = errors.New("model: term factor index out of range")

	// ErrNilMatrix indicates a nil *ModelMatrix passed to Analyze.
	ErrNilMatrix = errors.New("model: model matrix is nil")
)

// TermKind discriminates the three supported term families.
type TermKind int

const (
	// MainEffect is a single factor's coded column (degree 1).
	MainEffect TermKind = iota

	// Interaction is the product of 2–3 factor columns.
	Interaction

	// Quadratic is a single factor's squared coded column (degree 2).
	Quadratic
)

// Term is one column of a model matrix: a main effect, an interaction, or
// a quadratic term. Factors holds the zero-based factor indices involved;
// a Quadratic term lists its factor once.
type Term struct {
	Label   string
	Kind    TermKind
	Factors []int
}

// Degree returns the polynomial degree of the term: 1 for a main effect,
// the factor count for an interaction, 2 for a quadratic.
func (t Term) Degree() int {
	switch t.Kind {
	case Quadratic:
		return 2
	case Interaction:
		return len(t.Factors)
	default:
		return 1
	}
}

// factorLabel names factor j as A, B, C…; beyond Z it falls back to F27,
// F28, … (design generators cap k well below that in practice).
func factorLabel(j int) string {
	if j >= 0 && j < 26 {
		return string(rune('A' + j))
	}

	return "F" + strconv.Itoa(j+1)
}

// MainEffects returns the k main-effect terms in factor order.
func MainEffects(k int) []Term {
	terms := make([]Term, 0, k)
	for j := 0; j < k; j++ {
		terms = append(terms, Term{
			Label:   factorLabel(j),
			Kind:    MainEffect,
			Factors: []int{j},
		})
	}

	return terms
}

// Interactions returns every `order`-way interaction among k factors, in
// lexicographic factor order. An order greater than k (or below 2) yields
// an empty set — there is no such term, which is not an error.
func Interactions(k, order int) []Term {
	if order < 2 || order > k {
		return nil
	}
	var (
		terms []Term
		idx   = make([]int, order)
		build func(pos, from int)
	)
	build = func(pos, from int) {
		if pos == order {
			factors := make([]int, order)
			copy(factors, idx)
			var label strings.Builder
			for _, j := range factors {
				label.WriteString(factorLabel(j))
			}
			terms = append(terms, Term{Label: label.String(), Kind: Interaction, Factors: factors})

			return
		}
		for j := from; j < k; j++ {
			idx[pos] = j
			build(pos+1, j+1)
		}
	}
	build(0, 0)

	return terms
}

// Quadratics returns the k pure quadratic terms in factor order.
func Quadratics(k int) []Term {
	terms := make([]Term, 0, k)
	for j := 0; j < k; j++ {
		terms = append(terms, Term{
			Label:   factorLabel(j) + "^2",
			Kind:    Quadratic,
			Factors: []int{j},
		})
	}

	return terms
}

// SecondOrder returns the full second-order term set: main effects,
// 2-way interactions and quadratics, in that order. This is the model a
// central composite design exists to estimate.
func SecondOrder(k int) []Term {
	terms := MainEffects(k)
	terms = append(terms, Interactions(k, 2)...)
	terms = append(terms, Quadratics(k)...)

	return terms
}
