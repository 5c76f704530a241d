package design

import "sort"

// Factor describes one experimental variable in natural units.
// A Factor is immutable once a design has been generated from it.
type Factor struct {
	// Name identifies the factor; must be unique within a design.
	Name string

	// Low and High are the natural-unit bounds mapped to coded −1 and +1.
	Low, High float64

	// Units is an optional display unit (e.g. "°C", "rpm").
	Units string
}

// DesignType enumerates the supported run-matrix families.
type DesignType int

const (
	// FullFactorialType: 2^k runs, all ±1 combinations.
	FullFactorialType DesignType = iota

	// FractionalFactorialType: 2^(k−q) runs with generator-word confounding.
	FractionalFactorialType

	// CentralCompositeType: factorial + axial + center blocks.
	CentralCompositeType
)

// String returns a stable human-readable name for the design type.
func (t DesignType) String() string {
	switch t {
	case FullFactorialType:
		return "full-factorial"
	case FractionalFactorialType:
		return "fractional-factorial"
	case CentralCompositeType:
		return "central-composite"
	default:
		return "unknown"
	}
}

// Resolution classifies a fractional design by which effect orders are
// confounded with each other. Resolution III confounds generated factors
// with 2-factor interactions, IV with 3-factor, V with 4-factor.
type Resolution int

const (
	ResolutionIII Resolution = 3
	ResolutionIV  Resolution = 4
	ResolutionV   Resolution = 5
)

// Run is a single experimental run.
// Coded and Natural are aligned with Design.Factors by index.
type Run struct {
	// StdOrder is the canonical (Yates) position of the run, 0..n−1.
	StdOrder int

	// RunOrder is the execution position. Generators emit RunOrder ==
	// StdOrder; randomization is a caller concern, not an engine one.
	RunOrder int

	// Coded holds the coded level per factor: −1/0/+1, or ±alpha on the
	// axial block of a central composite design.
	Coded []float64

	// Natural holds the decoded natural-unit level per factor.
	Natural []float64

	// Responses maps response name → observed value for this run.
	// Nil until the analysis caller attaches observations.
	Responses map[string]float64
}

// Design is an immutable run table plus the factor list it was built from.
// The run count is determined by Type and the factor count at generation
// time and is never mutated afterward; responses are attached per run by
// the analysis caller (AttachResponses).
type Design struct {
	Factors []Factor
	Runs    []Run
	Type    DesignType

	// Resolution is set only for fractional factorial designs.
	Resolution Resolution

	// Alpha is the axial distance; set only for central composite designs.
	Alpha float64

	// CenterPoints is the number of all-zero runs; set only for CCDs.
	CenterPoints int
}

// AttachResponses records one observed value per run for the named
// response, indexed by standard run order. The vector length must equal
// the run count (ErrResponseLength). Attaching the same name twice
// overwrites the previous observations; the run table itself is never
// resized.
func (d *Design) AttachResponses(name string, values []float64) error {
	if len(values) != len(d.Runs) {
		return ErrResponseLength
	}
	var i int
	for i = 0; i < len(d.Runs); i++ {
		if d.Runs[i].Responses == nil {
			d.Runs[i].Responses = make(map[string]float64, 1)
		}
		d.Runs[i].Responses[name] = values[i]
	}

	return nil
}

// ResponseVector returns the observed values for name in standard order.
// Fails with ErrUnknownResponse if any run lacks an observation for name.
func (d *Design) ResponseVector(name string) ([]float64, error) {
	out := make([]float64, len(d.Runs))
	var (
		i  int
		v  float64
		ok bool
	)
	for i = 0; i < len(d.Runs); i++ {
		if d.Runs[i].Responses == nil {
			return nil, ErrUnknownResponse
		}
		if v, ok = d.Runs[i].Responses[name]; !ok {
			return nil, ErrUnknownResponse
		}
		out[i] = v
	}

	return out, nil
}

// ResponseNames returns the set of response names present on every run,
// in lexicographic order. An empty design or a design without attached
// responses yields an empty slice.
func (d *Design) ResponseNames() []string {
	if len(d.Runs) == 0 || d.Runs[0].Responses == nil {
		return nil
	}
	names := make([]string, 0, len(d.Runs[0].Responses))
	for name := range d.Runs[0].Responses {
		if _, err := d.ResponseVector(name); err == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// NaturalRuns returns every run's natural-unit levels in standard order,
// one row per run. The rows are copies; mutating them cannot corrupt the
// design.
func (d *Design) NaturalRuns() [][]float64 {
	out := make([][]float64, len(d.Runs))
	for i := range d.Runs {
		row := make([]float64, len(d.Runs[i].Natural))
		copy(row, d.Runs[i].Natural)
		out[i] = row
	}

	return out
}

// CodedColumn returns factor j's coded levels in standard order.
func (d *Design) CodedColumn(j int) ([]float64, error) {
	if j < 0 || j >= len(d.Factors) {
		return nil, ErrFactorOutOfRange
	}
	col := make([]float64, len(d.Runs))
	for i := 0; i < len(d.Runs); i++ {
		col[i] = d.Runs[i].Coded[j]
	}

	return col, nil
}
