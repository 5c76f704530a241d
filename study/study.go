// SPDX-License-Identifier: MIT
// Package study: YAML study files → typed engine inputs.

package study

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/doe/design"
	"github.com/katalvlaran/doe/desirability"
)

var (
	// ErrUnknownDesignType indicates a design.type outside
	// full-factorial / fractional-factorial / central-composite.
	ErrUnknownDesignType = errors.New("study: unknown design type")

	// ErrUnknownResolution indicates a resolution outside III–V (3–5).
	ErrUnknownResolution = errors.New("study: resolution must be 3, 4 or 5")

	// ErrUnknownProfileKind indicates a profile kind outside
	// maximize / minimize / target.
	ErrUnknownProfileKind = errors.New("study: unknown profile kind")

	// ErrNoFactors indicates a study file without a factors list.
	ErrNoFactors = errors.New("study: no factors declared")
)

// Study is a fully typed experimental plan: factors, the design to
// generate, observed responses keyed by standard run order, and the
// desirability profiles for optimization.
type Study struct {
	Name      string
	Factors   []design.Factor
	Design    DesignSpec
	Responses map[string][]float64
	Profiles  []desirability.Profile
}

// DesignSpec selects and parameterizes the design family.
type DesignSpec struct {
	Type         design.DesignType
	Resolution   design.Resolution
	Alpha        float64
	CenterPoints int
}

// rawStudy is the YAML wire shape; Parse normalizes it into Study.
type rawStudy struct {
	Name    string `yaml:"name"`
	Factors []struct {
		Name  string  `yaml:"name"`
		Low   float64 `yaml:"low"`
		High  float64 `yaml:"high"`
		Units string  `yaml:"units"`
	} `yaml:"factors"`
	Design struct {
		Type         string  `yaml:"type"`
		Resolution   int     `yaml:"resolution"`
		Alpha        float64 `yaml:"alpha"`
		CenterPoints int     `yaml:"center_points"`
	} `yaml:"design"`
	Responses map[string][]float64 `yaml:"responses"`
	Profiles  []struct {
		Response string  `yaml:"response"`
		Kind     string  `yaml:"kind"`
		Low      float64 `yaml:"low"`
		Target   float64 `yaml:"target"`
		High     float64 `yaml:"high"`
		Weight   float64 `yaml:"weight"`
		Exponent float64 `yaml:"exponent"`
	} `yaml:"profiles"`
}

// Load reads and parses a study file.
func Load(path string) (*Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("study: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes and normalizes them into a typed Study.
//
// Errors:
//   - a wrapped yaml error on malformed input;
//   - ErrNoFactors, ErrUnknownDesignType, ErrUnknownResolution,
//     ErrUnknownProfileKind on semantic problems.
func Parse(data []byte) (*Study, error) {
	var raw rawStudy
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("study: decode: %w", err)
	}
	if len(raw.Factors) == 0 {
		return nil, ErrNoFactors
	}

	s := &Study{
		Name:      raw.Name,
		Factors:   make([]design.Factor, 0, len(raw.Factors)),
		Responses: raw.Responses,
	}
	for _, f := range raw.Factors {
		s.Factors = append(s.Factors, design.Factor{
			Name:  f.Name,
			Low:   f.Low,
			High:  f.High,
			Units: f.Units,
		})
	}

	var err error
	if s.Design, err = parseDesignSpec(raw); err != nil {
		return nil, err
	}

	for _, p := range raw.Profiles {
		kind, err := parseKind(p.Kind)
		if err != nil {
			return nil, err
		}
		s.Profiles = append(s.Profiles, desirability.Profile{
			Response: p.Response,
			Kind:     kind,
			Low:      p.Low,
			Target:   p.Target,
			High:     p.High,
			Weight:   p.Weight,
			Exponent: p.Exponent,
		})
	}

	return s, nil
}

func parseDesignSpec(raw rawStudy) (DesignSpec, error) {
	spec := DesignSpec{
		Alpha:        raw.Design.Alpha,
		CenterPoints: raw.Design.CenterPoints,
	}
	switch raw.Design.Type {
	case "full-factorial", "":
		spec.Type = design.FullFactorialType
	case "fractional-factorial":
		spec.Type = design.FractionalFactorialType
		switch raw.Design.Resolution {
		case 3:
			spec.Resolution = design.ResolutionIII
		case 4:
			spec.Resolution = design.ResolutionIV
		case 5:
			spec.Resolution = design.ResolutionV
		default:
			return spec, ErrUnknownResolution
		}
	case "central-composite":
		spec.Type = design.CentralCompositeType
	default:
		return spec, ErrUnknownDesignType
	}

	return spec, nil
}

func parseKind(s string) (desirability.Kind, error) {
	switch s {
	case "maximize":
		return desirability.Maximize, nil
	case "minimize":
		return desirability.Minimize, nil
	case "target":
		return desirability.Target, nil
	default:
		return 0, ErrUnknownProfileKind
	}
}

// Generate builds the study's design and attaches every declared response
// vector in standard run order.
func (s *Study) Generate() (*design.Design, error) {
	var (
		d   *design.Design
		err error
	)
	switch s.Design.Type {
	case design.FractionalFactorialType:
		d, err = design.FractionalFactorial(s.Factors, s.Design.Resolution, design.DefaultOptions())
	case design.CentralCompositeType:
		d, err = design.CentralComposite(s.Factors, s.Design.Alpha, s.Design.CenterPoints, design.DefaultOptions())
	default:
		d, err = design.FullFactorial(s.Factors, design.DefaultOptions())
	}
	if err != nil {
		return nil, err
	}

	for name, values := range s.Responses {
		if err = d.AttachResponses(name, values); err != nil {
			return nil, fmt.Errorf("study: response %q: %w", name, err)
		}
	}

	return d, nil
}
