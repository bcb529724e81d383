package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quadkit/ctrlkit/internal/matrix"
	"github.com/quadkit/ctrlkit/internal/numeric"
)

// Profile is a named set of controller gains. Scalar gains are plain
// YAML numbers; matrix-valued gains are embedded as bracketed row-major
// string literals so the files stay exchangeable with existing
// deployments.
type Profile struct {
	// Name uniquely identifies the profile.
	Name string `yaml:"name"`

	// Description explains what the profile tunes.
	Description string `yaml:"description,omitempty"`

	// Gains holds scalar gain values keyed by gain name.
	Gains map[string]float64 `yaml:"gains,omitempty"`

	// Matrices holds the matrix-valued gains.
	Matrices []MatrixField `yaml:"matrices,omitempty"`
}

// MatrixField is one matrix-valued entry of a profile. Data carries the
// bracketed row-major literal.
type MatrixField struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	Data string `yaml:"data"`
}

// ValidationError reports one invalid field of a profile.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadProfile reads and decodes a profile from a YAML file. Decoding is
// strict: unknown keys fail rather than being dropped silently.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the profile's structural fields and parses every
// matrix literal. All errors are collected (not fail-fast) so a bad
// file is reported in one pass.
func (p *Profile) Validate() []ValidationError {
	var errs []ValidationError

	if p.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "profile name is required",
		})
	}

	seen := make(map[string]bool)
	for i, mf := range p.Matrices {
		field := fmt.Sprintf("matrices[%d]", i)
		if mf.Name == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "matrix name is required",
			})
		} else if seen[mf.Name] {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate matrix name: %q", mf.Name),
			})
		}
		seen[mf.Name] = true

		if mf.Rows <= 0 || mf.Cols <= 0 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid shape %dx%d", mf.Rows, mf.Cols),
			})
			continue
		}
		if _, err := matrix.Parse(mf.Data, mf.Rows, mf.Cols); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".data",
				Message: err.Error(),
			})
		}
	}

	return errs
}

// Matrix parses and returns the named matrix field.
func (p *Profile) Matrix(name string) (*matrix.Dense, error) {
	for _, mf := range p.Matrices {
		if mf.Name == name {
			m, err := matrix.Parse(mf.Data, mf.Rows, mf.Cols)
			if err != nil {
				return nil, fmt.Errorf("matrix %q: %w", name, err)
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("matrix %q: not present in profile %q", name, p.Name)
}

// HasGain reports whether the named scalar gain is present.
func (p *Profile) HasGain(name string) bool {
	return numeric.ContainsKey(p.Gains, name)
}
