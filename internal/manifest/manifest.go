// Package manifest loads example-program descriptors from YAML: which
// entry point to run, what input bytes (if any) to feed the bitstream
// input device, and what output or normal form to expect.
//
// Grounded on a BenchmarkSpec/LoadSpec-style YAML config convention,
// adapted from a single-spec-per-file model to one YAML document listing
// every example, matching how lamukoi's driver program enumerates its
// sample programs.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Example describes one runnable program manifest entry.
type Example struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	Entry            string `yaml:"entry"`
	Input            string `yaml:"input,omitempty"`
	ExpectOutput     string `yaml:"expect_output,omitempty"`
	ExpectNormalForm string `yaml:"expect_normal_form,omitempty"`
	MaxOutputBytes   int    `yaml:"max_output_bytes,omitempty"`
}

// Manifest is the full list of examples in one YAML document.
type Manifest struct {
	Examples []Example `yaml:"examples"`
}

// Load reads and parses a manifest YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	for i, ex := range m.Examples {
		if ex.Name == "" {
			return nil, fmt.Errorf("manifest: example #%d missing name", i)
		}
		if ex.Entry == "" {
			return nil, fmt.Errorf("manifest: example %q missing entry", ex.Name)
		}
	}
	return &m, nil
}

// Find returns the example with the given name.
func (m *Manifest) Find(name string) (Example, bool) {
	for _, ex := range m.Examples {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}
