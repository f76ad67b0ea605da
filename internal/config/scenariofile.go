package config

import (
	"fmt"
	"os"

	"github.com/theirongolddev/growthsim/internal/model"

	"gopkg.in/yaml.v3"
)

// ScenarioFile is a portable YAML description of a comparison session.
//
//	a:
//	  starting_balance: 20000
//	  monthly_contribution: 700
//	  annual_rate: 0.06
//	  years: 15
//	b: ...        # optional
type ScenarioFile struct {
	Name string               `yaml:"name,omitempty"`
	A    model.ScenarioInput  `yaml:"a"`
	B    *model.ScenarioInput `yaml:"b,omitempty"`
}

// LoadScenarioFile reads and validates a scenario file.
func LoadScenarioFile(path string) (ScenarioFile, error) {
	var sf ScenarioFile

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied path is the point
	if err != nil {
		return sf, fmt.Errorf("reading scenario file: %w", err)
	}

	if err := yaml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if err := sf.A.Validate(); err != nil {
		return sf, fmt.Errorf("scenario file %s, scenario a: %w", path, err)
	}
	if sf.B != nil {
		if err := sf.B.Validate(); err != nil {
			return sf, fmt.Errorf("scenario file %s, scenario b: %w", path, err)
		}
	}
	return sf, nil
}

// SaveScenarioFile writes sf as YAML.
func SaveScenarioFile(path string, sf ScenarioFile) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("encoding scenario file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // scenario files are not secret
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
