package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AirlineProfile is one airline entry of the generator profiles file
type AirlineProfile struct {
	Code        string `yaml:"code"`
	NumericCode string `yaml:"numericCode"`
}

// GeneratorProfiles is the YAML document that seeds the message generator
type GeneratorProfiles struct {
	Airlines     []AirlineProfile `yaml:"airlines"`
	Destinations []string         `yaml:"destinations"`
	Airport      string           `yaml:"airport"`
}

// LoadGeneratorProfiles reads generator profiles from a YAML file
func LoadGeneratorProfiles(path string) (*GeneratorProfiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read generator profiles: %w", err)
	}

	var profiles GeneratorProfiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse generator profiles %s: %w", path, err)
	}

	for i, airline := range profiles.Airlines {
		if len(airline.Code) != 2 || len(airline.NumericCode) != 3 {
			return nil, fmt.Errorf("airline %d in %s: code must be 2 characters and numericCode 3 digits", i, path)
		}
	}

	return &profiles, nil
}
