// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed species.yml
var speciesYAML []byte

// Species is one entry of the built-in plant species catalog.
type Species struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// LoadSpeciesCatalog parses the embedded species catalog.
func LoadSpeciesCatalog() ([]Species, error) {
	var catalog struct {
		Species []Species `yaml:"species"`
	}
	if err := yaml.Unmarshal(speciesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse species catalog: %w", err)
	}
	if len(catalog.Species) == 0 {
		return nil, fmt.Errorf("species catalog is empty")
	}
	return catalog.Species, nil
}
