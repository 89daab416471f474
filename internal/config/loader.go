package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// ParseSpecies decodes a species.yaml document.
func ParseSpecies(data []byte) (*SpeciesConfig, error) {
	var sc SpeciesConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ParseCareers decodes a careers.yaml document.
func ParseCareers(data []byte) (*CareersConfig, error) {
	var cc CareersConfig
	if err := yaml.Unmarshal(data, &cc); err != nil {
		return nil, err
	}
	return &cc, nil
}

// LoadAll reads the full data asset from dir. Used when an overridden asset
// directory is supplied; library consumers normally go through the embedded
// defaults instead.
func LoadAll(dir string) (*SpeciesConfig, *CareersConfig, error) {
	var sc SpeciesConfig
	var cc CareersConfig
	if err := loadYAML(filepath.Join(dir, "species.yaml"), &sc); err != nil {
		return nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "careers.yaml"), &cc); err != nil {
		return nil, nil, err
	}
	return &sc, &cc, nil
}
