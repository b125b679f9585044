package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadSweep reads a sweep file and fills in the defaults.
func LoadSweep(path string) (*SweepConfig, error) {
	var sc SweepConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("loading sweep %s: %w", path, err)
	}
	sc.applyDefaults()
	return &sc, nil
}
