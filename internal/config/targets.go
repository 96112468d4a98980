package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedTarget is one entry of the optional targets file applied at startup.
// A zero threshold means the store's default.
type SeedTarget struct {
	URL                     string  `yaml:"url"`
	LatencyThresholdSeconds float64 `yaml:"latency_threshold_seconds"`
}

type targetsFile struct {
	Targets []SeedTarget `yaml:"targets"`
}

// LoadTargets reads the YAML seed file. Entries are upserted into the store
// at boot; the file is never written back.
func LoadTargets(path string) ([]SeedTarget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f targetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse targets file: %w", err)
	}
	for i, t := range f.Targets {
		if t.URL == "" {
			return nil, fmt.Errorf("targets[%d]: url is required", i)
		}
	}
	return f.Targets, nil
}
