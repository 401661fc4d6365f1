// Package config loads YAML overrides for the meta-search tunables and
// the batch job files the CLI reads (one bin template and its items).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tvanriper/cargo3d/internal/metasearch"
)

// Loader reads and validates YAML configuration files.
type Loader struct{}

// NewLoader constructs a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// metaSearchOverrides mirrors metasearch.Config with zero-valued fields
// meaning "use the default". Only fields present in the YAML override the
// corresponding default.
type metaSearchOverrides struct {
	MaxIterations    int     `yaml:"max_iterations"`
	StagnationLimit  int     `yaml:"stagnation_limit"`
	TargetEfficiency float64 `yaml:"target_efficiency"`
}

// LoadMetaSearchConfig reads path as YAML and returns metasearch.Config
// with metasearch.DefaultConfig's values for any field the file omits.
func (l *Loader) LoadMetaSearchConfig(path string) (metasearch.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metasearch.Config{}, fmt.Errorf("failed to read meta-search config: %w", err)
	}

	var overrides metaSearchOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return metasearch.Config{}, fmt.Errorf("failed to parse meta-search config: %w", err)
	}

	cfg := metasearch.DefaultConfig
	if overrides.MaxIterations > 0 {
		cfg.MaxIterations = overrides.MaxIterations
	}
	if overrides.StagnationLimit > 0 {
		cfg.StagnationLimit = overrides.StagnationLimit
	}
	if overrides.TargetEfficiency > 0 {
		cfg.TargetEfficiency = overrides.TargetEfficiency
	}

	if err := l.validateMetaSearchConfig(cfg); err != nil {
		return metasearch.Config{}, fmt.Errorf("invalid meta-search config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) validateMetaSearchConfig(cfg metasearch.Config) error {
	if cfg.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive")
	}
	if cfg.StagnationLimit <= 0 {
		return fmt.Errorf("stagnation_limit must be positive")
	}
	if cfg.TargetEfficiency <= 0 {
		return fmt.Errorf("target_efficiency must be positive")
	}
	return nil
}
