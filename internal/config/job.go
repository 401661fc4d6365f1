package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes one batch packing request for the CLI: a bin template and
// the items to load into it.
type Job struct {
	Bin   JobBin    `yaml:"bin"`
	Items []JobItem `yaml:"items"`
}

// JobBin is the YAML shape of a BinTemplate plus its nominal target
// volume in m^3.
type JobBin struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Depth           float64 `yaml:"depth"`
	MaxWeight       float64 `yaml:"max_weight"`
	TargetVolumeCBM float64 `yaml:"target_volume_cbm"`
}

// JobItem is the YAML shape of one Item.
type JobItem struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Depth         float64 `yaml:"depth"`
	Weight        float64 `yaml:"weight"`
	AllowRotation bool    `yaml:"allow_rotation"`
	Fragility     int     `yaml:"fragility"`
}

// LoadJob reads path (YAML, or JSON since JSON is a YAML subset) into a
// Job and validates the required fields are present.
func (l *Loader) LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	if err := l.validateJob(job); err != nil {
		return Job{}, fmt.Errorf("invalid job file: %w", err)
	}
	return job, nil
}

func (l *Loader) validateJob(job Job) error {
	if job.Bin.Width <= 0 || job.Bin.Height <= 0 || job.Bin.Depth <= 0 || job.Bin.MaxWeight <= 0 {
		return fmt.Errorf("bin dimensions and max_weight must be positive")
	}
	if job.Bin.TargetVolumeCBM <= 0 {
		return fmt.Errorf("bin target_volume_cbm must be positive")
	}
	if len(job.Items) == 0 {
		return fmt.Errorf("at least one item must be defined")
	}
	for i, it := range job.Items {
		if it.Width <= 0 || it.Height <= 0 || it.Depth <= 0 || it.Weight <= 0 {
			return fmt.Errorf("item %d (%s): dimensions and weight must be positive", i, it.ID)
		}
		if it.Fragility < 1 || it.Fragility > 5 {
			return fmt.Errorf("item %d (%s): fragility must be in 1..5", i, it.ID)
		}
	}
	return nil
}
