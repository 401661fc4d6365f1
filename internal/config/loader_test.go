package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetaSearchConfigAppliesOverridesOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iterations: 50\n"), 0o600))

	cfg, err := NewLoader().LoadMetaSearchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 15, cfg.StagnationLimit)   // default retained
	assert.Equal(t, 98.0, cfg.TargetEfficiency) // default retained
}

func TestLoadJobValidatesRequiredFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bin:
  width: 100
  height: 100
  depth: 100
  max_weight: 1000
  target_volume_cbm: 0.5
items:
  - id: a
    width: 10
    height: 10
    depth: 10
    weight: 5
    allow_rotation: true
    fragility: 3
`), 0o600))

	job, err := NewLoader().LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, job.Bin.Width)
	require.Len(t, job.Items, 1)
	assert.Equal(t, "a", job.Items[0].ID)
}

func TestLoadJobRejectsMissingItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bin:
  width: 100
  height: 100
  depth: 100
  max_weight: 1000
  target_volume_cbm: 0.5
items: []
`), 0o600))

	_, err := NewLoader().LoadJob(path)
	assert.Error(t, err)
}
