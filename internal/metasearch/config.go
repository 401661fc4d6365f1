// Package metasearch iterates item-ordering strategies and jitter
// settings, scores each resulting trial, and tracks the best outcome seen
// so far, applying early-exit and stagnation exit criteria.
package metasearch

// Config holds the meta-search tunables. internal/config may load
// overrides from YAML for the CLI.
type Config struct {
	MaxIterations    int
	StagnationLimit  int
	TargetEfficiency float64
}

// DefaultConfig is the default tuning.
var DefaultConfig = Config{
	MaxIterations:    100,
	StagnationLimit:  15,
	TargetEfficiency: 98,
}

// jitterStartIteration is the first iteration (0-indexed) at which tie
// jitter is enabled; iterations before it are pure-deterministic.
const jitterStartIteration = 5
