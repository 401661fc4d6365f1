package cargo3d

import "github.com/tvanriper/cargo3d/internal/metasearch"

// MetaSearchConfig is the meta-search's tunable constants: how many
// trials to run, how many consecutive non-improving trials before giving
// up, and the efficiency threshold that triggers an early exit.
type MetaSearchConfig = metasearch.Config

// DefaultMetaSearchConfig is the default tuning: 100 iterations, a
// stagnation limit of 15, and a 98% target efficiency.
var DefaultMetaSearchConfig = metasearch.DefaultConfig
