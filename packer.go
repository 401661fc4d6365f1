// Package cargo3d is a 3D container-loading optimizer: given a multiset
// of rectangular cartons and a container template, it produces an ordered
// placement of each carton across one or more containers that respects
// geometric non-overlap, weight capacity, and physical-plausibility rules
// (support, fragility, gravity, balance, longitudinal weight
// distribution), while minimizing container count and maximizing
// volumetric utilization.
//
// The search is heuristic, not exact: a meta-loop explores several item
// orderings and a randomized tie-jitter perturbation, scoring each
// resulting placement and keeping the best. See internal/metasearch,
// internal/trial, and internal/placement for the three layers of the
// search.
package cargo3d

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tvanriper/cargo3d/internal/logging"
	"github.com/tvanriper/cargo3d/internal/metasearch"
	"github.com/tvanriper/cargo3d/internal/placement"
	"github.com/tvanriper/cargo3d/internal/scoring"
)

// Packer accumulates Items against one BinTemplate and runs the
// meta-search to produce a packing Outcome. A Packer owns its Item list
// and shrunk template for the duration of a run; Items passed to AddItem
// are never mutated.
type Packer struct {
	template BinTemplate
	shrunk   shrunkBin
	items    []Item

	config   MetaSearchConfig
	logger   zerolog.Logger
	parallel bool
	seed     uint64
}

// Option configures a Packer at construction time.
type Option func(*Packer)

// WithLogger attaches a zerolog.Logger for placement/meta-search
// diagnostics. Without this option, logging is disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Packer) { p.logger = l }
}

// WithMetaSearchConfig overrides the default meta-search tunables.
func WithMetaSearchConfig(cfg MetaSearchConfig) Option {
	return func(p *Packer) { p.config = cfg }
}

// WithParallel enables running the meta-search's trials concurrently.
// Each trial still gets its own seeded RNG, so results are reproducible
// for a given seed regardless of this option.
func WithParallel(enabled bool) Option {
	return func(p *Packer) { p.parallel = enabled }
}

// WithSeed fixes the meta-search's base RNG seed. Trial i derives its own
// seed from seed+i, so changing the seed changes every jittered trial but
// never the first five pure-deterministic ones.
func WithSeed(seed uint64) Option {
	return func(p *Packer) { p.seed = seed }
}

// NewPacker constructs a Packer for the given BinTemplate and nominal
// target volume (in m^3, used only to normalize the efficiency metric).
// The template is internally shrunk by a cubic safety factor before any
// placement is attempted.
func NewPacker(template BinTemplate, targetVolumeCBM float64, opts ...Option) (*Packer, error) {
	if err := template.validate(); err != nil {
		return nil, err
	}
	if !positiveFinite(targetVolumeCBM) {
		return nil, ErrInvalidTargetVolume
	}

	p := &Packer{
		template: template,
		shrunk:   newShrunkBin(template, targetVolumeCBM),
		config:   DefaultMetaSearchConfig,
		logger:   logging.Disabled(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// AddItem adds one Item to the packer's accumulated list.
func (p *Packer) AddItem(item Item) error {
	if err := item.validate(); err != nil {
		return err
	}
	p.items = append(p.items, item)
	return nil
}

// PackAll runs the meta-search over the accumulated items and returns the
// best outcome found. An empty item list returns an empty-but-valid
// outcome rather than an error.
func (p *Packer) PackAll() Outcome {
	if len(p.items) == 0 {
		return Outcome{RunID: uuid.New(), Results: []BinResult{}, Unpacked: []Item{}}
	}

	placementItems := make([]placement.Item, len(p.items))
	for i, it := range p.items {
		placementItems[i] = toPlacementItem(it)
	}

	bin := placement.Bin{
		Width:     p.shrunk.width,
		Height:    p.shrunk.height,
		Depth:     p.shrunk.depth,
		MaxWeight: p.shrunk.maxWeight,
	}

	res, state := metasearch.Run(placementItems, bin, p.shrunk.targetVolume, p.config, p.seed, p.parallel, p.logger)
	p.logger.Info().Str("state", string(state)).Int("bins", len(res.Bins)).Int("unpacked", len(res.Unpacked)).Msg("pack_all finished")

	results := make([]BinResult, len(res.Bins))
	for i, placedBin := range res.Bins {
		m := scoring.Compute(placedBin, p.shrunk.width, p.shrunk.depth, p.shrunk.maxWeight, p.shrunk.targetVolume)
		results[i] = buildBinResult(i+1, placedBin, m)
	}

	unpacked := make([]Item, len(res.Unpacked))
	for i, it := range res.Unpacked {
		unpacked[i] = fromPlacementItem(it)
	}

	return Outcome{RunID: uuid.New(), Results: results, Unpacked: unpacked}
}

func buildBinResult(k int, items []placement.Placed, m scoring.Metrics) BinResult {
	packed := make([]PackedItem, len(items))
	for i, it := range items {
		packed[i] = toPackedItem(it)
	}
	return BinResult{
		BinID:                 binID(k),
		Items:                 packed,
		TotalWeight:           m.TotalWeight,
		Efficiency:            m.Efficiency,
		TotalCBM:              m.TotalCBM,
		EmptyCBM:              m.EmptyCBM,
		EmptyPercent:          m.EmptyPercent,
		CartonCount:           m.CartonCount,
		WeightCapacityPercent: m.WeightCapacityPercent,
		CenterOfGravityX:      m.CenterOfGravityX,
		CenterOfGravityZ:      m.CenterOfGravityZ,
		BalanceWarning:        m.BalanceWarning,
		Weight6050Warning:     m.Weight6050Warning,
	}
}
