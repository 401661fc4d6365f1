// Package trial sorts a fresh copy of the item list per a named strategy,
// optionally jitters ties, and drives the placement engine across
// successive bins until all items are placed or a bin goes unfilled.
package trial

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/tvanriper/cargo3d/internal/placement"
)

// Strategy names an item-ordering rule. The zero value is not valid; use
// one of the named constants.
type Strategy string

const (
	VolumeDesc    Strategy = "volume_desc"
	WeightDesc    Strategy = "weight_desc"
	DensityDesc   Strategy = "density_desc"
	FragilityDesc Strategy = "fragility_desc"
	AreaDesc      Strategy = "area_desc"
)

// Strategies lists the five base strategies in the cycle order the
// meta-search iterates them.
var Strategies = [5]Strategy{VolumeDesc, WeightDesc, DensityDesc, FragilityDesc, AreaDesc}

// tieEpsilon is the primary-key tolerance within which two items are
// considered tied for jitter purposes.
const tieEpsilon = 0.1

func sortKey(it placement.Item, s Strategy) float64 {
	switch s {
	case VolumeDesc:
		return it.Width * it.Height * it.Depth
	case WeightDesc:
		return it.Weight
	case DensityDesc:
		return it.Weight / (it.Width * it.Height * it.Depth)
	case FragilityDesc:
		return float64(it.Fragility)
	case AreaDesc:
		return it.Width * it.Depth
	default:
		return 0
	}
}

// Sort returns a fresh copy of items ordered descending by the strategy's
// key. When jitter is true, runs of items whose keys are within tieEpsilon
// of their neighbor are shuffled uniformly using rng; pure (non-jittered)
// calls are deterministic regardless of rng.
func Sort(items []placement.Item, strat Strategy, jitter bool, rng *rand.Rand) []placement.Item {
	type entry struct {
		it  placement.Item
		key float64
	}
	entries := make([]entry, len(items))
	for i, it := range items {
		entries[i] = entry{it, sortKey(it, strat)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key > entries[j].key
	})

	if jitter {
		i := 0
		for i < len(entries) {
			j := i + 1
			for j < len(entries) && math.Abs(entries[j-1].key-entries[j].key) < tieEpsilon {
				j++
			}
			if j-i > 1 {
				rng.Shuffle(j-i, func(a, b int) {
					entries[i+a], entries[i+b] = entries[i+b], entries[i+a]
				})
			}
			i = j
		}
	}

	out := make([]placement.Item, len(entries))
	for i, e := range entries {
		out[i] = e.it
	}
	return out
}
