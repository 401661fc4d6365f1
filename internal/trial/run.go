package trial

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/tvanriper/cargo3d/internal/placement"
)

// Result is one trial's raw output: the items placed in each successive
// bin, in placement order, and whatever never got placed anywhere.
type Result struct {
	Bins     [][]placement.Placed
	Unpacked []placement.Item
}

// Run sorts items per strat (jittering ties when jitter is true) and
// repeatedly invokes the placement engine, feeding each bin's leftovers
// into the next bin, until no items remain or a bin places nothing.
func Run(items []placement.Item, bin placement.Bin, strat Strategy, jitter bool, rng *rand.Rand, log zerolog.Logger) Result {
	remaining := Sort(items, strat, jitter, rng)

	var result Result
	for len(remaining) > 0 {
		placed, leftover := placement.PackOneBin(remaining, bin, log)
		if len(placed) == 0 {
			result.Unpacked = append(result.Unpacked, leftover...)
			break
		}
		result.Bins = append(result.Bins, placed)
		remaining = leftover
	}
	return result
}
