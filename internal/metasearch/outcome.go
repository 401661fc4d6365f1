package metasearch

import (
	"github.com/tvanriper/cargo3d/internal/placement"
	"github.com/tvanriper/cargo3d/internal/scoring"
)

// Outcome is one trial's (or the meta-search's best) result: the bins in
// placement order and whatever items never got placed.
type Outcome struct {
	Bins     [][]placement.Placed
	Unpacked []placement.Item
}

// evaluated bundles an Outcome with its derived per-bin metrics and
// scalar score, so the scan loop only computes them once per trial.
type evaluated struct {
	outcome Outcome
	metrics []scoring.Metrics
	score   float64
}

func evaluate(o Outcome, bin placement.Bin, targetVolume float64) evaluated {
	metrics := make([]scoring.Metrics, len(o.Bins))
	for i, b := range o.Bins {
		metrics[i] = scoring.Compute(b, bin.Width, bin.Depth, bin.MaxWeight, targetVolume)
	}

	var unpackedVol float64
	for _, it := range o.Unpacked {
		unpackedVol += it.Width * it.Height * it.Depth
	}

	return evaluated{
		outcome: o,
		metrics: metrics,
		score:   scoring.OutcomeScore(metrics, unpackedVol),
	}
}

func qualifiesForEarlyExit(e evaluated, targetEfficiency float64) bool {
	if len(e.outcome.Unpacked) != 0 {
		return false
	}
	if len(e.metrics) == 0 {
		return false
	}
	var sumEff float64
	for _, m := range e.metrics {
		sumEff += m.Efficiency
		if m.BalanceWarning || m.Weight6050Warning {
			return false
		}
	}
	avg := sumEff / float64(len(e.metrics))
	return avg >= targetEfficiency
}
