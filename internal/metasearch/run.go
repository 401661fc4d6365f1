package metasearch

import (
	"context"
	"math/rand/v2"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tvanriper/cargo3d/internal/placement"
	"github.com/tvanriper/cargo3d/internal/trial"
)

// Run iterates cfg.MaxIterations trials, cycling the five base strategies
// and enabling tie jitter from iteration jitterStartIteration onward, and
// returns the best-scoring outcome, ending the scan early once it is good
// enough or once it stops improving for cfg.StagnationLimit trials in a
// row.
//
// In both modes every trial for the configured iteration count is computed
// first, each with its own PCG seeded from seed+i, and the sequential
// best-tracking scan below then runs over the completed results in
// iteration order; an early exit or stagnation ends the scan, not the
// trial computation. When parallel is true the trials are computed
// concurrently (bounded to GOMAXPROCS), so the same seed produces the same
// winning outcome whether or not parallel is set.
func Run(items []placement.Item, bin placement.Bin, targetVolume float64, cfg Config, seed uint64, parallel bool, log zerolog.Logger) (Outcome, State) {
	if parallel {
		results := runTrialsParallel(items, bin, cfg, seed, log)
		return scan(results, bin, targetVolume, cfg, items, log)
	}
	results := runTrialsSequential(items, bin, cfg, seed, log)
	return scan(results, bin, targetVolume, cfg, items, log)
}

func runTrialsSequential(items []placement.Item, bin placement.Bin, cfg Config, seed uint64, log zerolog.Logger) []trial.Result {
	results := make([]trial.Result, cfg.MaxIterations)
	for i := 0; i < cfg.MaxIterations; i++ {
		results[i] = runOneTrial(items, bin, cfg, seed, i, log)
	}
	return results
}

func runTrialsParallel(items []placement.Item, bin placement.Bin, cfg Config, seed uint64, log zerolog.Logger) []trial.Result {
	results := make([]trial.Result, cfg.MaxIterations)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < cfg.MaxIterations; i++ {
		i := i
		g.Go(func() error {
			results[i] = runOneTrial(items, bin, cfg, seed, i, log)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runOneTrial(items []placement.Item, bin placement.Bin, cfg Config, seed uint64, i int, log zerolog.Logger) trial.Result {
	strat := trial.Strategies[i%len(trial.Strategies)]
	jitter := i >= jitterStartIteration
	rng := rand.New(rand.NewPCG(seed+uint64(i), seed+uint64(i)))
	return trial.Run(items, bin, strat, jitter, rng, log)
}

// scan applies the sequential best-tracking, early-exit, and stagnation
// logic over a precomputed list of trial results, in iteration order.
func scan(results []trial.Result, bin placement.Bin, targetVolume float64, cfg Config, allItems []placement.Item, log zerolog.Logger) (Outcome, State) {
	var (
		best       evaluated
		haveBest   bool
		everPacked bool
		stagnation int
		state      = StateInit
	)

	if len(results) > 0 {
		state = StateRunning
	}

	for i, res := range results {
		o := Outcome{Bins: res.Bins, Unpacked: res.Unpacked}
		e := evaluate(o, bin, targetVolume)
		if len(o.Bins) > 0 {
			everPacked = true
		}

		if !haveBest || e.score > best.score {
			best = e
			haveBest = true
			stagnation = 0

			if qualifiesForEarlyExit(e, cfg.TargetEfficiency) {
				log.Debug().Int("iteration", i).Msg("meta-search early exit")
				state = StateEarlyExit
				break
			}
			continue
		}

		stagnation++
		if stagnation >= cfg.StagnationLimit {
			log.Debug().Int("iteration", i).Msg("meta-search stagnated")
			state = StateStagnated
			break
		}
	}

	if state == StateInit || state == StateRunning {
		state = StateExhausted
	}

	if !everPacked {
		return Outcome{Unpacked: append([]placement.Item(nil), allItems...)}, state
	}
	return best.outcome, state
}
