package metasearch

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tvanriper/cargo3d/internal/placement"
)

func TestRunDeterministicAcrossPureIterations(t *testing.T) {
	items := []placement.Item{
		{ID: "a", Width: 50, Height: 50, Depth: 50, Weight: 10, AllowRotation: true, Fragility: 3},
	}
	bin := placement.Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}

	o1, s1 := Run(items, bin, 1000, DefaultConfig, 42, false, zerolog.Nop())
	o2, s2 := Run(items, bin, 1000, DefaultConfig, 42, false, zerolog.Nop())

	assert.Equal(t, s1, s2)
	assert.Equal(t, len(o1.Bins), len(o2.Bins))
	assert.Equal(t, len(o1.Unpacked), len(o2.Unpacked))
}

func TestRunNoBinsEverProducedReturnsAllUnpacked(t *testing.T) {
	items := []placement.Item{
		{ID: "huge", Width: 500, Height: 500, Depth: 500, Weight: 10, AllowRotation: true, Fragility: 3},
	}
	bin := placement.Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}

	cfg := Config{MaxIterations: 5, StagnationLimit: 15, TargetEfficiency: 98}
	o, state := Run(items, bin, 1000, cfg, 7, false, zerolog.Nop())

	assert.Empty(t, o.Bins)
	assert.Len(t, o.Unpacked, 1)
	assert.Equal(t, StateExhausted, state)
}

func TestRunEarlyExitsWhenTargetReached(t *testing.T) {
	items := []placement.Item{
		{ID: "a", Width: 100, Height: 100, Depth: 50, Weight: 10, AllowRotation: true, Fragility: 3},
		{ID: "b", Width: 100, Height: 100, Depth: 50, Weight: 10, AllowRotation: true, Fragility: 3},
	}
	bin := placement.Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}
	// a fills the front half and b the back half, so neither warning trips;
	// target volume (cm^3) equal to the packed volume => efficiency = 100% >= 98.
	cfg := Config{MaxIterations: 100, StagnationLimit: 15, TargetEfficiency: 98}
	o, state := Run(items, bin, 1e6, cfg, 1, false, zerolog.Nop())

	assert.Equal(t, StateEarlyExit, state)
	assert.Empty(t, o.Unpacked)
}

func TestRunParallelMatchesSequentialForSameSeed(t *testing.T) {
	items := []placement.Item{
		{ID: "a", Width: 30, Height: 30, Depth: 30, Weight: 5, AllowRotation: true, Fragility: 2},
		{ID: "b", Width: 40, Height: 20, Depth: 20, Weight: 8, AllowRotation: true, Fragility: 4},
		{ID: "c", Width: 20, Height: 20, Depth: 20, Weight: 3, AllowRotation: true, Fragility: 1},
	}
	bin := placement.Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}

	oSeq, sSeq := Run(items, bin, 0.5, DefaultConfig, 99, false, zerolog.Nop())
	oPar, sPar := Run(items, bin, 0.5, DefaultConfig, 99, true, zerolog.Nop())

	assert.Equal(t, sSeq, sPar)
	assert.Equal(t, len(oSeq.Bins), len(oPar.Bins))
	assert.Equal(t, len(oSeq.Unpacked), len(oPar.Unpacked))
}
