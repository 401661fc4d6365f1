package placement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tvanriper/cargo3d/internal/geometry"
)

func TestPackOneBinSingleCubeFitsTrivially(t *testing.T) {
	bin := Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}
	items := []Item{{ID: "a", Width: 50, Height: 50, Depth: 50, Weight: 10, AllowRotation: true, Fragility: 3}}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Empty(t, leftover)
	assert.Len(t, placed, 1)
	assert.Equal(t, 0.0, placed[0].X)
	assert.Equal(t, 0.0, placed[0].Y)
	assert.Equal(t, 0.0, placed[0].Z)
	assert.Equal(t, geometry.WHD, placed[0].Rotation)
}

func TestPackOneBinTwoCubesCannotShareA100Cube(t *testing.T) {
	bin := Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}
	items := []Item{
		{ID: "a", Width: 60, Height: 60, Depth: 60, Weight: 10, AllowRotation: true, Fragility: 3},
		{ID: "b", Width: 60, Height: 60, Depth: 60, Weight: 10, AllowRotation: true, Fragility: 3},
	}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Len(t, placed, 1)
	assert.Len(t, leftover, 1)
	assert.Equal(t, "b", leftover[0].ID)
}

func TestPackOneBinFragilityBlocksStacking(t *testing.T) {
	bin := Bin{Width: 200, Height: 200, Depth: 200, MaxWeight: 1000}
	items := []Item{
		{ID: "a", Width: 100, Height: 100, Depth: 100, Weight: 10, AllowRotation: true, Fragility: 1},
		{ID: "b", Width: 100, Height: 100, Depth: 100, Weight: 10, AllowRotation: true, Fragility: 5},
	}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Empty(t, leftover)
	assert.Len(t, placed, 2)
	// b must not sit on top of a: both land at y=0.
	assert.Equal(t, 0.0, placed[0].Y)
	assert.Equal(t, 0.0, placed[1].Y)
}

func TestPackOneBinWeightCapRejectsOverflow(t *testing.T) {
	bin := Bin{Width: 1000, Height: 1000, Depth: 1000, MaxWeight: 100}
	var items []Item
	for i := 0; i < 12; i++ {
		items = append(items, Item{ID: "x", Width: 100, Height: 100, Depth: 100, Weight: 10, AllowRotation: true, Fragility: 3})
	}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Len(t, placed, 10)
	assert.Len(t, leftover, 2)
}

func TestPackOneBinUnplaceableItemReturnsAllAsLeftoverWhenNothingFits(t *testing.T) {
	bin := Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}
	items := []Item{{ID: "huge", Width: 200, Height: 50, Depth: 50, Weight: 10, AllowRotation: true, Fragility: 3}}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Empty(t, placed)
	assert.Len(t, leftover, 1)
}

func TestPackOneBinHangingInAirRejected(t *testing.T) {
	bin := Bin{Width: 100, Height: 100, Depth: 100, MaxWeight: 1000}
	items := []Item{
		{ID: "base", Width: 20, Height: 20, Depth: 20, Weight: 10, AllowRotation: false, Fragility: 3},
		{ID: "floater", Width: 20, Height: 20, Depth: 20, Weight: 10, AllowRotation: false, Fragility: 3},
	}
	// Elevated pivots are only generated on top of placed boxes, so PackOneBin
	// never offers an unsupported position; floater lands on the floor beside base.
	placed, leftover := PackOneBin(items, bin, zerolog.Nop())
	assert.Equal(t, 2, len(placed)+len(leftover))

	// An elevated position with no flush box beneath its footprint is rejected.
	already := []Placed{{Item: items[0], AW: 20, AH: 20, AD: 20}}
	boxes := []geometry.Box{already[0].box()}
	assert.False(t, stackingAllowed(items[1], pivot{x: 50, y: 20, z: 50}, 20, 20, already, boxes, zerolog.Nop()))
}

func TestPackOneBinNoRotationOnlyTriesWHD(t *testing.T) {
	bin := Bin{Width: 30, Height: 100, Depth: 100, MaxWeight: 1000}
	items := []Item{{ID: "a", Width: 20, Height: 40, Depth: 10, Weight: 5, AllowRotation: false, Fragility: 3}}

	placed, leftover := PackOneBin(items, bin, zerolog.Nop())

	assert.Empty(t, leftover)
	assert.Equal(t, geometry.WHD, placed[0].Rotation)
}
