package cargo3d

import (
	"github.com/tvanriper/cargo3d/internal/placement"
)

func toPlacementItem(it Item) placement.Item {
	return placement.Item{
		ID:            it.ID,
		Name:          it.Name,
		Width:         it.Width,
		Height:        it.Height,
		Depth:         it.Depth,
		Weight:        it.Weight,
		AllowRotation: it.AllowRotation,
		Fragility:     it.Fragility,
	}
}

func fromPlacementItem(it placement.Item) Item {
	return Item{
		ID:            it.ID,
		Name:          it.Name,
		Width:         it.Width,
		Height:        it.Height,
		Depth:         it.Depth,
		Weight:        it.Weight,
		AllowRotation: it.AllowRotation,
		Fragility:     it.Fragility,
	}
}

func toPackedItem(p placement.Placed) PackedItem {
	return PackedItem{
		Item:         fromPlacementItem(p.Item),
		X:            p.X,
		Y:            p.Y,
		Z:            p.Z,
		Rotation:     p.Rotation,
		ActualWidth:  p.AW,
		ActualHeight: p.AH,
		ActualDepth:  p.AD,
	}
}
