package placement

import "github.com/tvanriper/cargo3d/internal/geometry"

// Item is the placement engine's view of a carton: just the fields the
// geometry and physical-plausibility rules need. The cargo3d package
// converts its public Item to and from this type at the package boundary.
type Item struct {
	ID            string
	Name          string
	Width         float64
	Height        float64
	Depth         float64
	Weight        float64
	AllowRotation bool
	Fragility     int
}

// Volume returns the item's unrotated volume (width * height * depth).
func (it Item) Volume() float64 {
	return it.Width * it.Height * it.Depth
}

// Bin is the shrunk container the engine packs into.
type Bin struct {
	Width     float64
	Height    float64
	Depth     float64
	MaxWeight float64
}

// Placed is one committed placement: the item, its chosen corner, the
// rotation used, and the resulting actual dimensions.
type Placed struct {
	Item       Item
	X, Y, Z    float64
	Rotation   geometry.RotationType
	AW, AH, AD float64
}

func (p Placed) box() geometry.Box {
	return geometry.Box{X: p.X, Y: p.Y, Z: p.Z, W: p.AW, H: p.AH, D: p.AD}
}
