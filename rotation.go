package cargo3d

import "github.com/tvanriper/cargo3d/internal/geometry"

// RotationType is one of the six orientations a carton may be placed in.
// WHD is the identity orientation (width, height, depth unchanged).
type RotationType = geometry.RotationType

const (
	WHD = geometry.WHD
	HWD = geometry.HWD
	HDW = geometry.HDW
	DHW = geometry.DHW
	DWH = geometry.DWH
	WDH = geometry.WDH
)
