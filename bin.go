package cargo3d

import "math"

// safetyVolumeFactor is the cubic safety factor applied to a BinTemplate
// at construction time: each linear dimension is scaled by its cube root,
// reserving 0.2% of internal volume as clearance.
const safetyVolumeFactor = 0.998

var linearShrink = math.Cbrt(safetyVolumeFactor)

// BinTemplate describes the container shape and weight capacity supplied
// by the caller, in centimeters and kilograms.
type BinTemplate struct {
	Width     float64
	Height    float64
	Depth     float64
	MaxWeight float64
}

func (bt BinTemplate) validate() error {
	if !positiveFinite(bt.Width) || !positiveFinite(bt.Height) || !positiveFinite(bt.Depth) || !positiveFinite(bt.MaxWeight) {
		return ErrInvalidBinDimensions
	}
	return nil
}

// shrunkBin is the internal, post-safety-factor container used by the
// placement engine. targetVolume is stored alongside but intentionally
// decoupled from the shrunk bin's true volume: it is only used to
// normalize the efficiency metric, which can therefore legitimately
// exceed 100% when items overfill the nominal target.
type shrunkBin struct {
	width, height, depth float64
	maxWeight            float64
	targetVolume         float64 // cm^3
}

func newShrunkBin(t BinTemplate, targetVolumeCBM float64) shrunkBin {
	return shrunkBin{
		width:        t.Width * linearShrink,
		height:       t.Height * linearShrink,
		depth:        t.Depth * linearShrink,
		maxWeight:    t.MaxWeight,
		targetVolume: targetVolumeCBM * 1e6,
	}
}
