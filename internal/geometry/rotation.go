// Package geometry implements the axis-aligned box math shared by the
// placement engine: rotation enumeration, intersection testing, and
// support-area computation. It has no notion of items, bins, weight, or
// fragility — those live in the internal/placement package, which composes
// this package's pure functions.
package geometry

// RotationType enumerates the six ways a rectangular carton can be
// oriented within a container. WHD is the identity orientation.
type RotationType int

const (
	WHD RotationType = iota
	HWD
	HDW
	DHW
	DWH
	WDH
)

// AllRotations lists the six orientations in the fixed trial order the
// placement engine must use.
var AllRotations = [6]RotationType{WHD, HWD, HDW, DHW, DWH, WDH}

func (rt RotationType) String() string {
	switch rt {
	case WHD:
		return "WHD"
	case HWD:
		return "HWD"
	case HDW:
		return "HDW"
	case DHW:
		return "DHW"
	case DWH:
		return "DWH"
	case WDH:
		return "WDH"
	default:
		return "unknown"
	}
}

// Rotate maps an item's natural (w,h,d) triple into (actualWidth,
// actualHeight, actualDepth) for the given orientation.
func Rotate(w, h, d float64, rt RotationType) (aw, ah, ad float64) {
	switch rt {
	case WHD:
		return w, h, d
	case HWD:
		return h, w, d
	case HDW:
		return h, d, w
	case DHW:
		return d, h, w
	case DWH:
		return d, w, h
	case WDH:
		return w, d, h
	default:
		return w, h, d
	}
}
