package placement

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/tvanriper/cargo3d/internal/geometry"
)

// minSupportFraction is the minimum fraction of a candidate's footprint
// that must be covered by supporting items beneath it.
const minSupportFraction = 0.7

// heavyOnLightFactor bounds how much heavier an item may be than the mean
// weight of the items directly supporting it.
const heavyOnLightFactor = 1.1

type pivot struct {
	x, y, z float64
}

// PackOneBin greedily places ordered items into a single bin using the
// pivot/extreme-point heuristic with six-way rotation. It returns the
// items that were committed, in placement order, and the items that could
// not be placed and must be carried over to the next bin.
//
// If zero items are placed, leftover equals ordered verbatim: this signals
// to the caller (the trial driver) that the bin is infeasible for the
// remaining items and the multi-bin loop should stop.
func PackOneBin(ordered []Item, bin Bin, log zerolog.Logger) (placed []Placed, leftover []Item) {
	var currentWeight float64

	for _, item := range ordered {
		committed, ok := tryPlace(item, placed, bin, currentWeight, log)
		if !ok {
			leftover = append(leftover, item)
			continue
		}
		placed = append(placed, committed)
		currentWeight += item.Weight
	}

	if len(placed) == 0 && len(ordered) > 0 {
		return nil, append([]Item(nil), ordered...)
	}
	return placed, leftover
}

func tryPlace(item Item, already []Placed, bin Bin, currentWeight float64, log zerolog.Logger) (Placed, bool) {
	pivots := candidatePivots(already)
	rotations := geometry.AllRotations[:]
	if !item.AllowRotation {
		rotations = geometry.AllRotations[:1]
	}

	belowBoxes := make([]geometry.Box, len(already))
	for i, p := range already {
		belowBoxes[i] = p.box()
	}

	for _, pv := range pivots {
		for _, rt := range rotations {
			aw, ah, ad := geometry.Rotate(item.Width, item.Height, item.Depth, rt)
			candidate := geometry.Box{X: pv.x, Y: pv.y, Z: pv.z, W: aw, H: ah, D: ad}

			if !candidate.Fits(bin.Width, bin.Height, bin.Depth) {
				continue
			}
			if intersectsAny(candidate, already) {
				continue
			}
			if currentWeight+item.Weight > bin.MaxWeight {
				continue
			}
			if pv.y > 0 {
				if !stackingAllowed(item, pv, aw, ad, already, belowBoxes, log) {
					continue
				}
			}

			return Placed{
				Item: item, X: pv.x, Y: pv.y, Z: pv.z,
				Rotation: rt, AW: aw, AH: ah, AD: ad,
			}, true
		}
	}
	return Placed{}, false
}

func intersectsAny(candidate geometry.Box, already []Placed) bool {
	for _, p := range already {
		if candidate.Intersects(p.box()) {
			return true
		}
	}
	return false
}

func stackingAllowed(item Item, pv pivot, aw, ad float64, already []Placed, belowBoxes []geometry.Box, log zerolog.Logger) bool {
	supporterIdx := geometry.Supporters(pv.x, pv.z, aw, ad, pv.y, belowBoxes)
	if len(supporterIdx) == 0 {
		log.Debug().Str("item", item.ID).Msg("rejected: hanging in air")
		return false
	}

	area := geometry.SupportArea(pv.x, pv.z, aw, ad, pv.y, belowBoxes)
	if area < minSupportFraction*aw*ad {
		log.Debug().Str("item", item.ID).Float64("area", area).Msg("rejected: insufficient support area")
		return false
	}

	minFragility := already[supporterIdx[0]].Item.Fragility
	var weightSum float64
	for _, idx := range supporterIdx {
		s := already[idx]
		if s.Item.Fragility < minFragility {
			minFragility = s.Item.Fragility
		}
		weightSum += s.Item.Weight
	}
	if minFragility < item.Fragility {
		log.Debug().Str("item", item.ID).Msg("rejected: fragility of supporters too low")
		return false
	}

	meanWeight := weightSum / float64(len(supporterIdx))
	if item.Weight > heavyOnLightFactor*meanWeight {
		log.Debug().Str("item", item.ID).Msg("rejected: too heavy for supporters")
		return false
	}

	return true
}

// candidatePivots returns the origin plus the three extreme points of
// every already-placed box, sorted ascending by (y, z, x). The sort must
// be stable so that load order stays reproducible.
func candidatePivots(already []Placed) []pivot {
	pivots := make([]pivot, 0, 1+3*len(already))
	pivots = append(pivots, pivot{0, 0, 0})
	for _, p := range already {
		pivots = append(pivots,
			pivot{p.X + p.AW, p.Y, p.Z},
			pivot{p.X, p.Y + p.AH, p.Z},
			pivot{p.X, p.Y, p.Z + p.AD},
		)
	}
	sort.SliceStable(pivots, func(i, j int) bool {
		a, b := pivots[i], pivots[j]
		if a.y != b.y {
			return a.y < b.y
		}
		if a.z != b.z {
			return a.z < b.z
		}
		return a.x < b.x
	})
	return pivots
}
