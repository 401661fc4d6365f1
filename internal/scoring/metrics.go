// Package scoring derives per-bin metrics from a finalized set of placed
// items, and a scalar score for a full outcome across bins.
package scoring

import (
	"math"

	"github.com/tvanriper/cargo3d/internal/placement"
)

// balanceThreshold is the fraction of bin width/depth the center of
// gravity may drift from center before tripping the balance warning.
const balanceThreshold = 0.05

// longitudinalWarningThreshold is the fraction of total weight either
// half of the bin (front/back along Z) may carry before tripping the
// 60/50 warning.
const longitudinalWarningThreshold = 0.6

// Metrics is the set of derived figures for one finalized bin: weight and
// volume totals, utilization percentages, center of gravity, and the
// balance/longitudinal-weight safety warnings.
type Metrics struct {
	TotalWeight           float64
	Efficiency            float64
	TotalCBM              float64
	EmptyCBM              float64
	EmptyPercent          float64
	CartonCount           int
	WeightCapacityPercent float64
	CenterOfGravityX      float64
	CenterOfGravityZ      float64
	BalanceWarning        bool
	Weight6050Warning     bool
}

// Compute derives Metrics for one bin's finalized placements. binW/binD
// are the shrunk bin's width and depth; maxWeight is the template's
// capacity; targetVolume is the caller-supplied nominal target in cm^3,
// independent of the shrunk bin's true volume, so efficiency can
// legitimately exceed 100%.
func Compute(items []placement.Placed, binW, binD, maxWeight, targetVolume float64) Metrics {
	var totalVol, totalWt, cogXNum, cogZNum float64
	for _, it := range items {
		totalVol += it.Item.Volume()
		totalWt += it.Item.Weight
		cx := it.X + it.AW/2
		cz := it.Z + it.AD/2
		cogXNum += cx * it.Item.Weight
		cogZNum += cz * it.Item.Weight
	}

	var cogX, cogZ float64
	if totalWt > 0 {
		cogX = cogXNum / totalWt
		cogZ = cogZNum / totalWt
	}

	balanceWarning := math.Abs(cogX-binW/2) > balanceThreshold*binW ||
		math.Abs(cogZ-binD/2) > balanceThreshold*binD

	var frontWeight float64
	for _, it := range items {
		cz := it.Z + it.AD/2
		if cz < binD/2 {
			frontWeight += it.Item.Weight
		}
	}
	backWeight := totalWt - frontWeight

	var weight6050Warning bool
	if totalWt > 0 {
		weight6050Warning = frontWeight > longitudinalWarningThreshold*totalWt ||
			backWeight > longitudinalWarningThreshold*totalWt
	}

	var efficiency, emptyPercent float64
	if targetVolume > 0 {
		efficiency = totalVol / targetVolume * 100
		emptyPercent = (targetVolume - totalVol) / targetVolume * 100
	}

	var weightCapacityPercent float64
	if maxWeight > 0 {
		weightCapacityPercent = totalWt / maxWeight * 100
	}

	return Metrics{
		TotalWeight:           totalWt,
		Efficiency:            efficiency,
		TotalCBM:              totalVol / 1e6,
		EmptyCBM:              (targetVolume - totalVol) / 1e6,
		EmptyPercent:          emptyPercent,
		CartonCount:           len(items),
		WeightCapacityPercent: weightCapacityPercent,
		CenterOfGravityX:      cogX,
		CenterOfGravityZ:      cogZ,
		BalanceWarning:        balanceWarning,
		Weight6050Warning:     weight6050Warning,
	}
}
