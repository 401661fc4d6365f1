package cargo3d

import "github.com/google/uuid"

// PackedItem is an Item placed inside a bin: its front-lower-left corner
// position, the rotation that was selected, and the resulting actual
// (post-rotation) dimensions.
type PackedItem struct {
	Item
	X, Y, Z                                float64
	Rotation                               RotationType
	ActualWidth, ActualHeight, ActualDepth float64
}

// BinResult is one finalized container: its placement-ordered items and
// the aggregate metrics derived from them by the scoring package.
type BinResult struct {
	BinID                 string
	Items                 []PackedItem
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

// Outcome is the result of one PackAll invocation: the ordered bins and
// whatever items could not be placed in any of them.
type Outcome struct {
	RunID    uuid.UUID
	Results  []BinResult
	Unpacked []Item
}
