package cargo3d

import "errors"

// Construction-time validation errors. NewPacker and AddItem validate
// their arguments on the caller's behalf; once past construction, the
// core algorithm assumes well-formed values.
var (
	ErrInvalidBinDimensions  = errors.New("cargo3d: bin template dimensions and max weight must be positive and finite")
	ErrInvalidTargetVolume   = errors.New("cargo3d: target volume must be positive and finite")
	ErrInvalidItemDimensions = errors.New("cargo3d: item dimensions and weight must be positive and finite")
	ErrInvalidFragility      = errors.New("cargo3d: item fragility must be in 1..5")
)
