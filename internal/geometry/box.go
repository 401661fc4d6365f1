package geometry

// Box is an axis-aligned rectangular volume positioned at (X, Y, Z) with
// extents (W, H, D). X is width, Y is height (gravity acts along -Y), Z is
// depth. It carries no identity of its own; callers attach whatever
// metadata they need alongside it.
type Box struct {
	X, Y, Z float64
	W, H, D float64
}

// Fits reports whether the box lies entirely within [0, binW] x [0, binH]
// x [0, binD].
func (b Box) Fits(binW, binH, binD float64) bool {
	return b.X >= 0 && b.Y >= 0 && b.Z >= 0 &&
		b.X+b.W <= binW && b.Y+b.H <= binH && b.Z+b.D <= binD
}

// Intersects reports whether two axis-aligned boxes overlap strictly on
// all three axes. Touching faces (shared boundary, zero-width overlap) do
// not count as intersecting.
func (b Box) Intersects(o Box) bool {
	return overlaps(b.X, b.X+b.W, o.X, o.X+o.W) &&
		overlaps(b.Y, b.Y+b.H, o.Y, o.Y+o.H) &&
		overlaps(b.Z, b.Z+b.D, o.Z, o.Z+o.D)
}

// overlaps is the half-open interval test: a0 < b1 && b0 < a1.
func overlaps(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// flushTolerance is the epsilon (cm) within which two y-coordinates are
// considered flush for stacking purposes.
const flushTolerance = 0.1

// SupportArea sums the rectangular (X, Z) intersection area between the
// candidate footprint and every box in below whose top face sits within
// flushTolerance of the candidate's y. Boxes that are not flush contribute
// zero.
func SupportArea(candidateX, candidateZ, candidateW, candidateD, candidateY float64, below []Box) float64 {
	var total float64
	for _, s := range below {
		if abs(s.Y+s.H-candidateY) >= flushTolerance {
			continue
		}
		dx := rangeOverlap(candidateX, candidateX+candidateW, s.X, s.X+s.W)
		dz := rangeOverlap(candidateZ, candidateZ+candidateD, s.Z, s.Z+s.D)
		total += dx * dz
	}
	return total
}

// Supporters returns the indices into below of every box that is flush
// beneath the candidate footprint and whose (X, Z) rectangle has a
// strictly positive overlap with it. A box that only touches the
// candidate along an edge or corner (zero overlap area) is not a
// supporter.
func Supporters(candidateX, candidateZ, candidateW, candidateD, candidateY float64, below []Box) []int {
	var idx []int
	for i, s := range below {
		if abs(s.Y+s.H-candidateY) >= flushTolerance {
			continue
		}
		if rangeOverlap(candidateX, candidateX+candidateW, s.X, s.X+s.W) <= 0 {
			continue
		}
		if rangeOverlap(candidateZ, candidateZ+candidateD, s.Z, s.Z+s.D) <= 0 {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

func rangeOverlap(a0, a1, b0, b1 float64) float64 {
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := a1
	if b1 < hi {
		hi = b1
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
