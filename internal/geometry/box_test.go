package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	aw, ah, ad := Rotate(2, 3, 5, WHD)
	assert.Equal(t, [3]float64{2, 3, 5}, [3]float64{aw, ah, ad})

	aw, ah, ad = Rotate(2, 3, 5, HWD)
	assert.Equal(t, [3]float64{3, 2, 5}, [3]float64{aw, ah, ad})

	aw, ah, ad = Rotate(2, 3, 5, DWH)
	assert.Equal(t, [3]float64{5, 2, 3}, [3]float64{aw, ah, ad})
}

func TestBoxFits(t *testing.T) {
	b := Box{X: 0, Y: 0, Z: 0, W: 10, H: 10, D: 10}
	assert.True(t, b.Fits(10, 10, 10))
	assert.False(t, b.Fits(9, 10, 10))

	b2 := Box{X: 1, Y: 0, Z: 0, W: 10, H: 10, D: 10}
	assert.False(t, b2.Fits(10, 10, 10))
}

func TestBoxIntersectsTouchingFacesDoNotCount(t *testing.T) {
	a := Box{X: 0, Y: 0, Z: 0, W: 10, H: 10, D: 10}
	b := Box{X: 10, Y: 0, Z: 0, W: 10, H: 10, D: 10}
	assert.False(t, a.Intersects(b))

	c := Box{X: 9.9, Y: 0, Z: 0, W: 10, H: 10, D: 10}
	assert.True(t, a.Intersects(c))
}

func TestSupportArea(t *testing.T) {
	below := []Box{
		{X: 0, Y: 0, Z: 0, W: 10, H: 5, D: 10},
	}
	area := SupportArea(2, 2, 6, 6, 5, below)
	assert.InDelta(t, 36, area, 1e-9)

	notFlush := SupportArea(2, 2, 6, 6, 5.2, below)
	assert.InDelta(t, 0, notFlush, 1e-9)
}

func TestSupporters(t *testing.T) {
	below := []Box{
		{X: 0, Y: 0, Z: 0, W: 10, H: 5, D: 10},
		{X: 20, Y: 0, Z: 0, W: 10, H: 5, D: 10},
	}
	idx := Supporters(2, 2, 6, 6, 5, below)
	assert.Equal(t, []int{0}, idx)
}
