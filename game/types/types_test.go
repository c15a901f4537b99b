package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionVectorsAreUnit(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		v := d.Vector()
		assert.Equal(t, 1, abs(v.X)+abs(v.Y), d.String())
		o := d.Opposite().Vector()
		assert.Equal(t, Point{X: -v.X, Y: -v.Y}, o, d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestGridContainsAndCenter(t *testing.T) {
	g := DefaultGrid
	assert.Equal(t, Point{X: 20, Y: 15}, g.Center())
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 39, Y: 29}))
	assert.False(t, g.Contains(Point{X: 40, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
	assert.Equal(t, 1200, g.Cells())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
