package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetFollowsScreenConvention(t *testing.T) {
	origin := Position{X: 100, Y: 100}

	cases := []struct {
		dir  float64
		want Position
	}{
		{0, Position{X: 100, Y: 90}},
		{90, Position{X: 110, Y: 100}},
		{180, Position{X: 100, Y: 110}},
		{270, Position{X: 90, Y: 100}},
		{-90, Position{X: 90, Y: 100}},
	}
	for _, c := range cases {
		got := origin.Offset(c.dir, 10)
		assert.InDelta(t, c.want.X, got.X, 1e-9, "dir %v", c.dir)
		assert.InDelta(t, c.want.Y, got.Y, 1e-9, "dir %v", c.dir)
	}
}

func TestTouchesIsInclusive(t *testing.T) {
	a := Position{X: 0, Y: 0}
	assert.True(t, a.Touches(Position{X: 3, Y: 4}, 5))
	assert.False(t, a.Touches(Position{X: 3, Y: 4.01}, 5))
}

func TestOffScreenIsStrict(t *testing.T) {
	assert.False(t, Position{X: 0, Y: 0}.OffScreen(800, 600))
	assert.False(t, Position{X: 800, Y: 600}.OffScreen(800, 600))
	assert.True(t, Position{X: -0.1, Y: 10}.OffScreen(800, 600))
	assert.True(t, Position{X: 10, Y: 600.5}.OffScreen(800, 600))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Position{X: 0, Y: 600}, Position{X: -5, Y: 700}.Clamp(800, 600))
	assert.Equal(t, Position{X: 12, Y: 34}, Position{X: 12, Y: 34}.Clamp(800, 600))
}
