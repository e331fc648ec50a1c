package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotHeld(t *testing.T) {
	s := NewSnapshot(Fire, TurnLeft)
	assert.True(t, s.Held(Fire))
	assert.True(t, s.Held(TurnLeft))
	assert.False(t, s.Held(Thrust))
	assert.False(t, s.Held(Control(99)))
	assert.Equal(t, s, s.With(Control(-1)))
}

type mapSource map[Control]bool

func (m mapSource) Held(c Control) bool { return m[c] }

func TestCapture(t *testing.T) {
	s := Capture(mapSource{Pause: true, Reverse: true})
	assert.Equal(t, NewSnapshot(Pause, Reverse), s)
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "mute", Mute.String())
	assert.Equal(t, "unknown", Control(42).String())
}

func TestToggleFiresOncePerPress(t *testing.T) {
	tg := NewToggle(0)
	held := []bool{true, true, true, false, true}
	var fired []bool
	for _, h := range held {
		fired = append(fired, tg.Update(h))
	}
	assert.Equal(t, []bool{true, false, false, false, true}, fired)
}

func TestToggleCooldownSwallowsQuickRepress(t *testing.T) {
	tg := NewToggle(3)
	assert.True(t, tg.Update(true))
	assert.False(t, tg.Update(false))
	assert.False(t, tg.Update(true)) // still cooling down
	assert.False(t, tg.Update(false))
	assert.True(t, tg.Update(true))
}
