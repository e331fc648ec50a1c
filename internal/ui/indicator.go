// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"space-dude/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок, цвет которого показывает вкл/выкл состояние
// (здесь: звук). Как и PauseButton, вспыхивает при переключении.
type StateIndicator struct {
	X, Y     float32
	Radius   float32
	On       bool
	OnColor  color.RGBA
	OffColor color.RGBA

	sinceToggle int
}

func NewStateIndicator(x, y, radius float32, onColor, offColor color.RGBA) *StateIndicator {
	return &StateIndicator{
		X:           x,
		Y:           y,
		Radius:      radius,
		OnColor:     onColor,
		OffColor:    offColor,
		sinceToggle: math.MaxInt32,
	}
}

func (i *StateIndicator) Set(on bool) {
	if i.On != on {
		i.sinceToggle = 0
	}
	i.On = on
}

// OnEvent включает индикатор звука по event.MuteToggled.
func (i *StateIndicator) OnEvent(e event.Event) {
	if muted, ok := e.Data.(bool); ok && e.Type == event.MuteToggled {
		i.Set(!muted)
	}
}

func (i *StateIndicator) Tick() {
	if i.sinceToggle < math.MaxInt32 {
		i.sinceToggle++
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image) {
	radius := i.Radius * pulse(i.sinceToggle)
	clr := i.OffColor
	if i.On {
		clr = i.OnColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, radius, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, 1, color.White, true)
}
