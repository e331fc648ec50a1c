package state

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update()                   { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(screen *ebiten.Image) { *s.log = append(*s.log, s.name+".draw") }
func (s *recordingState) Exit()                     { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	sm.Update()
	sm.Draw(nil)
	assert.Nil(t, sm.Current())

	title := &recordingState{name: "title", log: &log}
	play := &recordingState{name: "play", log: &log}

	sm.SetState(title)
	sm.Update()
	sm.SetState(play)
	sm.Draw(nil)
	sm.SetState(nil)

	assert.Equal(t, []string{
		"title.enter", "title.update",
		"title.exit", "play.enter",
		"play.draw",
		"play.exit",
	}, log)
	assert.Nil(t, sm.Current())
}

func TestHistoryLines(t *testing.T) {
	assert.Nil(t, HistoryLines(nil))
	assert.Equal(t, []string{"Best scores:", "1. 90", "2. 45"}, HistoryLines([]int{90, 45}))
}

type dimRecorder struct{ calls []string }

func (d *dimRecorder) DrawOverlay() { d.calls = append(d.calls, "overlay") }
func (d *dimRecorder) DrawText(label string, _, _ float64, _ color.Color) {
	d.calls = append(d.calls, label)
}

func TestPauseScreenDims(t *testing.T) {
	d := &dimRecorder{}
	dimIfPaused(d, false)
	assert.Empty(t, d.calls)

	dimIfPaused(d, true)
	assert.Equal(t, []string{"overlay", "Paused"}, d.calls, "label is drawn above the overlay")
}
