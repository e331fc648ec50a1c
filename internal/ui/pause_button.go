// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"

	"space-dude/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует значок паузы (две полосы) или воспроизведения
// (треугольник). После переключения значок коротко «вспыхивает».
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.Color
	PlayColor  color.Color

	sinceToggle int // кадров с последнего переключения
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:           x,
		Y:           y,
		Size:        size,
		PauseColor:  pauseColor,
		PlayColor:   playColor,
		sinceToggle: math.MaxInt32,
	}
}

// SetPaused syncs the icon with the game and restarts the pulse on change.
func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.sinceToggle = 0
	}
	b.IsPaused = paused
}

// OnEvent follows event.PauseToggled.
func (b *PauseButton) OnEvent(e event.Event) {
	if paused, ok := e.Data.(bool); ok && e.Type == event.PauseToggled {
		b.SetPaused(paused)
	}
}

// Tick advances the pulse animation by one frame.
func (b *PauseButton) Tick() {
	if b.sinceToggle < math.MaxInt32 {
		b.sinceToggle++
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(b.sinceToggle)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size, b.Y-size*1.2)
		path.LineTo(b.X-size, b.Y+size*1.2)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// Две полосы (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// pulse масштабирует значок: 1.3 сразу после клика, затухает к 1.0
func pulse(frames int) float32 {
	elapsed := float64(frames) / float64(ebiten.DefaultTPS)
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
