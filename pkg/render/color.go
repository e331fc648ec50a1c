// pkg/render/color.go
package render

import (
	"image/color"

	"space-dude/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds every color the renderer needs.
type Palette struct {
	Background  color.RGBA
	Star        color.RGBA
	Ship        color.RGBA
	Enemy       color.RGBA
	Missile     color.RGBA
	Coin        color.RGBA
	CoinStroke  color.RGBA
	Overlay     color.RGBA
	Explosion   color.RGBA
	StrokeWidth float32
}

// DefaultPalette собирает палитру из config.
func DefaultPalette() *Palette {
	return &Palette{
		Background:  config.BackgroundColor,
		Star:        config.StarColor,
		Ship:        config.ShipColor,
		Enemy:       config.EnemyColor,
		Missile:     config.MissileColor,
		Coin:        config.CoinColor,
		CoinStroke:  config.CoinStrokeColor,
		Overlay:     config.OverlayColor,
		Explosion:   config.ExplosionColor,
		StrokeWidth: 2,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// setVertexColor окрашивает все вершины в один цвет
func setVertexColor(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
