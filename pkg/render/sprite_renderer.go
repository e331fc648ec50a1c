package render

import (
	"image/color"
	"math/rand"

	"space-dude/internal/component"
	"space-dude/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	shipNose    = 20.0
	shipWing    = 15.0
	shipWingDeg = 140.0
	enemyNotch  = 6.0
	missileLen  = 10.0
	starSeed    = 1977
)

// SpriteRenderer рисует корабли, ракеты, монеты и HUD процедурно, без
// файлов ресурсов. Перед кадром нужно вызвать Bind с целевым изображением.
type SpriteRenderer struct {
	palette    *Palette
	width      int
	height     int
	fillImg    *ebiten.Image
	background *ebiten.Image // предрендеренное звёздное небо
	face       text.Face
	target     *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
}

func NewSpriteRenderer(screenWidth, screenHeight int, palette *Palette) *SpriteRenderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &SpriteRenderer{
		palette:    palette,
		width:      screenWidth,
		height:     screenHeight,
		fillImg:    fillImg,
		background: ebiten.NewImage(screenWidth, screenHeight),
		face:       text.NewGoXFace(basicfont.Face7x13),
		fillVs:     make([]ebiten.Vertex, 0, 8),
		fillIs:     make([]uint16, 0, 12),
		strokeVs:   make([]ebiten.Vertex, 0, 32),
		strokeIs:   make([]uint16, 0, 48),
	}
	r.RenderBackgroundImage()
	return r
}

// RenderBackgroundImage создаёт предрендеренное изображение задника
func (r *SpriteRenderer) RenderBackgroundImage() {
	r.background.Fill(r.palette.Background)

	// Фиксированный сид: небо одинаковое при каждом запуске
	rng := rand.New(rand.NewSource(starSeed))
	for i := 0; i < config.StarCount; i++ {
		x := float32(rng.Intn(r.width))
		y := float32(rng.Intn(r.height))
		radius := 0.5 + rng.Float32()
		star := r.palette.Star
		if rng.Intn(3) == 0 {
			star = DarkenColor(star)
		}
		vector.DrawFilledCircle(r.background, x, y, radius, star, true)
	}
}

// Bind sets the image the next draw calls paint on.
func (r *SpriteRenderer) Bind(screen *ebiten.Image) *SpriteRenderer {
	r.target = screen
	return r
}

func (r *SpriteRenderer) DrawBackground() {
	r.target.DrawImage(r.background, nil)
}

// DrawSprite draws sprite centred at (x, y), except coins, whose (x, y) is
// the top-left corner of their bounding box. For explosions scale is the
// ring radius in pixels.
func (r *SpriteRenderer) DrawSprite(sprite component.Sprite, x, y, direction, scale float64) {
	at := component.Position{X: x, Y: y}
	switch sprite {
	case component.SpriteShip:
		r.drawPolygon([]component.Position{
			at.Offset(direction, shipNose*scale),
			at.Offset(direction+shipWingDeg, shipWing*scale),
			at.Offset(direction-shipWingDeg, shipWing*scale),
		}, r.palette.Ship)
	case component.SpriteEnemy:
		r.drawPolygon([]component.Position{
			at.Offset(direction, shipNose*scale),
			at.Offset(direction+shipWingDeg, shipWing*scale),
			at.Offset(direction+180, enemyNotch*scale),
			at.Offset(direction-shipWingDeg, shipWing*scale),
		}, r.palette.Enemy)
	case component.SpriteMissile:
		tip := at.Offset(direction, missileLen*scale)
		vector.StrokeLine(r.target, float32(x), float32(y), float32(tip.X), float32(tip.Y), r.palette.StrokeWidth, r.palette.Missile, true)
	case component.SpriteCoin:
		half := float32(config.CoinSize) / 2 * float32(scale)
		cx, cy := float32(x)+half, float32(y)+half
		vector.DrawFilledCircle(r.target, cx, cy, half, r.palette.Coin, true)
		vector.StrokeCircle(r.target, cx, cy, half, r.palette.StrokeWidth, r.palette.CoinStroke, true)
	case component.SpriteExplosion:
		if scale > 0 {
			vector.StrokeCircle(r.target, float32(x), float32(y), float32(scale), r.palette.StrokeWidth*2, r.palette.Explosion, true)
		}
	}
}

// DrawText draws label with its top-left corner at (x, y).
func (r *SpriteRenderer) DrawText(label string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(config.HUDTextScale, config.HUDTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.target, label, r.face, op)
}

// DrawOverlay затемняет весь экран, например под надписью паузы
func (r *SpriteRenderer) DrawOverlay() {
	vector.DrawFilledRect(r.target, 0, 0, float32(r.width), float32(r.height), r.palette.Overlay, false)
}

func (r *SpriteRenderer) drawPolygon(points []component.Position, fill color.RGBA) {
	path := vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	setVertexColor(r.fillVs, fill)
	r.target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.palette.StrokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	setVertexColor(r.strokeVs, DarkenColor(fill))
	r.target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
