package system

import (
	"fmt"
	"image/color"

	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
)

// Surface is the drawing sink the game renders into. It never feeds back
// into game logic.
type Surface interface {
	DrawBackground()
	DrawSprite(sprite component.Sprite, x, y, direction, scale float64)
	DrawText(label string, x, y float64, clr color.Color)
}

// Надпись паузы, её же хост рисует поверх затемнения.
const (
	PausedLabel  = "Paused"
	PausedLabelX = 365
	PausedLabelY = 320
)

// RenderSystem рисует сущности и HUD
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw renders one frame: background, missiles, ship, mini-ships, enemy
// ships, coins, explosion rings and then the HUD on top.
func (s *RenderSystem) Draw(surface Surface, fps float64) {
	surface.DrawBackground()

	for _, m := range s.world.Missiles {
		surface.DrawSprite(component.SpriteMissile, m.Position.X, m.Position.Y, m.Direction, 1)
	}
	ship := s.world.Ship
	surface.DrawSprite(component.SpriteShip, ship.Position.X, ship.Position.Y, ship.Direction, 1)
	for _, e := range s.world.MiniShips {
		surface.DrawSprite(component.SpriteEnemy, e.Position.X, e.Position.Y, e.Direction, config.MiniShipScale)
	}
	for _, e := range s.world.EnemyShips {
		surface.DrawSprite(component.SpriteEnemy, e.Position.X, e.Position.Y, e.Direction, 1)
	}
	for _, c := range s.world.Coins {
		surface.DrawSprite(component.SpriteCoin, c.Position.X, c.Position.Y, 0, 1)
	}
	for _, e := range s.world.Explosions {
		surface.DrawSprite(component.SpriteExplosion, e.Position.X, e.Position.Y, 0, e.Radius())
	}

	s.drawHUD(surface, fps)
}

func (s *RenderSystem) drawHUD(surface Surface, fps float64) {
	st := s.world.State
	surface.DrawText(fmt.Sprintf("Score: %d", st.Score), 10, 10, config.HUDColor)
	surface.DrawText(fmt.Sprintf("Record: %d", st.Record), 110, 10, config.HUDColor)
	surface.DrawText(fmt.Sprintf("Fps: %.0f", fps), 260, 10, config.HUDColor)

	if st.GameOver {
		surface.DrawText("Game Over", 345, 280, config.GameOverColor)
		if st.NewRecord {
			surface.DrawText("New Record!", 341, 300, config.HUDColor)
		}
	}
	if st.Paused {
		surface.DrawText(PausedLabel, PausedLabelX, PausedLabelY, config.PausedColor)
	}
}
