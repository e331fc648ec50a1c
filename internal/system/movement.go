// internal/system/movement.go
package system

import (
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/input"
)

// MovementSystem двигает корабль игрока по удерживаемым кнопкам
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update applies turning first, then thrust and reverse along the new heading,
// and finally clamps the ship to the screen.
func (s *MovementSystem) Update(in input.Source) {
	ship := s.world.Ship
	if in.Held(input.TurnLeft) {
		ship.Direction -= config.ShipTurnRate
	}
	if in.Held(input.TurnRight) {
		ship.Direction += config.ShipTurnRate
	}
	if in.Held(input.Thrust) {
		ship.Position = ship.Position.Offset(ship.Direction, config.ShipThrustSpeed)
	}
	if in.Held(input.Reverse) {
		ship.Position = ship.Position.Offset(ship.Direction, -config.ShipReverseSpeed)
	}
	ship.Position = ship.Position.Clamp(config.ScreenWidth, config.ScreenHeight)
}
