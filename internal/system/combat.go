package system

import (
	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
)

// CombatSystem двигает вражеские корабли и разрешает столкновения
// с игроком и ракетами.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update runs the full-size pass and then the mini-ship pass. It returns true
// when an enemy rammed the player; the caller must then stop the frame.
func (s *CombatSystem) Update() (shipDestroyed bool) {
	if s.pass(s.world.EnemyShips) {
		return true
	}
	return s.pass(s.world.MiniShips)
}

func (s *CombatSystem) pass(enemies []*component.EnemyShip) bool {
	ship := s.world.Ship
	for _, enemy := range enemies {
		if !enemy.Alive {
			continue
		}
		enemy.Position = enemy.Position.Offset(enemy.Direction, enemy.Speed)

		if ship.Position.Touches(enemy.Position, config.ShipTouchRadius) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ShipDestroyed, Data: enemy})
			return true
		}
		if enemy.Position.OffScreen(config.ScreenWidth, config.ScreenHeight) {
			s.world.RemoveEnemy(enemy)
			continue
		}
		if m := s.firstHit(enemy); m != nil {
			s.world.RemoveEnemy(enemy)
			s.world.RemoveMissile(m)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemy})
		}
	}
	return false
}

// firstHit returns the oldest live missile touching enemy, or nil.
func (s *CombatSystem) firstHit(enemy *component.EnemyShip) *component.Missile {
	for _, m := range s.world.Missiles {
		if m.Alive && m.Position.Touches(enemy.Position, config.MissileTouchRadius) {
			return m
		}
	}
	return nil
}
