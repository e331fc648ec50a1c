// internal/system/player_system.go
package system

import (
	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
)

// PlayerSystem отвечает за начисление очков игроку.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{world: world}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	eventDispatcher.Subscribe(event.CoinCollected, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if enemy, ok := e.Data.(*component.EnemyShip); ok {
			s.world.State.Score += KillScore(enemy.Kind)
		}
	case event.CoinCollected:
		s.world.State.Score += config.CoinScore
	}
}

// KillScore returns the points awarded for shooting down an enemy of kind.
func KillScore(kind component.EnemyKind) int {
	if kind == component.EnemyMini {
		return config.MiniShipKillScore
	}
	return config.EnemyKillScore
}
