// internal/system/visual_effect.go
package system

import (
	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами: кольцами взрывов.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	eventDispatcher.Subscribe(event.ShipDestroyed, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if enemy, ok := e.Data.(*component.EnemyShip); ok {
			radius := config.ExplosionRadius
			if enemy.Kind == component.EnemyMini {
				radius *= config.MiniShipScale
			}
			s.world.SpawnExplosion(enemy.Position, radius)
		}
	case event.ShipDestroyed:
		s.world.SpawnExplosion(s.world.Ship.Position, config.ShipExplosionRadius)
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	for _, e := range s.world.Explosions {
		if !e.Alive {
			continue
		}
		e.Frame++
		if e.Frame >= e.Duration {
			// Эффект завершился, удаляем его
			e.Alive = false
		}
	}
}
