// internal/system/projectile.go
package system

import (
	"space-dude/internal/config"
	"space-dude/internal/entity"
)

// ProjectileSystem управляет движением ракет
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update advances every live missile and removes the ones that left the screen.
func (s *ProjectileSystem) Update() {
	for _, m := range s.world.Missiles {
		if !m.Alive {
			continue
		}
		m.Position = m.Position.Offset(m.Direction, config.MissileSpeed)
		if m.Position.OffScreen(config.ScreenWidth, config.ScreenHeight) {
			s.world.RemoveMissile(m)
		}
	}
}
