package system

import (
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/input"
)

// WeaponSystem выпускает ракеты из корабля игрока
type WeaponSystem struct {
	world *entity.World
}

func NewWeaponSystem(world *entity.World) *WeaponSystem {
	return &WeaponSystem{world: world}
}

// Update fires while the fire control is held, one volley per frame.
func (s *WeaponSystem) Update(in input.Source) {
	if !in.Held(input.Fire) {
		return
	}
	for _, offset := range VolleyOffsets(s.world.State.Score) {
		s.fire(offset)
	}
}

// VolleyOffsets returns the direction offsets of every missile in one volley
// at the given score. Thresholds are cumulative.
func VolleyOffsets(score int) []float64 {
	offsets := []float64{0}
	if score >= config.TripleShotScore {
		offsets = append(offsets, config.TripleShotOffsets...)
	}
	if score >= config.BackShotScore {
		offsets = append(offsets, config.BackShotOffsets...)
	}
	return offsets
}

func (s *WeaponSystem) fire(offset float64) {
	ship := s.world.Ship
	s.world.SpawnMissile(ship.Position, ship.Direction+offset)
}
