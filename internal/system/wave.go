package system

import (
	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/utils"
)

// Edge is the side of the screen an enemy enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeBottom
	EdgeRight
	EdgeTop
	edgeCount
)

// WaveSystem порождает врагов у краёв экрана
type WaveSystem struct {
	world *entity.World
	rng   utils.Rand
}

func NewWaveSystem(world *entity.World, rng utils.Rand) *WaveSystem {
	return &WaveSystem{world: world, rng: rng}
}

// Update rolls once for a full enemy and once, independently, for a mini-ship.
func (s *WaveSystem) Update() {
	if utils.OneIn(s.rng, config.EnemySpawnOdds) {
		s.spawn(component.EnemyFull)
	}
	if utils.OneIn(s.rng, config.MiniShipSpawnOdds) {
		s.spawn(component.EnemyMini)
	}
}

func (s *WaveSystem) spawn(kind component.EnemyKind) *component.EnemyShip {
	pos, dir := EdgeSpawn(Edge(s.rng.Intn(int(edgeCount))), s.rng)
	return s.world.SpawnEnemy(kind, pos, dir)
}

// EdgeSpawn returns a position on the given edge, randomised along the free
// axis, and the direction that points into the playfield.
func EdgeSpawn(edge Edge, rng utils.Rand) (component.Position, float64) {
	switch edge {
	case EdgeLeft:
		return component.Position{X: 1, Y: float64(rng.Intn(config.ScreenHeight))}, 90
	case EdgeBottom:
		return component.Position{X: float64(rng.Intn(config.ScreenWidth)), Y: config.ScreenHeight}, 0
	case EdgeRight:
		return component.Position{X: config.ScreenWidth, Y: float64(rng.Intn(config.ScreenHeight))}, 270
	default:
		return component.Position{X: float64(rng.Intn(config.ScreenWidth)), Y: 1}, 180
	}
}
