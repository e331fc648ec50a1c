package entity

import (
	"slices"

	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/types"
)

// World owns every live entity collection of a game.
//
// Removal only marks an entity dead. Systems skip dead entities, and Compact
// drops them at the end of the frame, so a collection can be mutated while it
// is being walked without skipping or revisiting siblings.
type World struct {
	NextID     types.EntityID
	Ship       *component.Ship
	Missiles   []*component.Missile
	EnemyShips []*component.EnemyShip
	MiniShips  []*component.EnemyShip
	Coins      []*component.Coin
	Explosions []*component.Explosion
	State      *component.GameState
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		Ship:   NewShip(),
		State:  &component.GameState{},
	}
}

// NewShip returns a ship at the centre of the screen facing up.
func NewShip() *component.Ship {
	return &component.Ship{
		Position: component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) SpawnMissile(pos component.Position, direction float64) *component.Missile {
	m := &component.Missile{ID: w.NewEntity(), Position: pos, Direction: direction, Alive: true}
	w.Missiles = append(w.Missiles, m)
	return m
}

// SpawnEnemy adds an enemy ship of the given kind to its collection.
func (w *World) SpawnEnemy(kind component.EnemyKind, pos component.Position, direction float64) *component.EnemyShip {
	e := &component.EnemyShip{ID: w.NewEntity(), Kind: kind, Position: pos, Direction: direction, Alive: true}
	switch kind {
	case component.EnemyMini:
		e.Speed = config.MiniShipSpeed
		w.MiniShips = append(w.MiniShips, e)
	default:
		e.Speed = config.EnemySpeed
		w.EnemyShips = append(w.EnemyShips, e)
	}
	return e
}

func (w *World) SpawnCoin(pos component.Position) *component.Coin {
	c := &component.Coin{ID: w.NewEntity(), Position: pos, Alive: true}
	w.Coins = append(w.Coins, c)
	return c
}

// SpawnExplosion starts a cosmetic ring at pos.
func (w *World) SpawnExplosion(pos component.Position, maxRadius float64) *component.Explosion {
	e := &component.Explosion{ID: w.NewEntity(), Position: pos, Duration: config.ExplosionFrames, MaxRadius: maxRadius, Alive: true}
	w.Explosions = append(w.Explosions, e)
	return e
}

// RemoveMissile marks m dead. It reports false if m was already removed.
func (w *World) RemoveMissile(m *component.Missile) bool {
	if m == nil || !m.Alive {
		return false
	}
	m.Alive = false
	return true
}

// RemoveEnemy marks e dead. It reports false if e was already removed.
func (w *World) RemoveEnemy(e *component.EnemyShip) bool {
	if e == nil || !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// RemoveCoin marks c dead. It reports false if c was already removed.
func (w *World) RemoveCoin(c *component.Coin) bool {
	if c == nil || !c.Alive {
		return false
	}
	c.Alive = false
	return true
}

// Compact drops every dead entity from the collections, keeping order.
func (w *World) Compact() {
	w.Missiles = slices.DeleteFunc(w.Missiles, func(m *component.Missile) bool { return !m.Alive })
	w.EnemyShips = slices.DeleteFunc(w.EnemyShips, func(e *component.EnemyShip) bool { return !e.Alive })
	w.MiniShips = slices.DeleteFunc(w.MiniShips, func(e *component.EnemyShip) bool { return !e.Alive })
	w.Coins = slices.DeleteFunc(w.Coins, func(c *component.Coin) bool { return !c.Alive })
	w.Explosions = slices.DeleteFunc(w.Explosions, func(e *component.Explosion) bool { return !e.Alive })
}

// Reset recreates the ship, clears every collection and zeroes the score.
// Record, pause and mute survive a reset.
func (w *World) Reset() {
	w.Ship = NewShip()
	w.Missiles = nil
	w.EnemyShips = nil
	w.MiniShips = nil
	w.Coins = nil
	w.Explosions = nil
	w.State.Score = 0
	w.State.NewRecord = false
	w.State.GameOver = false
	w.State.GameOverTimer = 0
}
