package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-dude/internal/component"
	"space-dude/internal/config"
)

func TestNewWorldShipAtCentre(t *testing.T) {
	w := NewWorld()
	require.NotNil(t, w.Ship)
	assert.Equal(t, component.Position{X: 400, Y: 300}, w.Ship.Position)
	assert.Equal(t, 0.0, w.Ship.Direction)
	assert.Empty(t, w.Missiles)
	assert.Empty(t, w.Coins)
}

func TestSpawnEnemyRoutesByKind(t *testing.T) {
	w := NewWorld()
	full := w.SpawnEnemy(component.EnemyFull, component.Position{X: 1, Y: 2}, 90)
	mini := w.SpawnEnemy(component.EnemyMini, component.Position{X: 3, Y: 4}, 180)

	assert.Equal(t, []*component.EnemyShip{full}, w.EnemyShips)
	assert.Equal(t, []*component.EnemyShip{mini}, w.MiniShips)
	assert.Equal(t, config.EnemySpeed, full.Speed)
	assert.Equal(t, config.MiniShipSpeed, mini.Speed)
	assert.NotEqual(t, full.ID, mini.ID)
}

func TestRemoveTwiceIsNoop(t *testing.T) {
	w := NewWorld()
	m := w.SpawnMissile(component.Position{}, 0)

	assert.True(t, w.RemoveMissile(m))
	assert.False(t, w.RemoveMissile(m))
	assert.False(t, w.RemoveMissile(nil))

	c := w.SpawnCoin(component.Position{})
	assert.True(t, w.RemoveCoin(c))
	assert.False(t, w.RemoveCoin(c))
}

func TestCompactKeepsOrderOfLiveEntities(t *testing.T) {
	w := NewWorld()
	a := w.SpawnMissile(component.Position{X: 1}, 0)
	b := w.SpawnMissile(component.Position{X: 2}, 0)
	c := w.SpawnMissile(component.Position{X: 3}, 0)
	e := w.SpawnEnemy(component.EnemyMini, component.Position{}, 0)

	w.RemoveMissile(b)
	w.RemoveEnemy(e)
	w.Compact()

	assert.Equal(t, []*component.Missile{a, c}, w.Missiles)
	assert.Empty(t, w.MiniShips)
}

func TestResetKeepsRecordAndFlags(t *testing.T) {
	w := NewWorld()
	w.SpawnMissile(component.Position{}, 0)
	w.SpawnEnemy(component.EnemyFull, component.Position{}, 0)
	w.SpawnEnemy(component.EnemyMini, component.Position{}, 0)
	w.SpawnCoin(component.Position{})
	w.Ship.Position = component.Position{X: 10, Y: 10}
	w.State.Score = 120
	w.State.Record = 500
	w.State.GameOver = true
	w.State.NewRecord = true
	w.State.Muted = true

	w.Reset()

	assert.Empty(t, w.Missiles)
	assert.Empty(t, w.EnemyShips)
	assert.Empty(t, w.MiniShips)
	assert.Empty(t, w.Coins)
	assert.Equal(t, component.Position{X: 400, Y: 300}, w.Ship.Position)
	assert.Equal(t, 0, w.State.Score)
	assert.Equal(t, 500, w.State.Record)
	assert.False(t, w.State.GameOver)
	assert.False(t, w.State.NewRecord)
	assert.True(t, w.State.Muted)
}
