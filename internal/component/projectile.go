// internal/component/projectile.go
package component

import "space-dude/internal/types"

// Missile represents a fired missile. Direction is fixed at spawn.
type Missile struct {
	ID        types.EntityID
	Position  Position
	Direction float64
	Alive     bool
}
