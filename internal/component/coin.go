package component

import "space-dude/internal/types"

// Coin is a static pickup. Position is the top-left corner of its sprite.
type Coin struct {
	ID       types.EntityID
	Position Position
	Alive    bool
}
