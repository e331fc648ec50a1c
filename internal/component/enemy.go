package component

import "space-dude/internal/types"

// EnemyKind различает полноразмерный и мини-корабль.
type EnemyKind int

const (
	EnemyFull EnemyKind = iota
	EnemyMini
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFull:
		return "enemy"
	case EnemyMini:
		return "mini"
	default:
		return "unknown"
	}
}

// EnemyShip представляет вражескую сущность, летящую по прямой.
type EnemyShip struct {
	ID        types.EntityID
	Kind      EnemyKind
	Position  Position
	Direction float64
	Speed     float64
	Alive     bool
}
