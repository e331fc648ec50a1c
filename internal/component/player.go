// internal/component/player.go
package component

// Ship — корабль игрока. Направление в градусах, не нормализуется.
type Ship struct {
	Position  Position
	Direction float64
}
