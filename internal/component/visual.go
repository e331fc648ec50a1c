// internal/component/visual.go
package component

import "space-dude/internal/types"

// Explosion — расширяющееся кольцо на месте сбитого корабля.
// Чисто визуальный эффект, на игровую логику не влияет.
type Explosion struct {
	ID        types.EntityID
	Position  Position
	Frame     int // Сколько кадров эффект уже активен
	Duration  int // Общая продолжительность эффекта в кадрах
	MaxRadius float64
	Alive     bool
}

// Radius returns the ring radius for the current frame.
func (e *Explosion) Radius() float64 {
	if e.Duration <= 0 {
		return e.MaxRadius
	}
	return e.MaxRadius * float64(e.Frame) / float64(e.Duration)
}
