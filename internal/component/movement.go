// component/movement.go
package component

import "math"

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

// Offset returns the point reached by travelling distance along direction.
// Direction is in degrees: 0 points up the screen, 90 to the right.
func (p Position) Offset(direction, distance float64) Position {
	rad := direction * math.Pi / 180
	return Position{
		X: p.X + math.Sin(rad)*distance,
		Y: p.Y - math.Cos(rad)*distance,
	}
}

// DistanceTo returns the Euclidean distance between two points.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Touches reports whether o lies within radius of p (inclusive).
func (p Position) Touches(o Position, radius float64) bool {
	return p.DistanceTo(o) <= radius
}

// OffScreen reports whether p lies strictly outside [0,width]x[0,height].
func (p Position) OffScreen(width, height float64) bool {
	return p.X > width || p.X < 0 || p.Y > height || p.Y < 0
}

// Clamp pulls p back inside [0,width]x[0,height].
func (p Position) Clamp(width, height float64) Position {
	return Position{X: clamp(p.X, 0, width), Y: clamp(p.Y, 0, height)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
