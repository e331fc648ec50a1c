// component/render.go
package component

// Sprite — что именно рисовать для сущности
type Sprite int

const (
	SpriteShip Sprite = iota
	SpriteEnemy
	SpriteMissile
	SpriteCoin
	SpriteExplosion // scale — текущий радиус кольца в пикселях
)
