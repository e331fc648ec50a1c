// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Space Dude"

	// Все скорости в пикселях за кадр, углы в градусах
	ShipTurnRate     = 4.5
	ShipThrustSpeed  = 5.0
	ShipReverseSpeed = 5.0
	MissileSpeed     = 10.0
	EnemySpeed       = 5.0
	MiniShipSpeed    = 8.0
	MiniShipScale    = 0.5

	ShipTouchRadius    = 35.0 // корабль игрока против врагов и монет
	MissileTouchRadius = 25.0 // ракета против вражеских кораблей

	EnemySpawnOdds    = 100 // шанс 1/N за кадр
	MiniShipSpawnOdds = 200
	CoinSpawnOdds     = 100
	MaxCoins          = 25
	CoinSize          = 20

	EnemyKillScore    = 5
	MiniShipKillScore = 20
	CoinScore         = 10

	TripleShotScore = 100000000
	BackShotScore   = 1000000

	ToggleCooldownFrames = 6  // ~0.1s при 60 TPS
	GameOverDelayFrames  = 60 // ~1s при 60 TPS

	ExplosionFrames     = 24
	ExplosionRadius     = 30.0
	ShipExplosionRadius = 60.0

	StarCount    = 120
	HUDTextScale = 1.0
)

// Spread offsets are applied to the ship direction when the score crosses the
// matching threshold. Both spreads can fire in the same frame.
var (
	TripleShotOffsets = []float64{-10, 10}
	BackShotOffsets   = []float64{170, -180, 190}
)

var (
	BackgroundColor = color.RGBA{5, 5, 20, 255}
	StarColor       = color.RGBA{200, 200, 255, 255}
	ShipColor       = color.RGBA{90, 200, 255, 255}
	EnemyColor      = color.RGBA{230, 60, 60, 255}
	MissileColor    = color.RGBA{255, 240, 120, 255}
	CoinColor       = color.RGBA{255, 215, 0, 255}
	CoinStrokeColor = color.RGBA{200, 150, 0, 255}
	HUDColor        = color.RGBA{0, 255, 255, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	PausedColor     = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	ExplosionColor  = color.RGBA{255, 140, 40, 255}
)
