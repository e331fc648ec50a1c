package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: *component.EnemyShip, сбит ракетой
	ShipDestroyed  EventType = "ShipDestroyed"  // Data: *component.EnemyShip, протаранивший игрока
	CoinCollected  EventType = "CoinCollected"  // Data: *component.Coin
	GameRestarted  EventType = "GameRestarted"
	PauseToggled   EventType = "PauseToggled" // Data: bool, новое значение
	MuteToggled    EventType = "MuteToggled"  // Data: bool, новое значение
)
