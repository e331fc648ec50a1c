package system

import (
	"space-dude/internal/component"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
	"space-dude/internal/utils"
)

// CoinSystem раскладывает монеты и отдаёт их игроку при касании
type CoinSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             utils.Rand
}

func NewCoinSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng utils.Rand) *CoinSystem {
	return &CoinSystem{world: world, eventDispatcher: eventDispatcher, rng: rng}
}

// Update spawns at most one coin and then collects every coin the ship touches.
func (s *CoinSystem) Update() {
	s.spawn()
	s.collect()
}

func (s *CoinSystem) spawn() {
	// Лимит проверяется до броска, чтобы не тратить случайные числа
	if len(s.world.Coins) >= config.MaxCoins || !utils.OneIn(s.rng, config.CoinSpawnOdds) {
		return
	}
	s.world.SpawnCoin(component.Position{
		X: float64(s.rng.Intn(config.ScreenWidth - config.CoinSize)),
		Y: float64(s.rng.Intn(config.ScreenHeight - config.CoinSize)),
	})
}

func (s *CoinSystem) collect() {
	ship := s.world.Ship
	for _, coin := range s.world.Coins {
		if !coin.Alive || !ship.Position.Touches(coin.Position, config.ShipTouchRadius) {
			continue
		}
		s.world.RemoveCoin(coin)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CoinCollected, Data: coin})
	}
}
