package system

import (
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
	"space-dude/internal/interfaces"
)

// StateSystem переключает партию между игрой, концом игры и перезапуском.
type StateSystem struct {
	world           *entity.World
	records         interfaces.RecordKeeper
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, records interfaces.RecordKeeper, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		world:           world,
		records:         records,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.ShipDestroyed, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.ShipDestroyed {
		s.SwitchToGameOver()
	}
}

// SwitchToGameOver ends the current life. The record is submitted once here;
// later game-over frames never write it again.
func (s *StateSystem) SwitchToGameOver() {
	st := s.world.State
	if st.GameOver {
		return
	}
	st.GameOver = true
	st.GameOverTimer = config.GameOverDelayFrames
	if st.Score > st.Record {
		st.Record = st.Score
		st.NewRecord = true
		if s.records != nil {
			s.records.Submit(st.Score)
		}
	}
}

// Tick runs the game-over debounce. It reports true when the current frame
// should be skipped; once the delay has elapsed it restarts the game and
// reports false so the frame continues from a fresh state.
func (s *StateSystem) Tick() (skip bool) {
	st := s.world.State
	if !st.GameOver {
		return false
	}
	if st.GameOverTimer > 0 {
		st.GameOverTimer--
		return true
	}
	s.Restart()
	return false
}

// Restart recreates the ship and clears all entities and the score.
func (s *StateSystem) Restart() {
	s.world.Reset()
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}
