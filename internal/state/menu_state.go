// internal/state/menu_state.go
package state

import (
	"fmt"

	"space-dude/internal/config"
	"space-dude/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — титульный экран. Пробел запускает игру.
type MenuState struct {
	sm       *StateMachine
	next     *GameState
	renderer *render.SpriteRenderer
	history  []int // прошлые рекорды, лучший первым
}

func NewMenuState(sm *StateMachine, next *GameState, renderer *render.SpriteRenderer, history []int) *MenuState {
	return &MenuState{sm: sm, next: next, renderer: renderer, history: history}
}

func (m *MenuState) Enter() {
	// Музыка молчит, пока игра не началась
	m.next.Game().SetPaused(true)
}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	r := m.renderer.Bind(screen)
	r.DrawBackground()
	r.DrawOverlay()
	r.DrawText(config.WindowTitle, 365, 250, config.HUDColor)
	r.DrawText("Press Space to start", 330, 280, config.PausedColor)
	r.DrawText(fmt.Sprintf("Record: %d", m.next.Game().Record()), 355, 310, config.HUDColor)
	for i, line := range HistoryLines(m.history) {
		r.DrawText(line, 355, 340+float64(i)*16, config.PausedColor)
	}
}

// HistoryLines formats past records for the title screen.
func HistoryLines(history []int) []string {
	if len(history) == 0 {
		return nil
	}
	lines := make([]string, 0, len(history)+1)
	lines = append(lines, "Best scores:")
	for i, score := range history {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, score))
	}
	return lines
}

func (m *MenuState) Exit() {
	m.next.Game().SetPaused(false)
}
