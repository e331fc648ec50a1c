// internal/state/game_state.go
package state

import (
	"image/color"

	"space-dude/internal/app"
	"space-dude/internal/config"
	"space-dude/internal/event"
	"space-dude/internal/input"
	"space-dude/internal/system"
	"space-dude/internal/ui"
	"space-dude/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ system.Surface = (*render.SpriteRenderer)(nil)

// GameState — состояние игры: кормит app.Game клавиатурой и рисует его
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.SpriteRenderer
	input    input.Source
	pauseBtn *ui.PauseButton
	soundInd *ui.StateIndicator
}

func NewGameState(sm *StateMachine, game *app.Game, renderer *render.SpriteRenderer) *GameState {
	gs := &GameState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		input:    input.NewKeyboard(),
		pauseBtn: ui.NewPauseButton(config.ScreenWidth-50, 20, 6, config.PausedColor, config.HUDColor),
		soundInd: ui.NewStateIndicator(config.ScreenWidth-20, 20, 6, config.HUDColor, config.OverlayColor),
	}
	gs.pauseBtn.IsPaused = game.IsPaused()
	gs.soundInd.On = !game.IsMuted()
	game.EventDispatcher.Subscribe(event.PauseToggled, gs.pauseBtn)
	game.EventDispatcher.Subscribe(event.MuteToggled, gs.soundInd)
	return gs
}

// Game returns the game this state drives.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() {
	// Пауза при потере фокуса окна, снимается только клавишей паузы
	if !ebiten.IsFocused() {
		g.game.SetPaused(true)
	}
	// Клавиатура опрашивается один раз за кадр
	g.game.Update(input.Capture(g.input))

	g.pauseBtn.Tick()
	g.soundInd.Tick()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	r := g.renderer.Bind(screen)
	g.game.Render(r, ebiten.ActualFPS())
	dimIfPaused(r, g.game.IsPaused())
	g.pauseBtn.Draw(screen)
	g.soundInd.Draw(screen)
}

func (g *GameState) Exit() {
	g.game.SetPaused(true)
}

// dimmer is the part of the renderer the pause screen needs.
type dimmer interface {
	DrawOverlay()
	DrawText(label string, x, y float64, clr color.Color)
}

// dimIfPaused затемняет сцену и повторяет надпись паузы поверх затемнения
func dimIfPaused(d dimmer, paused bool) {
	if !paused {
		return
	}
	d.DrawOverlay()
	d.DrawText(system.PausedLabel, system.PausedLabelX, system.PausedLabelY, config.PausedColor)
}
