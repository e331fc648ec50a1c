// internal/app/game.go
package app

import (
	"log"

	"space-dude/internal/audio"
	"space-dude/internal/config"
	"space-dude/internal/entity"
	"space-dude/internal/event"
	"space-dude/internal/input"
	"space-dude/internal/interfaces"
	"space-dude/internal/system"
	"space-dude/internal/utils"
)

// Surface is where Render draws. See system.Surface.
type Surface = system.Surface

// Rand is the random source the game rolls spawns with.
type Rand = utils.Rand

// Options are the collaborators a Game is built with. Zero values are
// replaced by silent defaults.
type Options struct {
	Rand    Rand
	Sound   audio.Sink
	Records RecordKeeper
	Muted   bool
}

// RecordKeeper loads the best score once and accepts improvements.
type RecordKeeper interface {
	interfaces.RecordKeeper
	Load() int
}

// Game holds the main game state and logic. It is driven by exactly one
// Update call per frame and is not safe for concurrent use.
type Game struct {
	World            *entity.World
	MovementSystem   *system.MovementSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	CoinSystem       *system.CoinSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	VisualEffects    *system.VisualEffectSystem
	EventDispatcher  *event.Dispatcher
	Rng              Rand
	Sound            audio.Sink

	pauseToggle *input.Toggle
	muteToggle  *input.Toggle
	frame       uint64
	restarts    int
}

// NewGame initializes a new game instance and reads the record once.
func NewGame(opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = utils.NewPRNGService(0)
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}

	world := entity.NewWorld()
	world.State.Muted = opts.Muted
	if opts.Records != nil {
		world.State.Record = opts.Records.Load()
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             opts.Rand,
		Sound:           opts.Sound,
		pauseToggle:     input.NewToggle(config.ToggleCooldownFrames),
		muteToggle:      input.NewToggle(config.ToggleCooldownFrames),
	}
	g.MovementSystem = system.NewMovementSystem(world)
	g.WeaponSystem = system.NewWeaponSystem(world)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(world, opts.Rand)
	g.CoinSystem = system.NewCoinSystem(world, eventDispatcher, opts.Rand)
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)
	var records interfaces.RecordKeeper
	if opts.Records != nil {
		records = opts.Records
	}
	g.StateSystem = system.NewStateSystem(world, records, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(world)
	g.VisualEffects = system.NewVisualEffectSystem(world, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)
	eventDispatcher.Subscribe(event.ShipDestroyed, listener)
	eventDispatcher.Subscribe(event.CoinCollected, listener)
	eventDispatcher.Subscribe(event.GameRestarted, listener)

	g.syncMusic()
	return g
}

// GameEventListener обрабатывает события, важные для звука.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.ShipDestroyed:
		l.game.playSound(audio.SoundExplosion)
	case event.CoinCollected:
		l.game.playSound(audio.SoundPickup)
	case event.GameRestarted:
		l.game.restarts++
		log.Printf("Game restarted (%d), record %d", l.game.restarts, l.game.World.State.Record)
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(in input.Source) {
	// Мёртвые сущности удаляются в конце кадра, даже если кадр прерван
	defer g.World.Compact()
	g.frame++

	g.handleToggles(in)
	if g.World.State.Paused {
		return
	}
	// Кольца взрывов живут и во время задержки конца игры
	g.VisualEffects.Update()
	if g.StateSystem.Tick() {
		return
	}

	g.MovementSystem.Update(in)
	g.WeaponSystem.Update(in)
	g.ProjectileSystem.Update()
	if g.CombatSystem.Update() {
		return
	}
	g.WaveSystem.Update()
	g.CoinSystem.Update()
}

// Render draws the current state. fps is only shown in the HUD.
func (g *Game) Render(surface Surface, fps float64) {
	g.RenderSystem.Draw(surface, fps)
}

// --- Public Accessors & Mutators ---

func (g *Game) Score() int     { return g.World.State.Score }
func (g *Game) Record() int    { return g.World.State.Record }
func (g *Game) IsPaused() bool { return g.World.State.Paused }
func (g *Game) IsMuted() bool  { return g.World.State.Muted }
func (g *Game) IsOver() bool   { return g.World.State.GameOver }
func (g *Game) Frame() uint64  { return g.frame }
func (g *Game) Restarts() int  { return g.restarts }

// SetPaused pauses or resumes the simulation, e.g. when the window loses focus.
func (g *Game) SetPaused(paused bool) {
	if g.World.State.Paused == paused {
		return
	}
	g.World.State.Paused = paused
	g.EventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: paused})
	g.syncMusic()
}

// SetMuted mutes or unmutes all sound.
func (g *Game) SetMuted(muted bool) {
	if g.World.State.Muted == muted {
		return
	}
	g.World.State.Muted = muted
	g.EventDispatcher.Dispatch(event.Event{Type: event.MuteToggled, Data: muted})
	g.syncMusic()
}

// --- Private Helper Functions ---

func (g *Game) handleToggles(in input.Source) {
	if g.pauseToggle.Update(in.Held(input.Pause)) {
		g.SetPaused(!g.World.State.Paused)
	}
	if g.muteToggle.Update(in.Held(input.Mute)) {
		g.SetMuted(!g.World.State.Muted)
	}
}

func (g *Game) playSound(sound audio.Sound) {
	if g.World.State.Muted {
		return
	}
	g.Sound.Play(sound)
}

func (g *Game) syncMusic() {
	st := g.World.State
	g.Sound.SetMusicPlaying(!st.Paused && !st.Muted)
}
