// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"space-dude/internal/app"
	"space-dude/internal/audio"
	"space-dude/internal/config"
	"space-dude/internal/record"
	"space-dude/internal/state"
	"space-dude/internal/utils"
	"space-dude/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	fullscreen    = flag.Bool("fullscreen", false, "start in fullscreen mode")
	muted         = flag.Bool("muted", false, "start with sound off")
	recordPath    = flag.String("record", "", "record file (default depends on -record-backend)")
	recordBackend = flag.String("record-backend", "file", "record storage: file or sqlite")
	seed          = flag.Int64("seed", 0, "random seed, 0 means time based")
	startFromMenu = flag.Bool("title", false, "start from the title screen instead of the game")
	pprofAddr     = flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

const historySize = 5

var errUnknownBackend = errors.New("unknown record backend")

// records is the persistence side of a session.
type records struct {
	keeper  *record.Keeper
	history []int // лучшие результаты для титульного экрана, только sqlite
	close   func() error
}

// openRecords builds the record keeper for backend. A store that cannot be
// opened is logged and replaced by an in-memory record; only an unknown
// backend is an error.
func openRecords(backend, path string) (*records, error) {
	noop := func() error { return nil }
	switch backend {
	case "file":
		if path == "" {
			path = record.DefaultPath
		}
		return &records{keeper: record.NewKeeper(record.NewFileStore(path)), close: noop}, nil
	case "sqlite":
		if path == "" {
			path = filepath.Join("data", "Space_Dude_record.db")
		}
		store, err := openSQLite(path)
		if err != nil {
			log.Printf("WARNING: record store unavailable, keeping the record in memory: %v", err)
			return &records{keeper: record.NewKeeper(nil), close: noop}, nil
		}
		history, err := store.History(historySize)
		if err != nil {
			log.Printf("WARNING: could not read record history: %v", err)
		}
		return &records{keeper: record.NewKeeper(store), history: history, close: store.Close}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownBackend, backend)
	}
}

func openSQLite(path string) (*record.SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}
	return record.OpenSQLite(path)
}

func main() {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	recs, err := openRecords(*recordBackend, *recordPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := recs.close(); err != nil {
			log.Printf("WARNING: failed to close record store: %v", err)
		}
	}()

	var sink audio.Sink = audio.Nop{}
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("WARNING: audio disabled: %v", err)
	} else {
		defer sounds.Cleanup()
		sink = sounds
	}

	rng := utils.NewPRNGService(*seed)
	log.Printf("Starting %s, seed %d", config.WindowTitle, rng.Seed())

	game := app.NewGame(app.Options{
		Rand:    rng,
		Sound:   sink,
		Records: recs.keeper,
		Muted:   *muted,
	})

	renderer := render.NewSpriteRenderer(config.ScreenWidth, config.ScreenHeight, render.DefaultPalette())
	sm := state.NewStateMachine() // Создаём машину состояний
	gameState := state.NewGameState(sm, game, renderer)
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, gameState, renderer, recs.history))
	} else {
		sm.SetState(gameState)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetFullscreen(*fullscreen)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
