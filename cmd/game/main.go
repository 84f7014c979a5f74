// cmd/game/main.go
package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-social-defense/internal/app"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/logging"
	"go-social-defense/internal/state"
	"go-social-defense/internal/storage"
	"go-social-defense/internal/telemetry"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Game
	reloads        chan *defs.Library
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	// Новый контент подхватывается на следующем выборе карты.
	select {
	case lib := <-a.reloads:
		a.game.ReplaceLibrary(lib)
	default:
	}

	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	settings, err := config.Load(".")
	if err != nil {
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logging.New(settings.LogLevel, os.Stderr, false)

	lib, err := defs.Load(settings.ContentDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", settings.ContentDir).Msg("Failed to load content")
	}

	autosaveSlot := ""
	if settings.Game.Autosave {
		autosaveSlot = settings.Storage.Slot
	}
	store, err := storage.Open(settings.Storage.Path, autosaveSlot, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", settings.Storage.Path).Msg("Failed to open save storage")
	}
	defer store.Close()

	counters, err := telemetry.NewCounters()
	if err != nil {
		log.Warn().Err(err).Msg("Telemetry disabled")
		counters = nil
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := app.NewGame(lib, app.Options{
		Seed:      seed,
		Speed:     settings.Game.Speed,
		Logger:    log,
		Counters:  counters,
		Autosaver: store,
	})

	reloads := make(chan *defs.Library, 1)
	if settings.WatchContent && settings.ContentDir != "" {
		watcher, err := defs.NewWatcher(settings.ContentDir)
		if err != nil {
			log.Error().Err(err).Msg("Content watcher disabled")
		} else {
			defer watcher.Close()
			go watchContent(watcher, settings.ContentDir, reloads, log)
		}
	}

	sm := state.NewStateMachine(&state.Context{
		Game:   game,
		Store:  store,
		Slot:   settings.Storage.Slot,
		Logger: log,
	})
	sm.SetState(state.NewMenuState(sm))
	if settings.Game.StartMap >= 0 {
		if err := game.SelectMap(settings.Game.StartMap); err != nil {
			log.Warn().Err(err).Int("map", settings.Game.StartMap).Msg("Start map unavailable")
		} else {
			sm.SetState(state.NewGameState(sm))
		}
	}

	a := &AppGame{
		stateMachine:   sm,
		game:           game,
		reloads:        reloads,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Social Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
}

// watchContent перезагружает библиотеку при изменении файлов контента.
// Битый файл оставляет в силе прежнюю версию.
func watchContent(w *defs.Watcher, dir string, out chan<- *defs.Library, log zerolog.Logger) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			lib, err := defs.Load(dir)
			if err != nil {
				log.Error().Err(err).Str("file", name).Msg("Content reload failed")
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- lib
			log.Info().Str("file", name).Msg("Content reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Content watcher error")
		}
	}
}
