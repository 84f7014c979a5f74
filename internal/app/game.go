// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric/noop"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/internal/system"
	"go-social-defense/internal/telemetry"
	"go-social-defense/internal/utils"
)

var (
	ErrMapLocked  = errors.New("map is locked")
	ErrUnknownMap = errors.New("unknown map")
)

// Autosaver сохраняет сессию после каждой волны.
type Autosaver interface {
	Autosave(data SaveData) error
}

// Options настраивает Game. Нулевые значения допустимы.
type Options struct {
	Seed      int64
	Speed     float64
	Logger    zerolog.Logger
	Counters  *telemetry.Counters
	Autosaver Autosaver
}

// Game: контекст симуляции одной сессии. Все системы работают с его ECS и
// Session; меняется только из Update и действий игрока.
type Game struct {
	Library         *defs.Library
	ECS             *entity.ECS
	Session         *component.Session
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	DamageSystem       *system.DamageSystem
	CombatSystem       *system.CombatSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	SpecialSystem      *system.SpecialSystem
	StatusEffectSystem *system.StatusEffectSystem
	UpgradeSystem      *system.UpgradeSystem
	WaveSystem         *system.WaveSystem
	AreaEffectSystem   *system.AreaEffectSystem

	logger    zerolog.Logger
	counters  *telemetry.Counters
	autosaver Autosaver

	gameTime     float64
	isPaused     bool
	defaultSpeed float64
	pendingLib   *defs.Library

	notice      string
	noticeTimer float64
}

// NewGame собирает системы вокруг lib. Сессия начинается с выбора карты.
func NewGame(lib *defs.Library, opts Options) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	counters := opts.Counters
	if counters == nil {
		var err error
		if counters, err = telemetry.NewCounters(); err != nil {
			opts.Logger.Warn().Err(err).Msg("Falling back to no-op counters")
			counters, _ = telemetry.NewCountersWith(noop.Meter{})
		}
	}
	speed := opts.Speed
	if speed != config.SpeedFast {
		speed = config.SpeedNormal
	}

	ecs := entity.NewECS()
	session := &component.Session{}
	rng := utils.NewPRNGService(opts.Seed)
	eventDispatcher := event.NewDispatcher()
	// копия, чтобы горячая перезагрузка могла заменить содержимое на месте
	library := *lib

	g := &Game{
		Library:         &library,
		ECS:             ecs,
		Session:         session,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		logger:          opts.Logger,
		counters:        counters,
		autosaver:       opts.Autosaver,
		defaultSpeed:    speed,
	}

	g.DamageSystem = system.NewDamageSystem(ecs, session, g.Library, rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, session, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem)
	g.SpecialSystem = system.NewSpecialSystem(ecs, session, rng, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher)
	g.UpgradeSystem = system.NewUpgradeSystem(g.Library)
	g.WaveSystem = system.NewWaveSystem(ecs, session, g.Library, rng, eventDispatcher, opts.Logger)
	g.AreaEffectSystem = system.NewAreaEffectSystem(ecs, g.DamageSystem, rng)

	eventDispatcher.SubscribeAll(&GameEventListener{game: g},
		event.EnemyKilled, event.EnemyReachedEnd, event.EnemyConverted,
		event.WaveCompleted, event.WaveAdvanced, event.FriendPlaced, event.FriendUpgraded,
		event.FriendMoved, event.GameOver, event.MapUnlocked, event.Notice,
	)

	g.Reset()
	return g
}

// Reset начинает заново с выбора карты, открыта только первая.
func (g *Game) Reset() {
	g.applyPendingLibrary()
	g.resetSession(0, nil)
	g.Session.Phase = component.MapSelectPhase
	g.Session.UnlockedMaps = []int{0}
}

// resetSession удаляет все сущности и возвращает стартовую экономику.
func (g *Game) resetSession(mapIndex int, m *defs.MapDefinition) {
	unlocked := g.Session.UnlockedMaps
	*g.Session = component.Session{
		Phase:        component.PlayingPhase,
		Health:       config.StartHealth,
		Currency:     config.StartCurrency,
		Wave:         config.StartWave,
		MapIndex:     mapIndex,
		Map:          m,
		UnlockedMaps: unlocked,
		Speed:        g.defaultSpeed,
	}
	g.ECS.Reset()
	g.WaveSystem.Reset()
	g.gameTime = 0
	g.isPaused = false
}

// SelectMap начинает новую сессию на открытой карте.
func (g *Game) SelectMap(index int) error {
	g.applyPendingLibrary()
	m := g.Library.Map(index)
	if m == nil {
		return g.reject(fmt.Errorf("%w: %d", ErrUnknownMap, index))
	}
	if !g.Session.IsUnlocked(index) {
		return g.reject(fmt.Errorf("%w: %s", ErrMapLocked, m.Name))
	}

	g.resetSession(index, m)
	g.logger.Info().Int("map", index).Str("name", m.Name).Msg("Map selected")
	return nil
}

// ReplaceLibrary ставит новый контент в очередь, он применяется при следующем
// выборе карты или сбросе, идущая волна его не видит.
func (g *Game) ReplaceLibrary(lib *defs.Library) {
	g.pendingLib = lib
}

func (g *Game) applyPendingLibrary() {
	if g.pendingLib == nil {
		return
	}
	*g.Library = *g.pendingLib
	g.pendingLib = nil
	g.logger.Info().Int("friends", len(g.Library.Friends)).Int("maps", len(g.Library.Maps)).Msg("Content reloaded")
}

// Update продвигает симуляцию на deltaTime секунд реального времени.
func (g *Game) Update(deltaTime float64) {
	if g.noticeTimer > 0 {
		g.noticeTimer -= deltaTime
		if g.noticeTimer <= 0 {
			g.notice = ""
		}
	}
	if g.isPaused || g.Session.Phase == component.MapSelectPhase {
		return
	}

	speed := g.Session.Speed
	dt := deltaTime * config.TicksPerSec * speed
	dtMs := deltaTime * 1000 * speed
	g.gameTime += dtMs
	g.ECS.GameTime = g.gameTime

	if !g.Session.GameOver {
		g.StatusEffectSystem.Update(dt)
		g.CombatSystem.Update(dtMs)
		g.SpecialSystem.Update(dt)
		g.MovementSystem.Update(dt)
	}
	g.ProjectileSystem.Update(dt)
	g.AreaEffectSystem.Update(dt)
	g.ECS.Prune()
	g.WaveSystem.Update(dtMs, deltaTime)
}

// StartWave запускает текущую волну.
func (g *Game) StartWave() error {
	if err := g.WaveSystem.StartWave(); err != nil {
		return g.reject(err)
	}
	return nil
}

// ToggleSpeed переключает 1x и 2x.
func (g *Game) ToggleSpeed() float64 {
	if g.Session.Speed == config.SpeedFast {
		g.Session.Speed = config.SpeedNormal
	} else {
		g.Session.Speed = config.SpeedFast
	}
	return g.Session.Speed
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// WavePreview описывает волну, которую запустит следующий StartWave.
func (g *Game) WavePreview() system.WavePreview {
	return g.WaveSystem.Preview(g.Session.Wave)
}

// Notice возвращает последнее сообщение об отказе, пока оно на экране.
func (g *Game) Notice() string {
	return g.notice
}

// reject сообщает игроку об err и возвращает её без изменений.
func (g *Game) reject(err error) error {
	g.EventDispatcher.Dispatch(event.Event{Type: event.Notice, Data: event.NoticeData{Message: err.Error(), Err: err}})
	return err
}

// Maps возвращает каталог карт для экрана выбора.
func (g *Game) Maps() []defs.MapDefinition {
	return g.Library.Maps
}

// UnlockedMaps возвращает индексы, которые примет SelectMap.
func (g *Game) UnlockedMaps() []int {
	return slices.Clone(g.Session.UnlockedMaps)
}
