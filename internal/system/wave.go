// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/internal/utils"
	"go-social-defense/pkg/geom"
)

var ErrWaveInProgress = errors.New("wave already in progress")

// spawnEntry: запись планировщика для текущей волны. Время в мс игрового времени.
type spawnEntry struct {
	def      *defs.WaveDefinition
	elapsed  float64
	interval float64
	spawned  int
	target   int
}

func (e *spawnEntry) done() bool {
	return e.spawned >= e.target
}

// WaveSystem спавнит врагов и переводит игру к следующей волне.
type WaveSystem struct {
	ecs             *entity.ECS
	session         *component.Session
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger

	spawn     *spawnEntry
	pending   bool
	advanceIn float64 // секунды реального времени
}

func NewWaveSystem(ecs *entity.ECS, session *component.Session, library *defs.Library,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		session:         session,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// StartWave планирует появления для текущей волны.
func (s *WaveSystem) StartWave() error {
	switch {
	case s.session.GameOver:
		return ErrGameOver
	case s.session.WaveActive || s.pending:
		return ErrWaveInProgress
	case s.session.Map == nil:
		return ErrNoMap
	}

	wave := s.session.Wave
	def := s.library.Wave(wave)
	s.spawn = &spawnEntry{
		def:      def,
		interval: defs.SpawnInterval(wave),
		target:   def.ScaledCount(wave),
	}
	s.session.WaveActive = true

	s.logger.Info().Int("wave", wave).Str("name", def.Name).Int("count", s.spawn.target).Msg("Wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{
		Wave: wave, Name: def.Name, Count: s.spawn.target,
	}})
	return nil
}

// Update ведёт появления по игровому времени, а переход волны по реальному.
func (s *WaveSystem) Update(dtMs, realSeconds float64) {
	if s.spawn != nil {
		if s.session.GameOver || !s.session.WaveActive {
			s.spawn = nil
		} else {
			s.spawn.elapsed += dtMs
			for !s.spawn.done() && s.spawn.elapsed >= s.spawn.interval {
				s.spawn.elapsed -= s.spawn.interval
				s.spawnEnemy(s.spawn.def.EnemyAt(s.spawn.spawned))
				s.spawn.spawned++
			}
		}
	}

	if s.spawn != nil && s.spawn.done() && s.ecs.LivingEnemies() == 0 && !s.session.GameOver {
		s.completeWave()
	}

	if s.pending {
		s.advanceIn -= realSeconds
		if s.advanceIn <= 0 {
			s.pending = false
			s.advance()
		}
	}
}

// Pending: ожидается ли объявление следующей волны.
func (s *WaveSystem) Pending() bool {
	return s.pending
}

// Progress: сколько появилось и сколько всего в активной волне.
func (s *WaveSystem) Progress() (spawned, total int) {
	if s.spawn == nil {
		return 0, 0
	}
	return s.spawn.spawned, s.spawn.target
}

// Reset отменяет запланированные появления и переход.
func (s *WaveSystem) Reset() {
	s.spawn = nil
	s.pending = false
	s.advanceIn = 0
}

func (s *WaveSystem) completeWave() {
	s.session.WaveActive = false
	s.spawn = nil
	s.pending = true
	s.advanceIn = config.WaveAdvanceDelay

	s.logger.Info().Int("wave", s.session.Wave).Int("health", int(s.session.Health)).Msg("Wave completed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Wave: s.session.Wave}})
}

func (s *WaveSystem) advance() {
	s.session.Wave++
	wave := s.session.Wave

	if wave > config.UnlockAfterWave {
		next := s.session.MapIndex + 1
		if next < len(s.library.Maps) && s.session.Unlock(next) {
			s.logger.Info().Int("map", next).Msg("Map unlocked")
			s.eventDispatcher.Dispatch(event.Event{Type: event.MapUnlocked, Data: event.MapData{
				Index: next, Name: s.library.Maps[next].Name,
			}})
		}
	}

	s.session.ResetOneShots()

	reward := config.WaveRewardBase + wave*config.WaveRewardStep
	s.session.Currency += reward
	s.eventDispatcher.Dispatch(event.Event{Type: event.CurrencyChanged, Data: event.CurrencyData{
		Delta: reward, Balance: s.session.Currency,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveData{Wave: wave, Reward: reward}})
}

func (s *WaveSystem) spawnEnemy(typeID string) {
	m := s.session.Map
	if m == nil {
		panic("system: spawn with no map selected")
	}
	def, ok := s.library.Enemies[typeID]
	if !ok {
		panic(fmt.Sprintf("system: wave references unknown enemy %q", typeID))
	}

	sp := m.Spawns[s.rng.Intn(len(m.Spawns))]
	wave := s.session.Wave
	health := def.ScaledHealth(wave)
	speed := def.ScaledSpeed(wave)

	s.ecs.AddEnemy(&component.Enemy{
		TypeID:       def.ID,
		Name:         def.Name,
		MaxHealth:    health,
		Health:       health,
		BaseSpeed:    speed,
		Speed:        speed,
		Reward:       def.ScaledReward(wave),
		SocialDamage: def.SocialDamage,
		Color:        def.Color.RGBA,
		Icon:         def.Icon,
		Boss:         def.Boss,
		Position:     geom.Point{X: sp.X - config.EnemySpawnBackoff, Y: sp.Y},
		Path:         m.Paths[sp.PathIndex],
		PathIndex:    sp.PathIndex,
		NextWaypoint: 1,
		Alive:        true,
	})
}

// WavePreview описывает волну для экрана подготовки.
type WavePreview struct {
	Wave        int
	Name        string
	Description string
	Count       int
	Enemies     []string // имена типов в порядке появления
	Boss        bool
}

// Preview описывает, что принесёт волна wave.
func (s *WaveSystem) Preview(wave int) WavePreview {
	def := s.library.Wave(wave)
	p := WavePreview{
		Wave:        wave,
		Name:        def.Name,
		Description: def.Description,
		Count:       def.ScaledCount(wave),
	}
	for _, id := range def.Enemies {
		name := id
		if e, ok := s.library.Enemies[id]; ok {
			name = e.Name
			p.Boss = p.Boss || e.Boss
		}
		p.Enemies = append(p.Enemies, name)
	}
	return p
}
