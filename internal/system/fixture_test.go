package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"go-social-defense/internal/component"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/internal/utils"
	"go-social-defense/pkg/geom"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	lib        *defs.Library
	ecs        *entity.ECS
	session    *component.Session
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	rec        *recorder

	damage      *DamageSystem
	combat      *CombatSystem
	movement    *MovementSystem
	projectiles *ProjectileSystem
	specials    *SpecialSystem
	status      *StatusEffectSystem
	upgrades    *UpgradeSystem
	waves       *WaveSystem
	effects     *AreaEffectSystem
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.Load("")
	require.NoError(t, err)

	w := &world{
		lib: lib,
		ecs: entity.NewECS(),
		session: &component.Session{
			Phase:        component.PlayingPhase,
			Health:       20,
			Currency:     100,
			Wave:         1,
			Speed:        1,
			Map:          lib.Map(0),
			UnlockedMaps: []int{0},
		},
		rng:        utils.NewPRNGService(1),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	for _, typ := range []event.EventType{
		event.EnemyKilled, event.EnemyReachedEnd, event.EnemyConverted, event.WaveStarted,
		event.WaveCompleted, event.WaveAdvanced, event.CurrencyChanged, event.GameOver, event.MapUnlocked,
	} {
		w.dispatcher.Subscribe(typ, w.rec)
	}

	w.damage = NewDamageSystem(w.ecs, w.session, lib, w.rng, w.dispatcher)
	w.combat = NewCombatSystem(w.ecs)
	w.movement = NewMovementSystem(w.ecs, w.session, w.dispatcher)
	w.projectiles = NewProjectileSystem(w.ecs, w.damage)
	w.specials = NewSpecialSystem(w.ecs, w.session, w.rng, w.dispatcher)
	w.status = NewStatusEffectSystem(w.ecs, w.dispatcher)
	w.upgrades = NewUpgradeSystem(lib)
	w.waves = NewWaveSystem(w.ecs, w.session, lib, w.rng, w.dispatcher, zerolog.Nop())
	w.effects = NewAreaEffectSystem(w.ecs, w.damage, w.rng)
	return w
}

func (w *world) friend(t *testing.T, typeID string, p geom.Point) *component.Friend {
	t.Helper()
	def, ok := w.lib.Friends[typeID]
	require.True(t, ok, typeID)
	f := &component.Friend{
		TypeID:     def.ID,
		Name:       def.Name,
		Position:   p,
		Stats:      def.Stats(),
		BaseDamage: def.Damage,
	}
	if a, ok := def.Ability.(defs.Scholar); ok {
		f.Experience = &component.Experience{Max: a.MaxLevel, GainRate: a.GainRate}
	}
	w.ecs.AddFriend(f)
	return f
}

func (w *world) enemy(t *testing.T, typeID string, p geom.Point) *component.Enemy {
	t.Helper()
	def, ok := w.lib.Enemies[typeID]
	require.True(t, ok, typeID)
	e := &component.Enemy{
		TypeID:       def.ID,
		Name:         def.Name,
		MaxHealth:    def.Health,
		Health:       def.Health,
		BaseSpeed:    def.Speed,
		Speed:        def.Speed,
		Reward:       def.Reward,
		SocialDamage: def.SocialDamage,
		Position:     p,
		Path:         []geom.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}},
		NextWaypoint: 1,
		Alive:        true,
	}
	w.ecs.AddEnemy(e)
	return e
}
