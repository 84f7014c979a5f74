// internal/system/damage.go
package system

import (
	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/internal/utils"
)

// DamageSystem применяет урон к врагам и раздаёт награду за победу.
type DamageSystem struct {
	ecs             *entity.ECS
	session         *component.Session
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, session *component.Session, library *defs.Library,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		session:         session,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Multiplier ищет преимущество типа атакующего против enemyType.
// Не друзья (поезда) всегда бьют с ×1.
func (s *DamageSystem) Multiplier(attackerType, enemyType string) float64 {
	def, ok := s.library.Friends[attackerType]
	if !ok {
		return 1
	}
	return defs.StatBlock{Strong: def.Strong, Weak: def.Weak}.Multiplier(enemyType)
}

// Apply наносит damage × множитель и сообщает, погиб ли враг.
// Мёртвые, переманенные и законченная игра урона не получают.
func (s *DamageSystem) Apply(e *component.Enemy, damage float64, attackerType string) bool {
	if !e.Targetable() || s.session.GameOver {
		return false
	}

	e.Health = max(0, e.Health-damage*s.Multiplier(attackerType, e.TypeID))
	if e.Health > 0 {
		return false
	}

	e.Alive = false
	s.session.Currency += e.Reward
	s.session.Score += e.Reward
	s.session.Defeated++
	Scatter(s.ecs, s.rng, e.Position, config.BananasOnKill)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		EnemyID:      e.ID,
		EnemyType:    e.TypeID,
		Position:     e.Position,
		Reward:       e.Reward,
		AttackerType: attackerType,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.CurrencyChanged, Data: event.CurrencyData{
		Delta:   e.Reward,
		Balance: s.session.Currency,
	}})
	return true
}
