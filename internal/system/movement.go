// internal/system/movement.go
package system

import (
	"fmt"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/pkg/geom"
)

// MovementSystem ведёт врагов по пути и обрабатывает их таймеры.
type MovementSystem struct {
	ecs             *entity.ECS
	session         *component.Session
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, session *component.Session, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, session: session, eventDispatcher: eventDispatcher}
}

// Update двигает живых врагов на dt тиков.
func (s *MovementSystem) Update(dt float64) {
	for _, e := range s.ecs.Enemies {
		if e.Alive {
			s.step(e, dt)
		}
	}
}

func (s *MovementSystem) step(e *component.Enemy, dt float64) {
	if e.StunRemaining > 0 {
		e.StunRemaining -= dt
		return
	}
	if e.Grappled && e.GrappleRemaining > 0 {
		e.GrappleRemaining -= dt
		if e.GrappleRemaining <= 0 {
			e.Release()
		}
		return
	}

	e.Speed = e.BaseSpeed
	if e.SlowRemaining > 0 {
		e.Speed *= config.SlowFactor
		e.SlowRemaining -= dt
	}

	if e.Converted {
		// Переманенный враг идёт обратно и исчезает за началом пути.
		if e.NextWaypoint < 0 {
			e.Alive = false
			return
		}
		if s.moveToward(e, dt) {
			e.NextWaypoint--
		}
		return
	}

	if e.NextWaypoint >= len(e.Path) {
		s.reachEnd(e)
		return
	}
	if s.moveToward(e, dt) {
		e.NextWaypoint++
	}
}

// moveToward возвращает true, когда враг ближе эпсилона к точке пути.
// Точку враг никогда не проскакивает.
func (s *MovementSystem) moveToward(e *component.Enemy, dt float64) bool {
	target := e.Path[e.NextWaypoint]
	if geom.Distance(e.Position, target) < config.EnemyArriveEpsilon {
		return true
	}
	e.Position, _ = geom.StepToward(e.Position, target, e.Speed*dt)
	return false
}

func (s *MovementSystem) reachEnd(e *component.Enemy) {
	e.Alive = false
	if e.ReachedEnd {
		return
	}
	e.ReachedEnd = true

	s.session.Health = max(0, s.session.Health-e.SocialDamage)
	Say(s.ecs, e.Position, fmt.Sprintf("%s drained %g social energy!", e.Name, e.SocialDamage))
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndData{
		EnemyID:      e.ID,
		EnemyType:    e.TypeID,
		Name:         e.Name,
		SocialDamage: e.SocialDamage,
		Health:       s.session.Health,
	}})

	if s.session.Health <= 0 && !s.session.GameOver {
		s.session.GameOver = true
		s.session.Phase = component.GameOverPhase
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Wave: s.session.Wave}})
	}
}
