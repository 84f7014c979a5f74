// internal/system/status_effect.go
package system

import (
	"fmt"
	"math"

	"go-social-defense/internal/component"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/pkg/geom"
)

// StatusEffectSystem ведёт захваты борца и опыт учёного.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	s := &StatusEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// Update отсчитывает захваты. Захват пропавшего, мёртвого или
// переманенного врага снимается без изменения врага.
func (s *StatusEffectSystem) Update(dt float64) {
	for _, f := range s.ecs.Friends {
		if len(f.Grapples) == 0 {
			continue
		}
		kept := f.Grapples[:0]
		for _, hold := range f.Grapples {
			e, ok := s.ecs.Enemy(hold.EnemyID)
			if !ok || !e.Targetable() {
				continue
			}
			hold.Remaining -= dt
			if hold.Remaining <= 0 {
				e.Release()
				continue
			}
			kept = append(kept, hold)
		}
		f.Grapples = kept
	}
}

func (s *StatusEffectSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := event.Payload[event.EnemyKilledData](e)
	if !ok {
		return
	}
	for _, f := range s.ecs.Friends {
		s.gainExperience(f, data.Position)
	}
}

func (s *StatusEffectSystem) gainExperience(f *component.Friend, at geom.Point) {
	a, ok := f.Stats.Ability.(defs.Scholar)
	if !ok || f.Experience == nil || f.Experience.Graduated() {
		return
	}
	if geom.Distance(f.Position, at) >= a.Radius {
		return
	}

	f.Experience.Level = min(f.Experience.Level+f.Experience.GainRate, f.Experience.Max)
	f.Stats.Damage = ScholarDamage(f.BaseDamage, f.Experience.Level, a.PerLevel)
	if f.Experience.Graduated() {
		Say(s.ecs, f.Position, fmt.Sprintf("%s graduated! 🎓", f.Name))
	}
}

// ScholarDamage: базовый урон плюс perLevel за каждый уровень опыта.
func ScholarDamage(base float64, level int, perLevel float64) float64 {
	return math.Floor(base * (1 + float64(level)*perLevel))
}
