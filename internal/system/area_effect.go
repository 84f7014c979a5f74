// internal/system/area_effect.go
package system

import (
	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/utils"
	"go-social-defense/pkg/geom"
)

// attackerTrain: тип атакующего для поездов, множитель всегда ×1.
const attackerTrain = "train"

// AreaEffectSystem двигает поезда, бананы и реплики.
type AreaEffectSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
	rng    *utils.PRNGService
}

func NewAreaEffectSystem(ecs *entity.ECS, damage *DamageSystem, rng *utils.PRNGService) *AreaEffectSystem {
	return &AreaEffectSystem{ecs: ecs, damage: damage, rng: rng}
}

// Update продвигает временные эффекты на dt тиков. Поезд бьёт врага
// не больше раза и после конца игры урона не наносит.
func (s *AreaEffectSystem) Update(dt float64) {
	for _, t := range s.ecs.Trains {
		t.Update(dt)
		if !t.Alive() || s.damage.session.GameOver {
			continue
		}
		s.collide(t)
	}
	for _, b := range s.ecs.Bananas {
		b.Update(dt)
	}
	for _, b := range s.ecs.Bubbles {
		b.Update(dt)
	}
}

func (s *AreaEffectSystem) collide(t *component.Train) {
	for _, e := range s.ecs.Enemies {
		if !e.Targetable() || geom.Distance(t.Position, e.Position) >= t.HitRadius {
			continue
		}
		if !t.MarkHit(e.ID) {
			continue
		}
		s.damage.Apply(e, t.Damage, attackerTrain)
		Say(s.ecs, e.Position, "CHOO CHOO! 🚂")
		Scatter(s.ecs, s.rng, e.Position, config.BananasOnTrain)
	}
}
