// internal/system/projectile.go
package system

import (
	"go-social-defense/internal/config"
	"go-social-defense/internal/entity"
	"go-social-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage}
}

// Update двигает снаряды к целям на dt тиков. Снаряд, чья цель
// пропала, погибла или переманена, исчезает без урона. После конца
// игры исчезают все снаряды.
func (s *ProjectileSystem) Update(dt float64) {
	for _, p := range s.ecs.Projectiles {
		if !p.Alive {
			continue
		}
		if s.damage.session.GameOver {
			p.Alive = false
			continue
		}

		target, ok := s.ecs.Enemy(p.TargetID)
		if !ok || !target.Targetable() {
			p.Alive = false
			continue
		}

		if geom.Distance(p.Position, target.Position) < config.ProjectileHitRadius {
			s.damage.Apply(target, p.Damage, p.AttackerType)
			p.Alive = false
			continue
		}
		p.Position, _ = geom.StepToward(p.Position, target.Position, p.Speed*dt)
	}
}
