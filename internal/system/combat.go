// internal/system/combat.go
package system

import (
	"math"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/pkg/geom"
)

// CombatSystem управляет атакой друзей.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update перевыбирает цели друзей и стреляет, когда перезарядка прошла.
// dtMs: прошедшее игровое время в мс.
func (s *CombatSystem) Update(dtMs float64) {
	for _, f := range s.ecs.Friends {
		f.CreditFireCooldown(dtMs)

		target := s.findNearestEnemyInRange(f.Position, f.Stats.Range)
		f.TargetID = 0
		if target == nil {
			continue
		}
		f.TargetID = target.ID

		if !CanAttack(f) || f.FireCooldown > 0 {
			continue
		}

		if f.Stats.Ability.Wide() && f.HasUpgrade(defs.WideUpgrade) {
			for _, e := range s.ecs.Enemies {
				if e.Targetable() && geom.Distance(f.Position, e.Position) <= f.Stats.Range+defs.WideRangeBonus {
					s.createProjectile(f, e)
				}
			}
		} else {
			s.createProjectile(f, target)
		}
		f.FireCooldown = f.Stats.FireRate
	}
}

// CanAttack: атакует ли друг напрямую.
func CanAttack(f *component.Friend) bool {
	return !f.Stats.Ability.DamageGated() || f.HasUpgrade(defs.GateUpgrade)
}

// findNearestEnemyInRange идёт по врагам в порядке появления, при равенстве
// выигрывает появившийся раньше.
func (s *CombatSystem) findNearestEnemyInRange(from geom.Point, rangeRadius float64) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	for _, e := range s.ecs.Enemies {
		if !e.Targetable() {
			continue
		}
		distance := geom.Distance(from, e.Position)
		if distance < rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = e
		}
	}
	return nearest
}

func (s *CombatSystem) createProjectile(f *component.Friend, target *component.Enemy) {
	s.ecs.AddProjectile(&component.Projectile{
		Position:     f.Position,
		TargetID:     target.ID,
		Damage:       f.Stats.Damage,
		AttackerType: f.TypeID,
		Speed:        config.ProjectileSpeed,
		Color:        f.Stats.Color.RGBA,
		Alive:        true,
	})
}
