// internal/system/utils.go
package system

import (
	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/utils"
	"go-social-defense/pkg/geom"
)

// Say показывает всплывающий текст над точкой.
func Say(ecs *entity.ECS, pos geom.Point, msg string) {
	ecs.AddBubble(&component.SpeechBubble{
		Position: geom.Point{X: pos.X, Y: pos.Y - config.BubbleOffsetY},
		Message:  msg,
		Life:     config.BubbleLife,
		MaxLife:  config.BubbleLife,
	})
}

// Scatter подбрасывает n бананов из точки.
func Scatter(ecs *entity.ECS, rng *utils.PRNGService, pos geom.Point, n int) {
	for i := 0; i < n; i++ {
		ecs.AddBanana(&component.Banana{
			Position: pos,
			Velocity: geom.Point{
				X: rng.Spread(config.BananaSpread),
				Y: rng.Spread(config.BananaSpread) - config.BananaLift,
			},
			Gravity: config.BananaGravity,
			Life:    config.BananaLife,
			MaxLife: config.BananaLife,
		})
	}
}

// enemiesWithin: доступные цели строго ближе radius, в порядке появления.
func enemiesWithin(ecs *entity.ECS, center geom.Point, radius float64) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range ecs.Enemies {
		if e.Targetable() && geom.Distance(center, e.Position) < radius {
			out = append(out, e)
		}
	}
	return out
}
