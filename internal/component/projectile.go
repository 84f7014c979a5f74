// internal/component/projectile.go
package component

import (
	"image/color"

	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID           types.EntityID
	Position     geom.Point
	TargetID     types.EntityID
	Damage       float64 // без множителя, он считается при попадании
	AttackerType string
	Speed        float64
	Color        color.RGBA
	Alive        bool
}
