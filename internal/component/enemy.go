// internal/component/enemy.go
package component

import (
	"image/color"

	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID           types.EntityID
	TypeID       string // ID из enemies.yaml
	Name         string
	MaxHealth    float64
	Health       float64
	BaseSpeed    float64 // px per tick, уже масштабирована по номеру волны
	Speed        float64 // эффективная скорость в последнем тике
	Reward       int
	SocialDamage float64
	Color        color.RGBA
	Icon         string
	Boss         bool

	Position     geom.Point
	Path         []geom.Point // путь карты, только для чтения
	PathIndex    int          // индекс пути в карте
	NextWaypoint int          // точка пути, к которой идёт враг

	SlowRemaining    float64 // тики
	StunRemaining    float64
	GrappleRemaining float64
	Grappled         bool

	Alive      bool
	Converted  bool
	ReachedEnd bool
}

// Targetable: можно ли целиться во врага и наносить ему урон.
func (e *Enemy) Targetable() bool {
	return e.Alive && !e.Converted
}

// ApplySlow продлевает замедление, короткое не обрезает длинное.
func (e *Enemy) ApplySlow(ticks float64) {
	e.SlowRemaining = max(e.SlowRemaining, ticks)
}

// Stun продлевает оглушение так же, как ApplySlow.
func (e *Enemy) Stun(ticks float64) {
	e.StunRemaining = max(e.StunRemaining, ticks)
}

// Hold обездвиживает врага на ticks. false, если он уже удержан.
func (e *Enemy) Hold(ticks float64) bool {
	if e.Grappled {
		return false
	}
	e.Grappled = true
	e.GrappleRemaining = ticks
	return true
}

// Release clears a grapple hold.
func (e *Enemy) Release() {
	e.Grappled = false
	e.GrappleRemaining = 0
}

// Convert переводит врага на сторону игрока. Он разворачивается и идёт
// к началу пути.
func (e *Enemy) Convert(c color.RGBA) {
	if e.Converted {
		return
	}
	e.Converted = true
	e.Color = c
	e.NextWaypoint--
}

// HealthFraction: доля здоровья в [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
