// internal/component/status_effect.go
package component

import "go-social-defense/internal/types"

// Experience: рост студента от убийств рядом.
type Experience struct {
	Level    int
	Max      int
	GainRate int
}

// Graduated: достигнут ли потолок уровня.
func (e *Experience) Graduated() bool {
	return e.Level >= e.Max
}

// GrappleHold: один удерживаемый враг.
type GrappleHold struct {
	EnemyID   types.EntityID
	Remaining float64 // тики
}
