// internal/component/visual.go
package component

import (
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// Train едет по пути и наносит урон. Каждого врага бьёт не больше раза.
type Train struct {
	ID           types.EntityID
	Position     geom.Point
	Path         []geom.Point
	NextWaypoint int
	Backwards    bool
	Speed        float64
	Damage       float64
	Life         float64
	MaxLife      float64
	HitRadius    float64
	ArriveRadius float64
	PathComplete bool
	Hit          map[types.EntityID]struct{}
}

// Update двигает поезд на dt тиков по пути.
func (t *Train) Update(dt float64) {
	t.Life -= dt
	if t.PathComplete || t.NextWaypoint < 0 || t.NextWaypoint >= len(t.Path) {
		return
	}

	target := t.Path[t.NextWaypoint]
	if geom.Distance(t.Position, target) < t.ArriveRadius {
		if t.Backwards {
			t.NextWaypoint--
			t.PathComplete = t.NextWaypoint < 0
		} else {
			t.NextWaypoint++
			t.PathComplete = t.NextWaypoint >= len(t.Path)
		}
		return
	}
	t.Position, _ = geom.StepToward(t.Position, target, t.Speed*dt)
}

// Alive: существует ли ещё поезд.
func (t *Train) Alive() bool {
	return t.Life > 0 && !t.PathComplete
}

// MarkHit запоминает id и сообщает, первый ли это удар.
func (t *Train) MarkHit(id types.EntityID) bool {
	if _, ok := t.Hit[id]; ok {
		return false
	}
	t.Hit[id] = struct{}{}
	return true
}

// Banana: косметическая частица.
type Banana struct {
	Position geom.Point
	Velocity geom.Point
	Gravity  float64
	Life     float64
	MaxLife  float64
}

func (b *Banana) Update(dt float64) {
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt
	b.Velocity.Y += b.Gravity * dt
	b.Life -= dt
}

// SpeechBubble: всплывающий текст над сущностью.
type SpeechBubble struct {
	Position geom.Point
	Message  string
	Life     float64
	MaxLife  float64
}

func (s *SpeechBubble) Update(dt float64) {
	s.Life -= dt
}

// Alpha гасит пузырь за последние 60 тиков.
func (s *SpeechBubble) Alpha() float64 {
	return min(1, max(0, s.Life/60))
}
