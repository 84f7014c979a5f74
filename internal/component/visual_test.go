package component

import (
	"testing"

	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestTrain_MarkHitOnce(t *testing.T) {
	tr := &Train{Hit: map[types.EntityID]struct{}{}}

	assert.True(t, tr.MarkHit(7))
	assert.False(t, tr.MarkHit(7))
	assert.True(t, tr.MarkHit(8))
}

func TestTrain_RidesBackwardsToStart(t *testing.T) {
	tr := &Train{
		Position:     geom.Point{X: 100, Y: 0},
		Path:         []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		NextWaypoint: 0,
		Backwards:    true,
		Speed:        4,
		Life:         200,
		ArriveRadius: 8,
		Hit:          map[types.EntityID]struct{}{},
	}

	for i := 0; i < 100 && tr.Alive(); i++ {
		tr.Update(1)
	}

	assert.True(t, tr.PathComplete)
	assert.InDelta(t, 0, tr.Position.X, 8)
}

func TestTrain_ExpiresByLife(t *testing.T) {
	tr := &Train{
		Path:         []geom.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}},
		NextWaypoint: 1,
		Speed:        1,
		Life:         3,
		ArriveRadius: 8,
	}
	tr.Update(1)
	tr.Update(1)
	assert.True(t, tr.Alive())
	tr.Update(1)
	assert.False(t, tr.Alive())
}

func TestBanana_Falls(t *testing.T) {
	b := &Banana{Velocity: geom.Point{X: 1, Y: -2}, Gravity: 0.3, Life: 60}
	b.Update(1)

	assert.Equal(t, 1.0, b.Position.X)
	assert.Equal(t, -2.0, b.Position.Y)
	assert.InDelta(t, -1.7, b.Velocity.Y, 1e-9)
	assert.Equal(t, 59.0, b.Life)
}

func TestSpeechBubble_Alpha(t *testing.T) {
	s := &SpeechBubble{Life: 180}
	assert.Equal(t, 1.0, s.Alpha())
	s.Life = 30
	assert.InDelta(t, 0.5, s.Alpha(), 1e-9)
	s.Life = -1
	assert.Equal(t, 0.0, s.Alpha())
}
