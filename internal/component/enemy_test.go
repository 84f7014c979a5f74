package component

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemy_Targetable(t *testing.T) {
	e := &Enemy{Alive: true}
	assert.True(t, e.Targetable())

	e.Convert(color.RGBA{G: 255, A: 255})
	assert.False(t, e.Targetable())

	dead := &Enemy{Alive: false}
	assert.False(t, dead.Targetable())
}

func TestEnemy_ConvertTurnsAround(t *testing.T) {
	e := &Enemy{Alive: true, NextWaypoint: 3}
	e.Convert(color.RGBA{})
	e.Convert(color.RGBA{})

	assert.True(t, e.Converted)
	assert.Equal(t, 2, e.NextWaypoint)
}

func TestEnemy_HoldOnce(t *testing.T) {
	e := &Enemy{Alive: true}
	assert.True(t, e.Hold(180))
	assert.False(t, e.Hold(300))
	assert.Equal(t, 180.0, e.GrappleRemaining)

	e.Release()
	assert.False(t, e.Grappled)
	assert.True(t, e.Hold(300))
}

func TestEnemy_TimersNeverShrink(t *testing.T) {
	e := &Enemy{}
	e.ApplySlow(150)
	e.ApplySlow(90)
	e.Stun(30)
	e.Stun(180)

	assert.Equal(t, 150.0, e.SlowRemaining)
	assert.Equal(t, 180.0, e.StunRemaining)
}
