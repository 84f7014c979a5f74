package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-social-defense/internal/event"
)

func TestWave_StartRejections(t *testing.T) {
	w := newWorld(t)

	require.NoError(t, w.waves.StartWave())
	assert.ErrorIs(t, w.waves.StartWave(), ErrWaveInProgress)

	w2 := newWorld(t)
	w2.session.Map = nil
	assert.ErrorIs(t, w2.waves.StartWave(), ErrNoMap)

	w3 := newWorld(t)
	w3.session.GameOver = true
	assert.ErrorIs(t, w3.waves.StartWave(), ErrGameOver)
}

func TestWave_SpawnCadenceOnGameClock(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.waves.StartWave())

	// волна 1: 3 врага, интервал 1750 мс
	w.waves.Update(1749, 0)
	assert.Empty(t, w.ecs.Enemies)

	w.waves.Update(1, 0)
	require.Len(t, w.ecs.Enemies, 1)
	e := w.ecs.Enemies[0]
	assert.Equal(t, "neighbor", e.TypeID)
	assert.Equal(t, 1, e.NextWaypoint)
	assert.Equal(t, -30.0, e.Position.X)

	w.waves.Update(3500, 0)
	require.Len(t, w.ecs.Enemies, 3)
	assert.Equal(t, "clerk", w.ecs.Enemies[1].TypeID)
	assert.Equal(t, "neighbor", w.ecs.Enemies[2].TypeID)

	w.waves.Update(100000, 0)
	assert.Len(t, w.ecs.Enemies, 3)
}

func TestWave_ScalesEnemiesByWave(t *testing.T) {
	w := newWorld(t)
	w.session.Wave = 11
	require.NoError(t, w.waves.StartWave())
	w.waves.Update(1250, 0)

	require.Len(t, w.ecs.Enemies, 1)
	e := w.ecs.Enemies[0]
	def := w.lib.Enemies[e.TypeID]
	assert.Equal(t, def.ScaledHealth(11), e.MaxHealth)
	assert.Equal(t, e.MaxHealth, e.Health)
}

func TestWave_CompletionIgnoresConverted(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.waves.StartWave())
	w.waves.Update(10000, 0)
	require.Len(t, w.ecs.Enemies, 3)

	w.ecs.Enemies[0].Converted = true
	w.ecs.Enemies[1].Alive = false
	w.waves.Update(0, 0)
	assert.True(t, w.session.WaveActive)

	w.ecs.Enemies[2].Alive = false
	w.waves.Update(0, 0)
	assert.False(t, w.session.WaveActive)
	assert.True(t, w.waves.Pending())
	assert.Equal(t, 1, w.rec.count(event.WaveCompleted))
}

func TestWave_AdvanceAfterRealDelay(t *testing.T) {
	w := newWorld(t)
	w.session.PhotoUsed = true
	require.NoError(t, w.waves.StartWave())
	w.waves.Update(10000, 0)
	for _, e := range w.ecs.Enemies {
		e.Alive = false
	}

	w.waves.Update(0, 0.5)
	assert.Equal(t, 1, w.session.Wave)
	assert.ErrorIs(t, w.waves.StartWave(), ErrWaveInProgress)

	w.waves.Update(0, 0.5)
	assert.Equal(t, 2, w.session.Wave)
	assert.False(t, w.session.PhotoUsed)
	assert.Equal(t, 100+25+2*3, w.session.Currency)
	assert.Equal(t, 1, w.rec.count(event.WaveAdvanced))
	assert.NoError(t, w.waves.StartWave())
}

func TestWave_UnlocksNextMapAfterWave12(t *testing.T) {
	w := newWorld(t)
	w.session.Wave = 12
	require.NoError(t, w.waves.StartWave())
	w.waves.Update(10000, 0)
	for _, e := range w.ecs.Enemies {
		e.Alive = false
	}
	w.waves.Update(0, 0)
	w.waves.Update(0, 1)

	assert.Equal(t, 13, w.session.Wave)
	assert.Equal(t, []int{0, 1}, w.session.UnlockedMaps)
	assert.Equal(t, 1, w.rec.count(event.MapUnlocked))
}

func TestWave_NoSpawnsAfterGameOver(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.waves.StartWave())
	w.session.GameOver = true

	w.waves.Update(10000, 0)

	assert.Empty(t, w.ecs.Enemies)
	assert.False(t, w.waves.Pending())
}

func TestWave_SpawnWithoutMapPanics(t *testing.T) {
	w := newWorld(t)
	w.session.Map = nil
	assert.Panics(t, func() { w.waves.spawnEnemy("neighbor") })
}

func TestWave_Preview(t *testing.T) {
	w := newWorld(t)
	p := w.waves.Preview(1)

	assert.Equal(t, "Monday Morning", p.Name)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, []string{"Chatty Neighbor", "Retail Clerk"}, p.Enemies)
	assert.False(t, p.Boss)

	// волна 10: водитель-босс
	assert.True(t, w.waves.Preview(10).Boss)
}
