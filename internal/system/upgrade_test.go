package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-social-defense/pkg/geom"
)

func TestUpgrade_ScalesAndFloors(t *testing.T) {
	w := newWorld(t)
	tony := w.friend(t, "tony", geom.Point{})

	_, err := w.upgrades.Apply(tony, "damage")
	require.NoError(t, err)
	assert.Equal(t, 33.0, tony.Stats.Damage)

	junior := w.friend(t, "junior", geom.Point{})
	_, err = w.upgrades.Apply(junior, "range")
	require.NoError(t, err)
	assert.Equal(t, 286.0, junior.Stats.Range)

	drea := w.friend(t, "drea", geom.Point{})
	_, err = w.upgrades.Apply(drea, "speed")
	require.NoError(t, err)
	assert.Equal(t, 82.0, drea.Stats.FireRate)
}

func TestUpgrade_DuplicateRejected(t *testing.T) {
	w := newWorld(t)
	tony := w.friend(t, "tony", geom.Point{})

	_, err := w.upgrades.Apply(tony, "damage")
	require.NoError(t, err)
	_, err = w.upgrades.Apply(tony, "damage")

	assert.ErrorIs(t, err, ErrDuplicateUpgrade)
	assert.Equal(t, []string{"damage"}, tony.Upgrades)
	assert.Equal(t, 33.0, tony.Stats.Damage)
}

func TestUpgrade_SlotsFull(t *testing.T) {
	w := newWorld(t)
	tony := w.friend(t, "tony", geom.Point{})
	for _, id := range []string{"slow", "damage"} {
		_, err := w.upgrades.Apply(tony, id)
		require.NoError(t, err)
	}

	_, err := w.upgrades.Apply(tony, "nerd_boost")
	assert.ErrorIs(t, err, ErrUpgradeSlotsFull)
	assert.Len(t, tony.Upgrades, 2)
}

func TestUpgrade_CatalogChecks(t *testing.T) {
	w := newWorld(t)
	tony := w.friend(t, "tony", geom.Point{})

	_, err := w.upgrades.Apply(tony, "no-such-thing")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	_, err = w.upgrades.Apply(tony, "trains")
	assert.ErrorIs(t, err, ErrUpgradeNotAllowed)
	assert.Empty(t, tony.Upgrades)
}

func TestUpgrade_StatsAreOwnedCopies(t *testing.T) {
	w := newWorld(t)
	a := w.friend(t, "tony", geom.Point{})
	b := w.friend(t, "tony", geom.Point{X: 100})

	_, err := w.upgrades.Apply(a, "damage")
	require.NoError(t, err)

	assert.Equal(t, 22.0, b.Stats.Damage)
	assert.Equal(t, 22.0, w.lib.Friends["tony"].Damage)
}

func TestUpgrade_Amplify(t *testing.T) {
	w := newWorld(t)
	aviva := w.friend(t, "aviva", geom.Point{})

	_, err := w.upgrades.Apply(aviva, "volume")
	require.NoError(t, err)

	assert.Equal(t, 196.0, aviva.Stats.Range)
	assert.Equal(t, 26.0, aviva.Stats.Damage)
}

func TestUpgrade_ExperienceEffects(t *testing.T) {
	w := newWorld(t)
	maddie := w.friend(t, "maddie", geom.Point{})

	_, err := w.upgrades.Apply(maddie, "wisdom")
	require.NoError(t, err)
	_, err = w.upgrades.Apply(maddie, "experience")
	require.NoError(t, err)

	assert.Equal(t, 15, maddie.Experience.Max)
	assert.Equal(t, 5, maddie.Experience.Level)
	assert.Equal(t, ScholarDamage(12, 5, 0.15), maddie.Stats.Damage)
}
