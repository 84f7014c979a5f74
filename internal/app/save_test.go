package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 1000
	dario, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)
	require.NoError(t, g.ApplyUpgrade(dario, "damage"))
	maddie, err := g.PlaceFriend("maddie", otherSpot)
	require.NoError(t, err)
	require.NoError(t, g.ApplyUpgrade(maddie, "experience"))

	g.Session.Wave = 7
	g.Session.Score = 321
	g.Session.Defeated = 40
	g.Session.Health = 12.5
	g.Session.TrainUsed = true
	g.Session.Unlock(1)

	data := g.SaveData()
	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, 52, data.CodingProgress)
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"trainRampageUsedThisWave":true`)

	var decoded SaveData
	require.NoError(t, json.Unmarshal(raw, &decoded))

	h := newTestGame(t, Options{})
	require.NoError(t, h.Restore(decoded))

	s := h.Session
	assert.Equal(t, 1000-50-60-95-65, s.Currency)
	assert.Equal(t, 7, s.Wave)
	assert.Equal(t, 321, s.Score)
	assert.Equal(t, 40, s.Defeated)
	assert.Equal(t, 12.5, s.Health)
	assert.True(t, s.TrainUsed)
	assert.False(t, s.WaveActive)
	assert.Equal(t, []int{0, 1}, s.UnlockedMaps)

	require.Len(t, h.ECS.Friends, 2)
	d := h.ECS.Friends[0]
	assert.Equal(t, "dario", d.TypeID)
	assert.Equal(t, openSpot, d.Position)
	assert.Equal(t, 22.0, d.Stats.Damage)
	assert.Equal(t, []string{"damage"}, d.Upgrades)

	m := h.ECS.Friends[1]
	require.NotNil(t, m.Experience)
	assert.Equal(t, 5, m.Experience.Level)
	// floor(12 * (1 + 5*0.15))
	assert.Equal(t, 21.0, m.Stats.Damage)
}

func TestRestore_UnknownMap(t *testing.T) {
	g := newTestGame(t, Options{})
	err := g.Restore(SaveData{CurrentMap: 42})
	assert.ErrorIs(t, err, ErrUnknownMap)
	assert.Equal(t, 0, g.Session.MapIndex)
}

func TestRestore_SkipsUnknownFriends(t *testing.T) {
	g := newTestGame(t, Options{})
	err := g.Restore(SaveData{
		Health: 20, Money: 75, Wave: 3,
		Friends: []FriendSave{
			{X: openSpot.X, Y: openSpot.Y, Type: "ghost"},
			{X: otherSpot.X, Y: otherSpot.Y, Type: "dario", Upgrades: []string{"damage", "bogus"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, g.ECS.Friends, 1)
	assert.Equal(t, []string{"damage"}, g.ECS.Friends[0].Upgrades)
	assert.Equal(t, 75, g.Session.Currency)
}
