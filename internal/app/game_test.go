package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-social-defense/internal/component"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/event"
	"go-social-defense/internal/system"
	"go-social-defense/pkg/geom"
)

// Точки на карте 0, достаточно далеко от пути.
var (
	openSpot  = geom.Point{X: 250, Y: 300}
	otherSpot = geom.Point{X: 250, Y: 500}
	pathSpot  = geom.Point{X: 100, Y: 300}
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fakeAutosaver struct {
	saves []SaveData
}

func (f *fakeAutosaver) Autosave(data SaveData) error {
	f.saves = append(f.saves, data)
	return nil
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	lib, err := defs.Load("")
	require.NoError(t, err)
	opts.Seed = 1
	opts.Logger = zerolog.Nop()
	g := NewGame(lib, opts)
	require.NoError(t, g.SelectMap(0))
	return g
}

func (g *Game) addEnemy(t *testing.T, typeID string, p geom.Point) *component.Enemy {
	t.Helper()
	def, ok := g.Library.Enemies[typeID]
	require.True(t, ok, typeID)
	e := &component.Enemy{
		TypeID:       def.ID,
		Name:         def.Name,
		MaxHealth:    def.Health,
		Health:       def.Health,
		BaseSpeed:    def.Speed,
		Speed:        def.Speed,
		Reward:       def.Reward,
		SocialDamage: def.SocialDamage,
		Position:     p,
		Path:         []geom.Point{p, {X: p.X + 500, Y: p.Y}},
		NextWaypoint: 1,
		Alive:        true,
	}
	g.ECS.AddEnemy(e)
	return e
}

func TestNewGame_StartsOnMapSelect(t *testing.T) {
	lib, err := defs.Load("")
	require.NoError(t, err)
	g := NewGame(lib, Options{Logger: zerolog.Nop()})

	assert.Equal(t, component.MapSelectPhase, g.Session.Phase)
	assert.Equal(t, []int{0}, g.Session.UnlockedMaps)
	assert.Equal(t, 1.0, g.Session.Speed)

	g.Update(1)
	assert.Zero(t, g.GetGameTime())
}

func TestSelectMap(t *testing.T) {
	g := newTestGame(t, Options{})
	assert.Equal(t, component.PlayingPhase, g.Session.Phase)
	assert.Equal(t, 100, g.Session.Currency)
	assert.Equal(t, 20.0, g.Session.Health)
	assert.Equal(t, 1, g.Session.Wave)
	require.NotNil(t, g.Session.Map)

	assert.ErrorIs(t, g.SelectMap(1), ErrMapLocked)
	assert.ErrorIs(t, g.SelectMap(99), ErrUnknownMap)
	assert.Contains(t, g.Notice(), "unknown map")

	g.Session.Unlock(1)
	require.NoError(t, g.SelectMap(1))
	assert.Equal(t, 1, g.Session.MapIndex)
	assert.Equal(t, []int{0, 1}, g.Session.UnlockedMaps)
}

func TestPlaceFriend(t *testing.T) {
	g := newTestGame(t, Options{})
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.FriendPlaced, rec)

	id, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)
	assert.Equal(t, 50, g.Session.Currency)
	assert.Equal(t, 1, rec.count(event.FriendPlaced))

	f, ok := g.ECS.Friend(id)
	require.True(t, ok)
	assert.Equal(t, "Dario", f.Name)
	assert.Equal(t, openSpot, f.Position)
}

func TestPlaceFriend_Rejections(t *testing.T) {
	g := newTestGame(t, Options{})
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.Notice, rec)

	_, err := g.PlaceFriend("dario", pathSpot)
	assert.ErrorIs(t, err, ErrOnPath)

	_, err = g.PlaceFriend("nobody", openSpot)
	assert.ErrorIs(t, err, ErrUnknownFriend)

	_, err = g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)
	_, err = g.PlaceFriend("dario", geom.Point{X: openSpot.X + 10, Y: openSpot.Y})
	assert.ErrorIs(t, err, ErrOccupied)

	g.Session.Currency = 40
	_, err = g.PlaceFriend("dario", otherSpot)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 40, g.Session.Currency)
	assert.Contains(t, g.Notice(), "not enough money")

	assert.Equal(t, 4, rec.count(event.Notice))
	assert.Len(t, g.ECS.Friends, 1)
}

func TestApplyUpgrade_ChargesOnce(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 1000
	id, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)

	require.NoError(t, g.ApplyUpgrade(id, "damage"))
	assert.Equal(t, 1000-50-60, g.Session.Currency)

	err = g.ApplyUpgrade(id, "damage")
	assert.ErrorIs(t, err, system.ErrDuplicateUpgrade)
	assert.Equal(t, 890, g.Session.Currency)

	f, _ := g.ECS.Friend(id)
	assert.Equal(t, 22.0, f.Stats.Damage)
	assert.Equal(t, []string{"damage"}, f.Upgrades)

	// таблица типа не меняется
	assert.Equal(t, 15.0, g.Library.Friends["dario"].Damage)
}

func TestApplyUpgrade_Rejections(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 1000
	id, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)

	assert.ErrorIs(t, g.ApplyUpgrade(id, "trains"), system.ErrUpgradeNotAllowed)
	assert.ErrorIs(t, g.ApplyUpgrade(id, "nope"), system.ErrUnknownUpgrade)
	assert.ErrorIs(t, g.ApplyUpgrade(999, "damage"), ErrUnknownFriend)

	require.NoError(t, g.ApplyUpgrade(id, "damage"))
	require.NoError(t, g.ApplyUpgrade(id, "rate"))
	assert.ErrorIs(t, g.ApplyUpgrade(id, "range"), system.ErrUpgradeSlotsFull)

	g.Session.Currency = 10
	other, err := g.PlaceFriend("dario", otherSpot)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Zero(t, other)
}

func TestStrongAttackerDoublesDamage(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 500
	_, err := g.PlaceFriend("tony", openSpot)
	require.NoError(t, err)

	e := g.addEnemy(t, "intern", geom.Point{X: openSpot.X + 80, Y: openSpot.Y})
	e.StunRemaining = 10000

	for range 30 {
		g.Update(1.0 / 60)
	}
	assert.Equal(t, 45.0-44.0, e.Health)
	assert.True(t, e.Alive)
}

func TestGameOverFiresOnce(t *testing.T) {
	g := newTestGame(t, Options{})
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.GameOver, rec)
	g.EventDispatcher.Subscribe(event.EnemyReachedEnd, rec)

	g.Session.Health = 1
	for _, x := range []float64{10, 20} {
		e := g.addEnemy(t, "intern", geom.Point{X: x, Y: 10})
		e.NextWaypoint = len(e.Path)
	}

	g.Update(1.0 / 60)
	g.Update(1.0 / 60)

	assert.Equal(t, 2, rec.count(event.EnemyReachedEnd))
	assert.Equal(t, 1, rec.count(event.GameOver))
	assert.Zero(t, g.Session.Health)
	assert.True(t, g.Session.GameOver)
	assert.Equal(t, component.GameOverPhase, g.Session.Phase)

	assert.ErrorIs(t, g.StartWave(), system.ErrGameOver)
	_, err := g.PlaceFriend("dario", openSpot)
	assert.ErrorIs(t, err, system.ErrGameOver)
}

func TestWaveAdvance_ResetsOneShotsAndAutosaves(t *testing.T) {
	saver := &fakeAutosaver{}
	g := newTestGame(t, Options{Autosaver: saver})
	id, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)

	require.NoError(t, g.StartWave())
	assert.ErrorIs(t, g.StartWave(), system.ErrWaveInProgress)
	require.NoError(t, g.TriggerFamilyPhoto(id))
	assert.True(t, g.Session.PhotoUsed)
	assert.ErrorIs(t, g.TriggerFamilyPhoto(id), system.ErrAbilityUsed)

	for range 400 {
		g.Update(0.05)
		for _, e := range g.ECS.Enemies {
			e.Alive = false
		}
		if g.Session.Wave == 2 {
			break
		}
	}

	require.Equal(t, 2, g.Session.Wave)
	assert.False(t, g.Session.PhotoUsed)
	assert.False(t, g.Session.WaveActive)
	assert.Equal(t, 50+25+2*3, g.Session.Currency)

	require.Len(t, saver.saves, 1)
	assert.Equal(t, 2, saver.saves[0].Wave)
	assert.Len(t, saver.saves[0].Friends, 1)
}

func TestHandleClick(t *testing.T) {
	g := newTestGame(t, Options{})

	id, err := g.HandleClick(openSpot, "dario")
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.Equal(t, 50, g.Session.Currency)

	// клик по Дарио запускает фото, а не размещение
	got, err := g.HandleClick(geom.Point{X: openSpot.X + 5, Y: openSpot.Y}, "dario")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.True(t, g.Session.PhotoUsed)
	assert.Len(t, g.ECS.Friends, 1)

	// фото уже использовано: клик просто выбирает друга
	got, err = g.HandleClick(openSpot, "dario")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 50, g.Session.Currency)

	got, err = g.HandleClick(otherSpot, "")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestReposition(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 500
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.FriendMoved, rec)

	id, err := g.PlaceFriend("tony", openSpot)
	require.NoError(t, err)

	_, err = g.HandleClick(openSpot, "")
	require.NoError(t, err)
	assert.Equal(t, id, g.Session.MovingFriend)

	// соседняя точка занята только самим Тони
	near := geom.Point{X: openSpot.X + 20, Y: openSpot.Y}
	_, err = g.HandleClick(near, "")
	require.NoError(t, err)

	f, _ := g.ECS.Friend(id)
	assert.Equal(t, near, f.Position)
	assert.True(t, g.Session.MoveUsed)
	assert.Zero(t, g.Session.MovingFriend)
	assert.Equal(t, 1, rec.count(event.FriendMoved))

	assert.ErrorIs(t, g.BeginReposition(id), system.ErrAbilityUsed)
	assert.ErrorIs(t, g.Reposition(otherSpot), ErrNoMoveInProgress)
}

func TestReposition_RejectsPathAndWrongFriend(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Session.Currency = 500
	tony, err := g.PlaceFriend("tony", openSpot)
	require.NoError(t, err)
	dario, err := g.PlaceFriend("dario", otherSpot)
	require.NoError(t, err)

	assert.ErrorIs(t, g.BeginReposition(dario), system.ErrWrongAbility)

	require.NoError(t, g.BeginReposition(tony))
	assert.ErrorIs(t, g.Reposition(pathSpot), ErrOnPath)
	assert.Equal(t, tony, g.Session.MovingFriend)

	g.CancelReposition()
	assert.Zero(t, g.Session.MovingFriend)
	assert.False(t, g.Session.MoveUsed)
}

func TestToggleSpeedAndPause(t *testing.T) {
	g := newTestGame(t, Options{})
	assert.Equal(t, 2.0, g.ToggleSpeed())
	assert.Equal(t, 1.0, g.ToggleSpeed())

	g.TogglePause()
	g.Update(1)
	assert.Zero(t, g.GetGameTime())
	g.TogglePause()

	g.ToggleSpeed()
	g.Update(0.5)
	assert.Equal(t, 1000.0, g.GetGameTime())
}

func TestReplaceLibrary_AppliesOnNextMap(t *testing.T) {
	g := newTestGame(t, Options{})
	lib, err := defs.Load("")
	require.NoError(t, err)
	dario := lib.Friends["dario"]
	dario.Cost = 10
	lib.Friends["dario"] = dario

	g.ReplaceLibrary(lib)
	assert.Equal(t, 50, g.Library.Friends["dario"].Cost)

	require.NoError(t, g.SelectMap(0))
	assert.Equal(t, 10, g.Library.Friends["dario"].Cost)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, Options{})
	_, err := g.PlaceFriend("dario", openSpot)
	require.NoError(t, err)
	e := g.addEnemy(t, "intern", geom.Point{X: 600, Y: 100})
	e.Health = 22.5
	e.Converted = true

	snap := g.Snapshot()
	require.Len(t, snap.Friends, 1)
	assert.Equal(t, "dario", snap.Friends[0].TypeID)
	require.Len(t, snap.Enemies, 1)
	assert.Equal(t, 0.5, snap.Enemies[0].HealthFraction)
	assert.True(t, snap.Enemies[0].Converted)
	assert.Equal(t, 50, snap.Currency)
	assert.NotEmpty(t, snap.Paths)
	assert.Equal(t, "Local Dev Environment", snap.MapName)

	snap.Paths[0][0].X = -1
	assert.NotEqual(t, -1.0, g.Session.Map.Paths[0][0].X)
}

func TestCodex(t *testing.T) {
	g := newTestGame(t, Options{})
	codex := g.Codex()
	require.Len(t, codex, len(g.Library.FriendOrder))

	var tony CodexEntry
	for _, c := range codex {
		if c.ID == "tony" {
			tony = c
		}
	}
	assert.Equal(t, "Tony", tony.Name)
	assert.Contains(t, tony.Counters, "Clueless Intern")
	assert.Contains(t, tony.ResistedBy, "Boss")
	require.Len(t, tony.Upgrades, 3)
	assert.Equal(t, "Better Slow", tony.Upgrades[0].Name)
}
