// internal/app/snapshot.go
package app

import (
	"image/color"
	"slices"

	"go-social-defense/internal/component"
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// EnemyView: всё, что нужно для отрисовки врага.
type EnemyView struct {
	ID             types.EntityID
	TypeID         string
	Icon           string
	Position       geom.Point
	Color          color.RGBA
	HealthFraction float64
	Slowed         bool
	Stunned        bool
	Grappled       bool
	Converted      bool
	Boss           bool
}

// FriendView: всё, что нужно для отрисовки друга.
type FriendView struct {
	ID       types.EntityID
	TypeID   string
	Name     string
	Position geom.Point
	Color    color.RGBA
	Damage   float64
	Range    float64
	FireRate float64
	Upgrades []string
	Level    int
	MaxLevel int
	Holds    int
	Moving   bool
}

type ProjectileView struct {
	Position geom.Point
	Color    color.RGBA
}

type TrainView struct {
	Position geom.Point
	Fade     float64
}

type BananaView struct {
	Position geom.Point
	Fade     float64
}

type BubbleView struct {
	Position geom.Point
	Message  string
	Alpha    float64
}

// Snapshot: копия состояния для отрисовки. Не содержит указателей на
// живые сущности.
type Snapshot struct {
	Phase          component.Phase
	Health         float64
	Currency       int
	Score          int
	Wave           int
	Defeated       int
	MapIndex       int
	MapName        string
	Paths          [][]geom.Point
	WaveActive     bool
	WavePending    bool
	GameOver       bool
	Paused         bool
	Speed          float64
	CodingProgress int
	Spawned        int
	WaveTotal      int
	PhotoUsed      bool
	MoveUsed       bool
	TrainUsed      bool
	Notice         string

	Enemies     []EnemyView
	Friends     []FriendView
	Projectiles []ProjectileView
	Trains      []TrainView
	Bananas     []BananaView
	Bubbles     []BubbleView
}

// Snapshot копирует текущее состояние для отрисовки.
func (g *Game) Snapshot() Snapshot {
	s := g.Session
	snap := Snapshot{
		Phase:          s.Phase,
		Health:         s.Health,
		Currency:       s.Currency,
		Score:          s.Score,
		Wave:           s.Wave,
		Defeated:       s.Defeated,
		MapIndex:       s.MapIndex,
		WaveActive:     s.WaveActive,
		WavePending:    g.WaveSystem.Pending(),
		GameOver:       s.GameOver,
		Paused:         g.isPaused,
		Speed:          s.Speed,
		CodingProgress: s.CodingProgress(),
		PhotoUsed:      s.PhotoUsed,
		MoveUsed:       s.MoveUsed,
		TrainUsed:      s.TrainUsed,
		Notice:         g.notice,
	}
	snap.Spawned, snap.WaveTotal = g.WaveSystem.Progress()
	if s.Map != nil {
		snap.MapName = s.Map.Name
		for _, p := range s.Map.Paths {
			snap.Paths = append(snap.Paths, slices.Clone(p))
		}
	}

	for _, e := range g.ECS.Enemies {
		if !e.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:             e.ID,
			TypeID:         e.TypeID,
			Icon:           e.Icon,
			Position:       e.Position,
			Color:          e.Color,
			HealthFraction: e.HealthFraction(),
			Slowed:         e.SlowRemaining > 0,
			Stunned:        e.StunRemaining > 0,
			Grappled:       e.Grappled,
			Converted:      e.Converted,
			Boss:           e.Boss,
		})
	}
	for _, f := range g.ECS.Friends {
		v := FriendView{
			ID:       f.ID,
			TypeID:   f.TypeID,
			Name:     f.Name,
			Position: f.Position,
			Color:    f.Stats.Color.RGBA,
			Damage:   f.Stats.Damage,
			Range:    f.Stats.Range,
			FireRate: f.Stats.FireRate,
			Upgrades: slices.Clone(f.Upgrades),
			Holds:    len(f.Grapples),
			Moving:   f.ID == s.MovingFriend,
		}
		if f.Experience != nil {
			v.Level, v.MaxLevel = f.Experience.Level, f.Experience.Max
		}
		snap.Friends = append(snap.Friends, v)
	}
	for _, p := range g.ECS.Projectiles {
		if p.Alive {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Position: p.Position, Color: p.Color})
		}
	}
	for _, t := range g.ECS.Trains {
		snap.Trains = append(snap.Trains, TrainView{Position: t.Position, Fade: t.Life / t.MaxLife})
	}
	for _, b := range g.ECS.Bananas {
		snap.Bananas = append(snap.Bananas, BananaView{Position: b.Position, Fade: b.Life / b.MaxLife})
	}
	for _, b := range g.ECS.Bubbles {
		snap.Bubbles = append(snap.Bubbles, BubbleView{Position: b.Position, Message: b.Message, Alpha: b.Alpha()})
	}
	return snap
}
