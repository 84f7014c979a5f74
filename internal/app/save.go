// internal/app/save.go
package app

import (
	"fmt"
	"slices"
	"time"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/system"
	"go-social-defense/pkg/geom"
)

// FriendSave: сохранённый друг: позиция, тип, улучшения и опыт.
type FriendSave struct {
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Type            string   `json:"type"`
	Upgrades        []string `json:"upgrades"`
	ExperienceLevel int      `json:"experienceLevel"`
}

// SaveData: сериализуемая часть сессии.
type SaveData struct {
	Health               float64      `json:"health"`
	Money                int          `json:"money"`
	Wave                 int          `json:"wave"`
	Score                int          `json:"score"`
	CurrentMap           int          `json:"currentMap"`
	TotalEnemiesDefeated int          `json:"totalEnemiesDefeated"`
	CodingProgress       int          `json:"codingProgress"`
	UnlockedMaps         []int        `json:"unlockedMaps"`
	Friends              []FriendSave `json:"friends"`
	PhotoUsed            bool         `json:"photoUsedThisWave"`
	MoveUsed             bool         `json:"tonyMovedThisWave"`
	TrainUsed            bool         `json:"trainRampageUsedThisWave"`
	GameStarted          bool         `json:"gameStarted"`
	MapSelected          bool         `json:"mapSelected"`
	WaveActive           bool         `json:"waveActive"`
	SavedAt              time.Time    `json:"savedAt"`
	Version              string       `json:"version"`
}

// SaveData снимает сессию для слота сохранения.
func (g *Game) SaveData() SaveData {
	s := g.Session
	data := SaveData{
		Health:               s.Health,
		Money:                s.Currency,
		Wave:                 s.Wave,
		Score:                s.Score,
		CurrentMap:           s.MapIndex,
		TotalEnemiesDefeated: s.Defeated,
		CodingProgress:       s.CodingProgress(),
		UnlockedMaps:         slices.Clone(s.UnlockedMaps),
		PhotoUsed:            s.PhotoUsed,
		MoveUsed:             s.MoveUsed,
		TrainUsed:            s.TrainUsed,
		GameStarted:          s.Phase != component.MapSelectPhase,
		MapSelected:          s.Map != nil,
		WaveActive:           s.WaveActive,
		SavedAt:              time.Now().UTC(),
		Version:              config.SaveVersion,
	}
	for _, f := range g.ECS.Friends {
		fs := FriendSave{
			X:        f.Position.X,
			Y:        f.Position.Y,
			Type:     f.TypeID,
			Upgrades: slices.Clone(f.Upgrades),
		}
		if f.Experience != nil {
			fs.ExperienceLevel = f.Experience.Level
		}
		data.Friends = append(data.Friends, fs)
	}
	return data
}

// Restore заменяет сессию данными. Друзья и улучшения восстанавливаются
// без списания денег, восстановленная волна никогда не идёт.
func (g *Game) Restore(data SaveData) error {
	g.applyPendingLibrary()
	m := g.Library.Map(data.CurrentMap)
	if m == nil {
		return fmt.Errorf("restore: %w: %d", ErrUnknownMap, data.CurrentMap)
	}

	g.Session.UnlockedMaps = slices.Clone(data.UnlockedMaps)
	if !g.Session.IsUnlocked(0) {
		g.Session.Unlock(0)
	}
	g.Session.Unlock(data.CurrentMap)
	g.resetSession(data.CurrentMap, m)

	s := g.Session
	s.Health = data.Health
	s.Currency = data.Money
	s.Wave = max(data.Wave, config.StartWave)
	s.Score = data.Score
	s.Defeated = data.TotalEnemiesDefeated
	s.PhotoUsed = data.PhotoUsed
	s.MoveUsed = data.MoveUsed
	s.TrainUsed = data.TrainUsed
	s.GameOver = s.Health <= 0
	if s.GameOver {
		s.Phase = component.GameOverPhase
	}

	for _, fs := range data.Friends {
		def, ok := g.Library.Friends[fs.Type]
		if !ok {
			g.logger.Warn().Str("friend", fs.Type).Msg("Skipping unknown friend in save")
			continue
		}
		f := g.createFriendEntity(&def, geom.Point{X: fs.X, Y: fs.Y})
		for _, id := range fs.Upgrades {
			if _, err := g.UpgradeSystem.Apply(f, id); err != nil {
				g.logger.Warn().Err(err).Str("friend", fs.Type).Msg("Skipping upgrade in save")
			}
		}
		if f.Experience != nil {
			f.Experience.Level = min(max(fs.ExperienceLevel, 0), f.Experience.Max)
			if a, ok := def.Ability.(defs.Scholar); ok {
				f.Stats.Damage = system.ScholarDamage(f.BaseDamage, f.Experience.Level, a.PerLevel)
			}
		}
	}

	g.logger.Info().Int("wave", s.Wave).Int("friends", len(g.ECS.Friends)).Str("map", m.Name).Msg("Game restored")
	return nil
}
