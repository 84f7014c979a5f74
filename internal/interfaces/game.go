package interfaces

import (
	"go-social-defense/internal/app"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/system"
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// Game: то, что хост вызывает у симуляции. Реализуется *app.Game.
type Game interface {
	Update(deltaTime float64)
	Snapshot() app.Snapshot
	Codex() []app.CodexEntry
	Maps() []defs.MapDefinition
	UnlockedMaps() []int
	WavePreview() system.WavePreview

	SelectMap(index int) error
	Reset()
	StartWave() error
	ToggleSpeed() float64
	TogglePause()
	IsPaused() bool

	HandleClick(p geom.Point, placing string) (types.EntityID, error)
	CanPlaceAt(p geom.Point) bool
	ApplyUpgrade(friendID types.EntityID, upgradeID string) error
	CancelReposition()

	SaveData() app.SaveData
	Restore(data app.SaveData) error
}

// SaveStore: хранилище слотов сохранения. Реализуется *storage.Store.
type SaveStore interface {
	Save(name string, data app.SaveData) error
	Load(name string) (app.SaveData, error)
}

var _ Game = (*app.Game)(nil)
