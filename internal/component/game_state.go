// internal/component/game_state.go
package component

import (
	"slices"

	"go-social-defense/internal/defs"
	"go-social-defense/internal/types"
)

// Phase: фаза игровой сессии.
type Phase int

const (
	MapSelectPhase Phase = iota
	PlayingPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case MapSelectPhase:
		return "map-select"
	case PlayingPhase:
		return "playing"
	case GameOverPhase:
		return "game-over"
	}
	return "unknown"
}

// Session: изменяемое состояние одной игры. Его делят между собой все
// системы; меняется только из потока симуляции.
type Session struct {
	Phase    Phase
	Health   float64
	Currency int
	Score    int
	Wave     int
	Defeated int

	MapIndex     int
	Map          *defs.MapDefinition // nil до выбора карты
	UnlockedMaps []int

	WaveActive bool
	GameOver   bool
	Speed      float64 // 1 или 2

	// Одноразовые способности, сбрасываются при переходе к следующей волне.
	PhotoUsed bool
	MoveUsed  bool
	TrainUsed bool

	MovingFriend types.EntityID // друг, ожидающий перемещения; 0 если нет
}

// ResetOneShots сбрасывает флаги способностей волны.
func (s *Session) ResetOneShots() {
	s.PhotoUsed = false
	s.MoveUsed = false
	s.TrainUsed = false
	s.MovingFriend = 0
}

// IsUnlocked: можно ли выбрать карту index.
func (s *Session) IsUnlocked(index int) bool {
	return slices.Contains(s.UnlockedMaps, index)
}

// Unlock открывает карту index. false, если она уже открыта.
func (s *Session) Unlock(index int) bool {
	if s.IsUnlocked(index) {
		return false
	}
	s.UnlockedMaps = append(s.UnlockedMaps, index)
	slices.Sort(s.UnlockedMaps)
	return true
}

// CodingProgress: процент на полосе прогресса для текущей волны.
func (s *Session) CodingProgress() int {
	w := s.Wave
	switch {
	case w <= 5:
		return (w - 1) * 20
	case w <= 10:
		return 20 + (w-5)*16
	}
	return 100
}
