// internal/app/listener.go
package app

import (
	"errors"

	"go-social-defense/internal/config"
	"go-social-defense/internal/event"
)

// GameEventListener переводит события симуляции в логи, метрики и автосохранение.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		if e.Type == event.EnemyKilled {
			g.counters.EnemyDefeated(data.EnemyType, data.AttackerType)
		} else {
			g.logger.Debug().Str("enemy", data.EnemyType).Str("by", data.AttackerType).Msg("Enemy converted")
		}
	case event.EnemyReachedEndData:
		g.counters.EnemyLeaked(data.EnemyType)
		g.logger.Debug().Str("enemy", data.Name).Float64("health", data.Health).Msg("Enemy reached the end")
	case event.WaveData:
		l.onWave(e.Type, data)
	case event.FriendData:
		switch e.Type {
		case event.FriendPlaced:
			g.counters.FriendPlaced(data.TypeID)
			g.logger.Info().Str("friend", data.TypeID).Float64("x", data.Position.X).Float64("y", data.Position.Y).Msg("Friend placed")
		case event.FriendUpgraded:
			g.counters.UpgradeApplied(data.TypeID, data.Upgrade)
			g.logger.Info().Str("friend", data.TypeID).Str("upgrade", data.Upgrade).Msg("Friend upgraded")
		case event.FriendMoved:
			g.logger.Debug().Str("friend", data.TypeID).Msg("Friend moved")
		}
	case event.MapData:
		g.notify("New map unlocked: " + data.Name)
	case event.NoticeData:
		g.notice = data.Message
		g.noticeTimer = config.NoticeLifetime
		g.counters.Rejected(rejectReason(data.Err))
		g.logger.Debug().Err(data.Err).Msg("Action rejected")
	}
}

func (l *GameEventListener) onWave(t event.EventType, data event.WaveData) {
	g := l.game
	switch t {
	case event.WaveCompleted:
		g.counters.WaveCompleted(data.Wave)
	case event.WaveAdvanced:
		g.autosave()
	case event.GameOver:
		g.logger.Warn().Int("wave", data.Wave).Int("score", g.Session.Score).Msg("Game over")
	}
}

func (g *Game) notify(msg string) {
	g.notice = msg
	g.noticeTimer = config.NoticeLifetime
}

func (g *Game) autosave() {
	if g.autosaver == nil {
		return
	}
	if err := g.autosaver.Autosave(g.SaveData()); err != nil {
		g.logger.Error().Err(err).Int("wave", g.Session.Wave).Msg("Autosave failed")
		return
	}
	g.logger.Debug().Int("wave", g.Session.Wave).Msg("Autosaved")
}

// rejectReason: короткая метка метрики для ошибки отказа.
func rejectReason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}
