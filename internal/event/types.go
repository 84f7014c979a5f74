// internal/event/types.go
package event

import (
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

const (
	EnemyKilled     EventType = "EnemyKilled"     // враг побеждён
	EnemyReachedEnd EventType = "EnemyReachedEnd" // враг дошёл до конца пути
	EnemyConverted  EventType = "EnemyConverted"
	WaveStarted     EventType = "WaveStarted"
	WaveCompleted   EventType = "WaveCompleted" // все враги волны побеждены
	WaveAdvanced    EventType = "WaveAdvanced"  // номер волны увеличен
	FriendPlaced    EventType = "FriendPlaced"
	FriendUpgraded  EventType = "FriendUpgraded"
	FriendMoved     EventType = "FriendMoved"
	CurrencyChanged EventType = "CurrencyChanged"
	GameOver        EventType = "GameOver"
	MapUnlocked     EventType = "MapUnlocked"
	Notice          EventType = "Notice" // сообщение для игрока
)

// EnemyKilledData: данные EnemyKilled.
type EnemyKilledData struct {
	EnemyID      types.EntityID
	EnemyType    string
	Position     geom.Point
	Reward       int
	AttackerType string
}

// EnemyReachedEndData: данные EnemyReachedEnd.
type EnemyReachedEndData struct {
	EnemyID      types.EntityID
	EnemyType    string
	Name         string
	SocialDamage float64
	Health       float64 // здоровье игрока после удара
}

// WaveData: данные событий волны.
type WaveData struct {
	Wave   int
	Name   string
	Count  int
	Reward int
}

// FriendData: данные событий друзей.
type FriendData struct {
	FriendID types.EntityID
	TypeID   string
	Position geom.Point
	Upgrade  string
}

// CurrencyData: данные CurrencyChanged.
type CurrencyData struct {
	Delta   int
	Balance int
}

// MapData: данные MapUnlocked.
type MapData struct {
	Index int
	Name  string
}

// NoticeData: данные Notice.
type NoticeData struct {
	Message  string
	Err      error
	Position geom.Point
}
