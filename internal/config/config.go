// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	FieldWidth   = 800
	FieldHeight  = 600
	MaxDeltaTime = 0.06
	TicksPerSec  = 60.0 // content speeds and timers are per tick at 1x

	StartHealth   = 20.0
	StartCurrency = 100
	StartWave     = 1

	PathClearance   = 40.0 // минимальное расстояние от пути до друга
	FriendSpacing   = 35.0 // минимальное расстояние между друзьями
	FriendClickSize = 25.0

	EnemyArriveEpsilon = 5.0
	EnemySpawnBackoff  = 30.0
	SlowFactor         = 0.3

	ProjectileSpeed     = 7.0
	ProjectileHitRadius = 10.0

	TrainSpeed     = 4.0
	TrainLife      = 200.0
	TrainHitRadius = 30.0
	TrainArrive    = 8.0

	BananaLife     = 60.0
	BananaGravity  = 0.3
	BananaSpread   = 8.0
	BananaLift     = 2.0
	BananasOnKill  = 8
	BananasOnTrain = 12

	BubbleLife     = 180.0
	BubbleOffsetY  = 30.0
	PhotoBubbleX   = 400.0
	PhotoBubbleY   = 200.0
	NoticeLifetime = 3.0 // секунды

	WaveAdvanceDelay = 1.0 // секунды реального времени
	WaveRewardBase   = 25
	WaveRewardStep   = 3
	UnlockAfterWave  = 12

	MaxUpgrades    = 2
	SpeedNormal    = 1.0
	SpeedFast      = 2.0
	SaveSlotCount  = 3
	SaveVersion    = "1.0"
	SaveSlotPrefix = "slot"

	SpeedButtonX    = 740
	SpeedButtonY    = 20
	SpeedButtonSize = 18.0
	HUDHeight       = 40
)

var (
	BackgroundColor = color.RGBA{10, 14, 10, 255}
	GridColor       = color.RGBA{0, 255, 65, 26}
	PathColor       = color.RGBA{60, 60, 60, 255}
	PathEdgeColor   = color.RGBA{0, 255, 65, 80}
	TargetColor     = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{0, 255, 65, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ConvertedColor  = color.RGBA{0, 255, 65, 255}
	HealthBackColor = color.RGBA{255, 0, 0, 255}
	HealthColor     = color.RGBA{0, 160, 0, 255}
	SlowColor       = color.RGBA{0, 0, 255, 255}
	StunColor       = color.RGBA{255, 255, 0, 255}
	GrappleColor    = color.RGBA{121, 85, 72, 255}
	UpgradeColor    = color.RGBA{255, 215, 0, 255}
	BananaColor     = color.RGBA{255, 235, 59, 255}
	TrainColor      = color.RGBA{76, 175, 80, 255}
	TrainEdgeColor  = color.RGBA{46, 125, 50, 255}
	BubbleColor     = color.RGBA{0, 0, 0, 230}
	FriendStroke    = color.RGBA{0, 255, 65, 255}
	InvalidColor    = color.RGBA{255, 71, 87, 160}
	StrokeWidth     = float32(2.0)
)

// TargetPoint: цель врагов, все пути заканчиваются здесь.
var TargetPoint = struct{ X, Y float64 }{X: 750, Y: 250}
