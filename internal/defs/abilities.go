// internal/defs/abilities.go
package defs

import "fmt"

// AbilityKind: закрытый набор особых способностей друзей.
type AbilityKind string

const (
	KindPassive      AbilityKind = "passive"
	KindFamilyPhoto  AbilityKind = "family_photo"
	KindMoveable     AbilityKind = "moveable"
	KindListener     AbilityKind = "listener"
	KindSlowField    AbilityKind = "slow_field"
	KindConspiracy   AbilityKind = "conspiracy"
	KindCuteStun     AbilityKind = "cute_stun"
	KindTrainRampage AbilityKind = "train_rampage"
	KindScholar      AbilityKind = "scholar"
	KindSingingStun  AbilityKind = "singing_stun"
	KindGrapple      AbilityKind = "grapple"
)

// Ability реализуют только типы из этого файла.
// Потребители делают switch по конкретному типу.
type Ability interface {
	Kind() AbilityKind
	// Wide: способность бьёт всех врагов в расширенном радиусе, если куплено
	// улучшение "wide".
	Wide() bool
	// DamageGated: без GateUpgrade прямых атак нет.
	DamageGated() bool
	sealed()
}

// GateUpgrade открывает прямые атаки для DamageGated способностей.
const GateUpgrade = "damage"

// WideUpgrade включает широкую атаку.
const WideUpgrade = "wide"

// WideRangeBonus прибавляется к радиусу широкой атаки.
const WideRangeBonus = 50.0

type base struct{}

func (base) Wide() bool        { return false }
func (base) DamageGated() bool { return false }
func (base) sealed()           {}

// Passive: только обычная атака.
type Passive struct {
	base
	ID string
}

func (Passive) Kind() AbilityKind { return KindPassive }

// FamilyPhoto: одноразово оглушает всех врагов на карте.
type FamilyPhoto struct {
	base
	StunTicks float64
}

func (FamilyPhoto) Kind() AbilityKind { return KindFamilyPhoto }

// Moveable: одноразовый перенос друга.
type Moveable struct{ base }

func (Moveable) Kind() AbilityKind { return KindMoveable }

// Listener сокращает перезарядку соседних друзей.
type Listener struct {
	base
	Radius        float64
	Credit        float64 // ms
	BoostedCredit float64
	BoostUpgrade  string
	Cooldown      float64 // ticks
}

func (Listener) Kind() AbilityKind { return KindListener }

// SlowField замедляет всех врагов в радиусе.
type SlowField struct {
	base
	SlowTicks        float64
	BoostedSlowTicks float64
	BoostUpgrade     string
	Cooldown         float64
}

func (SlowField) Kind() AbilityKind { return KindSlowField }
func (SlowField) DamageGated() bool { return true }

// Conspiracy замедляет врагов в радиусе, а с ConvertUpgrade переманивает их.
type Conspiracy struct {
	base
	SlowTicks        float64
	BoostedSlowTicks float64
	BoostUpgrade     string
	SlowCooldown     float64
	ConvertUpgrade   string
	ConvertChance    float64
	ConvertCooldown  float64
}

func (Conspiracy) Kind() AbilityKind { return KindConspiracy }
func (Conspiracy) DamageGated() bool { return true }

// CuteStun ненадолго оглушает врагов в радиусе, если куплен RequiredUpgrade.
type CuteStun struct {
	base
	RequiredUpgrade string
	StunTicks       float64
	Cooldown        float64
}

func (CuteStun) Kind() AbilityKind { return KindCuteStun }
func (CuteStun) Wide() bool        { return true }

// TrainRampage: одноразовые поезда, идущие по пути задом наперёд.
type TrainRampage struct {
	base
	Damage        float64
	BoostedDamage float64
	BoostUpgrade  string
	// OffsetsY: вертикальный сдвиг для каждого поезда. Усиленная атака
	// берёт все, обычная только первый.
	OffsetsY []float64
}

func (TrainRampage) Kind() AbilityKind { return KindTrainRampage }

// Scholar копит опыт от убийств рядом, каждый уровень даёт PerLevel базового урона.
type Scholar struct {
	base
	Radius   float64
	PerLevel float64
	MaxLevel int
	GainRate int
}

func (Scholar) Kind() AbilityKind { return KindScholar }

// SingingStun оглушает врагов в радиусе и сообщает, сколько их было.
type SingingStun struct {
	base
	StunTicks        float64
	BoostedStunTicks float64
	RangeBonus       float64
	BoostUpgrade     string
	Cooldown         float64
	FastCooldown     float64
	FastUpgrade      string
}

func (SingingStun) Kind() AbilityKind { return KindSingingStun }

// Grapple удерживает врагов рядом на месте.
type Grapple struct {
	base
	Radius           float64
	MaxHolds         int
	BoostedMaxHolds  int
	HoldsUpgrade     string
	HoldTicks        float64
	BoostedHoldTicks float64
	DurationUpgrade  string
	ListenUpgrade    string
	ListenRadius     float64
	ListenCredit     float64
	Cooldown         float64
}

func (Grapple) Kind() AbilityKind { return KindGrapple }

// NewAbility превращает special из таблицы друзей в параметры способности.
func NewAbility(special string) (Ability, error) {
	switch special {
	case "family_photo":
		return FamilyPhoto{StunTicks: 180}, nil
	case "moveable":
		return Moveable{}, nil
	case "listener":
		return Listener{Radius: 100, Credit: 200, BoostedCredit: 400, BoostUpgrade: "heal", Cooldown: 300}, nil
	case "slow_only":
		return SlowField{SlowTicks: 90, BoostedSlowTicks: 150, BoostUpgrade: "slow", Cooldown: 120}, nil
	case "conspiracy_only":
		return Conspiracy{
			SlowTicks: 80, BoostedSlowTicks: 120, BoostUpgrade: "conspiracy", SlowCooldown: 180,
			ConvertUpgrade: "convert", ConvertChance: 0.3, ConvertCooldown: 600,
		}, nil
	case "cuteness_wide":
		return CuteStun{RequiredUpgrade: "cute", StunTicks: 30, Cooldown: 600}, nil
	case "train_rampage":
		return TrainRampage{Damage: 80, BoostedDamage: 120, BoostUpgrade: "trains", OffsetsY: []float64{-30, 30}}, nil
	case "student_experience":
		return Scholar{Radius: 150, PerLevel: 0.15, MaxLevel: 10, GainRate: 1}, nil
	case "singing_stun":
		return SingingStun{
			StunTicks: 80, BoostedStunTicks: 120, RangeBonus: 50, BoostUpgrade: "harmony",
			Cooldown: 600, FastCooldown: 400, FastUpgrade: "repertoire",
		}, nil
	case "grapple_close":
		return Grapple{
			Radius: 60, MaxHolds: 1, BoostedMaxHolds: 3, HoldsUpgrade: "strength",
			HoldTicks: 180, BoostedHoldTicks: 300, DurationUpgrade: "grapple",
			ListenUpgrade: "listening", ListenRadius: 120, ListenCredit: 100, Cooldown: 240,
		}, nil
	case "music_single", "trivia_range", "fasttalk", "flowers_range":
		return Passive{ID: special}, nil
	}
	return nil, fmt.Errorf("unknown special %q", special)
}
