// internal/system/upgrade.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
)

var (
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrUpgradeNotAllowed = errors.New("upgrade not available for this friend")
	ErrUpgradeSlotsFull  = errors.New("friend already has the maximum number of upgrades")
	ErrDuplicateUpgrade  = errors.New("upgrade already applied")
)

// UpgradeSystem проверяет и применяет улучшения к копии статов друга.
type UpgradeSystem struct {
	library *defs.Library
}

func NewUpgradeSystem(library *defs.Library) *UpgradeSystem {
	return &UpgradeSystem{library: library}
}

// Check проверяет, можно ли применить id к f, и возвращает определение.
func (s *UpgradeSystem) Check(f *component.Friend, id string) (*defs.UpgradeDefinition, error) {
	up, ok := s.library.Upgrades[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	friendDef, ok := s.library.Friends[f.TypeID]
	if !ok || !friendDef.AllowsUpgrade(id) {
		return nil, fmt.Errorf("%w: %s on %s", ErrUpgradeNotAllowed, id, f.TypeID)
	}
	if f.HasUpgrade(id) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUpgrade, id)
	}
	if len(f.Upgrades) >= config.MaxUpgrades {
		return nil, ErrUpgradeSlotsFull
	}
	return &up, nil
}

// Apply проверяет и применяет улучшение. При ошибке f не меняется.
func (s *UpgradeSystem) Apply(f *component.Friend, id string) (*defs.UpgradeDefinition, error) {
	up, err := s.Check(f, id)
	if err != nil {
		return nil, err
	}

	stats := &f.Stats
	switch up.Effect {
	case defs.EffectScaleDamage:
		stats.Damage = math.Floor(stats.Damage * up.Factor)
	case defs.EffectScaleFireRate:
		stats.FireRate = math.Floor(stats.FireRate * up.Factor)
	case defs.EffectScaleRange:
		stats.Range = math.Floor(stats.Range * up.Factor)
	case defs.EffectAmplify:
		stats.Range = math.Floor(stats.Range * up.Factor)
		stats.Damage = math.Floor(stats.Damage * up.DamageFactor)
	case defs.EffectExperienceRate:
		if f.Experience != nil {
			f.Experience.GainRate = int(up.Value)
		}
	case defs.EffectExperienceBoost:
		if f.Experience != nil {
			f.Experience.Level = min(f.Experience.Level+int(up.Value), f.Experience.Max)
			if a, ok := stats.Ability.(defs.Scholar); ok {
				stats.Damage = ScholarDamage(f.BaseDamage, f.Experience.Level, a.PerLevel)
			}
		}
	case defs.EffectExperienceCap:
		if f.Experience != nil {
			f.Experience.Max = int(up.Value)
		}
	case defs.EffectFlag:
		// поведение проверяется через HasUpgrade
	}

	f.Upgrades = append(f.Upgrades, id)
	return up, nil
}
