// internal/defs/upgrades.go
package defs

// EffectKind: что улучшение делает с характеристиками друга.
type EffectKind string

const (
	EffectScaleDamage     EffectKind = "scale_damage"
	EffectScaleFireRate   EffectKind = "scale_fire_rate"
	EffectScaleRange      EffectKind = "scale_range"
	EffectExperienceRate  EffectKind = "experience_rate"
	EffectExperienceBoost EffectKind = "experience_boost"
	EffectExperienceCap   EffectKind = "experience_cap"
	EffectAmplify         EffectKind = "amplify"
	EffectFlag            EffectKind = "flag"
)

func (k EffectKind) valid() bool {
	switch k {
	case EffectScaleDamage, EffectScaleFireRate, EffectScaleRange,
		EffectExperienceRate, EffectExperienceBoost, EffectExperienceCap,
		EffectAmplify, EffectFlag:
		return true
	}
	return false
}

// UpgradeDefinition: запись каталога улучшений.
type UpgradeDefinition struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Cost         int        `yaml:"cost"`
	Effect       EffectKind `yaml:"effect"`
	Factor       float64    `yaml:"factor"`        // stat multiplier (range for amplify)
	DamageFactor float64    `yaml:"damage_factor"` // amplify only
	Value        float64    `yaml:"value"`         // experience effects
	Description  string     `yaml:"description"`
}
