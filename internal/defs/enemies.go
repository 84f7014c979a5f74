// internal/defs/enemies.go
package defs

import "math"

// EnemyDefinition: статические данные типа врага.
type EnemyDefinition struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Health       float64 `yaml:"health"`
	Speed        float64 `yaml:"speed"` // px per tick at 1x
	Reward       int     `yaml:"reward"`
	SocialDamage float64 `yaml:"social_damage"`
	Color        Color   `yaml:"color"`
	Icon         string  `yaml:"icon"`
	Description  string  `yaml:"description"`
	Category     string  `yaml:"category"`
	Boss         bool    `yaml:"boss"`
}

// ScaledHealth: floor(health × 1.15^(wave-1)).
func (d *EnemyDefinition) ScaledHealth(wave int) float64 {
	return math.Floor(d.Health * math.Pow(1.15, float64(wave-1)))
}

// ScaledSpeed: speed × (1 + (wave-1)×0.03).
func (d *EnemyDefinition) ScaledSpeed(wave int) float64 {
	return d.Speed * (1 + float64(wave-1)*0.03)
}

// ScaledReward: floor(reward × (1 + (wave-1)×0.05)).
func (d *EnemyDefinition) ScaledReward(wave int) int {
	return int(math.Floor(float64(d.Reward) * (1 + float64(wave-1)*0.05)))
}
