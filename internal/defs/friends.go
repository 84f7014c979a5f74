// internal/defs/friends.go
package defs

import "slices"

// StatBlock: изменяемая часть типа друга. Каждый друг получает свою
// копию при установке, улучшения меняют только её.
type StatBlock struct {
	Damage   float64
	Range    float64
	FireRate float64 // ms between attacks at 1x speed
	Color    Color
	Ability  Ability
	Strong   []string
	Weak     []string
}

// Multiplier возвращает множитель урона против enemyType.
// Strong важнее weak.
func (s StatBlock) Multiplier(enemyType string) float64 {
	if slices.Contains(s.Strong, enemyType) {
		return 2
	}
	if slices.Contains(s.Weak, enemyType) {
		return 0.5
	}
	return 1
}

// Clone возвращает копию без общих слайсов с s.
func (s StatBlock) Clone() StatBlock {
	out := s
	out.Strong = slices.Clone(s.Strong)
	out.Weak = slices.Clone(s.Weak)
	return out
}

// FriendDefinition: статические данные типа друга.
type FriendDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Cost        int      `yaml:"cost"`
	Damage      float64  `yaml:"damage"`
	Range       float64  `yaml:"range"`
	FireRate    float64  `yaml:"fire_rate"`
	Color       Color    `yaml:"color"`
	Special     string   `yaml:"special"`
	Strong      []string `yaml:"strong"`
	Weak        []string `yaml:"weak"`
	Upgrades    []string `yaml:"upgrades"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`

	// Ability is resolved from Special at load time.
	Ability Ability `yaml:"-"`
}

// Stats возвращает новый независимый набор характеристик для поставленного друга.
func (d *FriendDefinition) Stats() StatBlock {
	return StatBlock{
		Damage:   d.Damage,
		Range:    d.Range,
		FireRate: d.FireRate,
		Color:    d.Color,
		Ability:  d.Ability,
		Strong:   slices.Clone(d.Strong),
		Weak:     slices.Clone(d.Weak),
	}
}

// AllowsUpgrade: есть ли id в каталоге улучшений типа.
func (d *FriendDefinition) AllowsUpgrade(id string) bool {
	return slices.Contains(d.Upgrades, id)
}
