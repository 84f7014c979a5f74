// internal/defs/maps.go
package defs

import "go-social-defense/pkg/geom"

// Spawn: точка появления врагов и индекс пути, по которому они пойдут.
type Spawn struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	PathIndex int     `yaml:"path_index"`
}

// Point возвращает точку появления.
func (s Spawn) Point() geom.Point {
	return geom.Point{X: s.X, Y: s.Y}
}

// MapDefinition описывает карту. В течение сессии карты не меняются.
type MapDefinition struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Difficulty  int            `yaml:"difficulty"`
	Theme       string         `yaml:"theme"`
	Paths       [][]geom.Point `yaml:"paths"`
	Spawns      []Spawn        `yaml:"spawns"`
}

// IsOnPath: лежит ли p ближе clearance к какому-либо отрезку пути.
func (m *MapDefinition) IsOnPath(p geom.Point, clearance float64) bool {
	for _, path := range m.Paths {
		if geom.DistanceToPath(p, path) < clearance {
			return true
		}
	}
	return false
}

func (m *MapDefinition) validate() error {
	if len(m.Paths) == 0 {
		return errorf("map %q has no paths", m.Name)
	}
	for i, path := range m.Paths {
		if len(path) < 2 {
			return errorf("map %q: path %d has %d points, need at least 2", m.Name, i, len(path))
		}
	}
	if len(m.Spawns) == 0 {
		return errorf("map %q has no spawns", m.Name)
	}
	for i, s := range m.Spawns {
		if s.PathIndex < 0 || s.PathIndex >= len(m.Paths) {
			return errorf("map %q: spawn %d references path %d", m.Name, i, s.PathIndex)
		}
	}
	return nil
}
