// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	MapsFile     = "maps.yaml"
	FriendsFile  = "friends.yaml"
	EnemiesFile  = "enemies.yaml"
	WavesFile    = "waves.yaml"
	UpgradesFile = "upgrades.yaml"
)

// ContentFiles: все таблицы, которые читает загрузчик.
var ContentFiles = []string{MapsFile, FriendsFile, EnemiesFile, WavesFile, UpgradesFile}

// Library хранит все таблицы контента для сессии. После Load
// не меняется.
type Library struct {
	Maps        []MapDefinition
	Friends     map[string]FriendDefinition
	FriendOrder []string
	Enemies     map[string]EnemyDefinition
	Waves       []WaveDefinition
	Upgrades    map[string]UpgradeDefinition
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("defs: "+format, args...)
}

// Source возвращает сырые байты файла контента.
type Source func(name string) ([]byte, error)

// DirSource читает сначала из dir, потом из встроенных файлов.
// Пустой dir: только встроенный контент.
func DirSource(dir string) Source {
	return func(name string) ([]byte, error) {
		if dir != "" {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
		return contentFS.ReadFile("content/" + name)
	}
}

// LoadSpec декодирует один YAML-файл контента в T.
func LoadSpec[T any](src Source, name string) (T, error) {
	var zero T
	data, err := src(name)
	if err != nil {
		return zero, errorf("load %s: %w", name, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, errorf("unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// Load читает и проверяет все таблицы из dir (см. DirSource).
func Load(dir string) (*Library, error) {
	return LoadFrom(DirSource(dir))
}

// LoadFrom читает и проверяет все таблицы из src.
func LoadFrom(src Source) (*Library, error) {
	maps, err := LoadSpec[[]MapDefinition](src, MapsFile)
	if err != nil {
		return nil, err
	}
	friends, err := LoadSpec[[]FriendDefinition](src, FriendsFile)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadSpec[[]EnemyDefinition](src, EnemiesFile)
	if err != nil {
		return nil, err
	}
	waves, err := LoadSpec[[]WaveDefinition](src, WavesFile)
	if err != nil {
		return nil, err
	}
	upgrades, err := LoadSpec[[]UpgradeDefinition](src, UpgradesFile)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Maps:     maps,
		Friends:  make(map[string]FriendDefinition, len(friends)),
		Enemies:  make(map[string]EnemyDefinition, len(enemies)),
		Waves:    waves,
		Upgrades: make(map[string]UpgradeDefinition, len(upgrades)),
	}
	for _, e := range enemies {
		if _, dup := lib.Enemies[e.ID]; dup {
			return nil, errorf("duplicate enemy %q", e.ID)
		}
		lib.Enemies[e.ID] = e
	}
	for _, u := range upgrades {
		if !u.Effect.valid() {
			return nil, errorf("upgrade %q: unknown effect %q", u.ID, u.Effect)
		}
		lib.Upgrades[u.ID] = u
	}
	for _, f := range friends {
		if _, dup := lib.Friends[f.ID]; dup {
			return nil, errorf("duplicate friend %q", f.ID)
		}
		ability, err := NewAbility(f.Special)
		if err != nil {
			return nil, errorf("friend %q: %w", f.ID, err)
		}
		f.Ability = ability
		lib.Friends[f.ID] = f
		lib.FriendOrder = append(lib.FriendOrder, f.ID)
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *Library) validate() error {
	if len(l.Maps) == 0 {
		return errorf("no maps defined")
	}
	for i := range l.Maps {
		if err := l.Maps[i].validate(); err != nil {
			return err
		}
	}
	if len(l.Waves) == 0 {
		return errorf("no waves defined")
	}
	for i, w := range l.Waves {
		if len(w.Enemies) == 0 {
			return errorf("wave %d has no enemies", i+1)
		}
		for _, id := range w.Enemies {
			if _, ok := l.Enemies[id]; !ok {
				return errorf("wave %d references unknown enemy %q", i+1, id)
			}
		}
	}
	for _, id := range l.FriendOrder {
		f := l.Friends[id]
		for _, u := range f.Upgrades {
			if _, ok := l.Upgrades[u]; !ok {
				return errorf("friend %q references unknown upgrade %q", id, u)
			}
		}
	}
	return nil
}

// Wave возвращает конфигурацию для номера волны. Волны за концом
// таблицы берут последнюю запись.
func (l *Library) Wave(wave int) *WaveDefinition {
	idx := min(max(wave-1, 0), len(l.Waves)-1)
	return &l.Waves[idx]
}

// Map возвращает карту по индексу или nil.
func (l *Library) Map(index int) *MapDefinition {
	if index < 0 || index >= len(l.Maps) {
		return nil
	}
	return &l.Maps[index]
}
