// internal/storage/storage.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"go-social-defense/internal/app"
	"go-social-defense/internal/config"
)

var (
	ErrSlotNotFound = errors.New("save slot is empty")
	ErrInvalidSlot  = errors.New("invalid save slot")
)

// SaveSlot: строка таблицы сохранений. Друзья хранятся отдельной JSON
// колонкой, остальное состояние целиком в Data.
type SaveSlot struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;size:32"`
	Wave      int
	MapIndex  int
	Score     int
	Health    float64
	Money     int
	Version   string `gorm:"size:16"`
	SavedAt   time.Time
	Friends   datatypes.JSON
	Data      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotName returns the name of the n-th save slot, starting at 1.
func SlotName(n int) string {
	return config.SaveSlotPrefix + strconv.Itoa(n)
}

// ValidSlot reports whether name is one of the fixed save slots.
func ValidSlot(name string) bool {
	rest, ok := strings.CutPrefix(name, config.SaveSlotPrefix)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(rest)
	return err == nil && n >= 1 && n <= config.SaveSlotCount
}

// Store keeps save slots in a SQLite file.
type Store struct {
	DB           *gorm.DB
	Logger       zerolog.Logger
	autosaveSlot string
}

// Open opens (or creates) the database at path and migrates the schema.
// An empty path uses an in-memory database.
func Open(path string, autosaveSlot string, log zerolog.Logger) (*Store, error) {
	if autosaveSlot != "" && !ValidSlot(autosaveSlot) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, autosaveSlot)
	}

	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}
	if err := db.AutoMigrate(&SaveSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate save database: %w", err)
	}

	log.Info().Str("path", path).Msg("Save database ready")
	return &Store{DB: db, Logger: log, autosaveSlot: autosaveSlot}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save writes data into slot name, replacing what was there.
func (s *Store) Save(name string, data app.SaveData) error {
	if !ValidSlot(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}

	friends, err := json.Marshal(data.Friends)
	if err != nil {
		return fmt.Errorf("encode friends: %w", err)
	}
	rest := data
	rest.Friends = nil
	payload, err := json.Marshal(rest)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	row := SaveSlot{
		Name:     name,
		Wave:     data.Wave,
		MapIndex: data.CurrentMap,
		Score:    data.Score,
		Health:   data.Health,
		Money:    data.Money,
		Version:  data.Version,
		SavedAt:  data.SavedAt,
		Friends:  datatypes.JSON(friends),
		Data:     datatypes.JSON(payload),
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wave", "map_index", "score", "health", "money", "version", "saved_at", "friends", "data", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", name, err)
	}

	s.Logger.Info().Str("slot", name).Int("wave", data.Wave).Int("friends", len(data.Friends)).Msg("Game saved")
	return nil
}

// Load reads slot name back into a SaveData.
func (s *Store) Load(name string) (app.SaveData, error) {
	var data app.SaveData
	if !ValidSlot(name) {
		return data, fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}

	var row SaveSlot
	err := s.DB.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return data, fmt.Errorf("%w: %s", ErrSlotNotFound, name)
	}
	if err != nil {
		return data, fmt.Errorf("load slot %s: %w", name, err)
	}

	if err := json.Unmarshal(row.Data, &data); err != nil {
		return data, fmt.Errorf("decode slot %s: %w", name, err)
	}
	if len(row.Friends) > 0 {
		if err := json.Unmarshal(row.Friends, &data.Friends); err != nil {
			return data, fmt.Errorf("decode friends in slot %s: %w", name, err)
		}
	}

	s.Logger.Info().Str("slot", name).Int("wave", data.Wave).Msg("Game loaded")
	return data, nil
}

// List returns the occupied slots ordered by name. Data columns are not loaded.
func (s *Store) List() ([]SaveSlot, error) {
	var rows []SaveSlot
	err := s.DB.Omit("friends", "data").Order("name").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return rows, nil
}

// Delete empties slot name. Deleting an empty slot is not an error.
func (s *Store) Delete(name string) error {
	if !ValidSlot(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}
	if err := s.DB.Where("name = ?", name).Delete(&SaveSlot{}).Error; err != nil {
		return fmt.Errorf("delete slot %s: %w", name, err)
	}
	return nil
}

// Autosave implements app.Autosaver by writing to the configured slot.
func (s *Store) Autosave(data app.SaveData) error {
	if s.autosaveSlot == "" {
		return nil
	}
	return s.Save(s.autosaveSlot, data)
}
