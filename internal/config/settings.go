package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the user-tunable knobs read from social_defense.yaml and the
// environment.
type Settings struct {
	LogLevel     string `mapstructure:"logLevel"`
	Seed         int64  `mapstructure:"seed"`
	ContentDir   string `mapstructure:"contentDir"`
	WatchContent bool   `mapstructure:"watchContent"`
	Storage      struct {
		Path string `mapstructure:"path"`
		Slot string `mapstructure:"slot"`
	} `mapstructure:"storage"`
	Game struct {
		Speed    float64 `mapstructure:"speed"`
		StartMap int     `mapstructure:"startMap"`
		Autosave bool    `mapstructure:"autosave"`
	} `mapstructure:"game"`
}

// Load reads configuration from configDir and sets default values.
// A missing config file is not an error.
func Load(configDir string) (*Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)
	viper.SetDefault("contentDir", "")
	viper.SetDefault("watchContent", false)

	viper.SetDefault("storage.path", "./social_defense.db")
	viper.SetDefault("storage.slot", "slot1")

	viper.SetDefault("game.speed", SpeedNormal)
	viper.SetDefault("game.startMap", -1)
	viper.SetDefault("game.autosave", true)

	viper.SetConfigName("social_defense")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("SOCIALDEF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if s.Game.Speed != SpeedNormal && s.Game.Speed != SpeedFast {
		s.Game.Speed = SpeedNormal
	}
	return &s, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
