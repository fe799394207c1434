package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB per rotated file
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

type Config struct {
	HTTPAddr  string    `mapstructure:"http_addr"`
	BoardSize int       `mapstructure:"board_size"` // default size for new matches, 11 or 13
	SavePath  string    `mapstructure:"save_path"`  // sqlite file for save slots
	Log       LogConfig `mapstructure:"log"`
}

// Load reads configuration with defaults, an optional YAML file and
// HNEFATAFL_* environment overrides. When a file is given it is watched
// and cfg is updated in place on change.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("board_size", 11)
	v.SetDefault("save_path", "hnefatafl-saves.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)

	v.SetEnvPrefix("HNEFATAFL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if configPath != "" {
		if !fileExists(configPath) {
			return nil, fmt.Errorf("config file %s does not exist", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.OnConfigChange(func(fsnotify.Event) {
			_ = v.Unmarshal(cfg)
		})
		v.WatchConfig()
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
