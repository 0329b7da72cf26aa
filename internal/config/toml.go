// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Store    StoreConfig    `toml:"store"`
	Lessons  LessonsConfig  `toml:"lessons"`
}

// PracticeConfig maps the initial session settings and input handling.
type PracticeConfig struct {
	Lesson   *int    `toml:"lesson"`
	Mode     *string `toml:"mode"`
	Value    *int    `toml:"value"`
	Compose  *string `toml:"compose"`
	Keyboard *string `toml:"keyboard"`
}

// StoreConfig selects where preferences are kept.
type StoreConfig struct {
	Driver        *string `toml:"driver"`
	Path          *string `toml:"path"`
	RedisAddr     *string `toml:"redis-addr"`
	RedisDB       *int    `toml:"redis-db"`
	RedisPassword *string `toml:"redis-password"`
}

// LessonsConfig points at optional lesson sources.
type LessonsConfig struct {
	File     *string `toml:"file"`
	Wordlist *string `toml:"wordlist"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
