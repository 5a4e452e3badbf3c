// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Theme ThemeConfig `toml:"theme"`
}

// GameConfig maps game-related settings.
type GameConfig struct {
	Length     *int    `toml:"length"`
	MaxGuesses *int    `toml:"max-guesses"`
	Lang       *string `toml:"lang"`
	WordList   *string `toml:"wordlist"`
	Answers    *string `toml:"answers"`
	Practice   *bool   `toml:"practice"`
	History    *int    `toml:"history"`
}

// ThemeConfig selects a theme and optionally overrides its tile colours.
type ThemeConfig struct {
	Name    *string `toml:"name"`
	Correct *string `toml:"correct"`
	Present *string `toml:"present"`
	Absent  *string `toml:"absent"`
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
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
