package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds GUESSR_* overrides. Unset variables stay nil.
type EnvConfig struct {
	Length     *int    `env:"GUESSR_LENGTH"`
	MaxGuesses *int    `env:"GUESSR_MAX_GUESSES"`
	Lang       *string `env:"GUESSR_LANG"`
	WordList   *string `env:"GUESSR_WORDLIST"`
	Answers    *string `env:"GUESSR_ANSWERS"`
	Theme      *string `env:"GUESSR_THEME"`
	Practice   *bool   `env:"GUESSR_PRACTICE"`
	History    *int    `env:"GUESSR_HISTORY"`
	LogFile    *string `env:"GUESSR_LOG_FILE"`
	LogLevel   *string `env:"GUESSR_LOG_LEVEL"`
}

// LoadEnv parses the GUESSR_* environment variables.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
