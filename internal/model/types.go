// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// GameConfig defines the shape of one game.
type GameConfig struct {
	WordLength int
	MaxGuesses int
}

// Validate reports whether the config can drive a session.
func (c GameConfig) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("word length must be >= 1, got %d", c.WordLength)
	}
	if c.MaxGuesses < 1 {
		return fmt.Errorf("max guesses must be >= 1, got %d", c.MaxGuesses)
	}
	return nil
}

// Config defines play settings resolved from flags, env and the config file.
type Config struct {
	Game        GameConfig
	Lang        string
	WordList    string
	Answers     string
	Theme       string
	Practice    bool
	Daily       bool
	Seed        int64
	Games       int
	Plain       bool
	LogFile     string
	LogLevel    string
	HistorySize int
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	// NoOutcome is the zero value; a record carrying it never finished.
	NoOutcome Outcome = iota
	// Lost means the guesses ran out.
	Lost
	// Won means the target was guessed.
	Won
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "none"
	}
}

// SessionRecord captures a completed game. It is never mutated after creation.
type SessionRecord struct {
	StartedAt   time.Time
	EndedAt     time.Time
	WordLength  int
	MaxGuesses  int
	GuessesUsed int
	Outcome     Outcome
	Target      string
	Guesses     []string
}

// SessionSummary is a journal row used for reporting.
type SessionSummary struct {
	SessionID   int64
	EndedAt     time.Time
	Target      string
	Outcome     Outcome
	GuessesUsed int
	MaxGuesses  int
	DurationMs  int64
}
