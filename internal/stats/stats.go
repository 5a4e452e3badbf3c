// Package stats contains statistics calculations and reporting.
package stats

import (
	"errors"
	"fmt"
	"sync"

	"github.com/verte-zerg/guessr/internal/model"
)

var (
	// ErrNotApplicable is returned when a ratio has a zero denominator.
	ErrNotApplicable = errors.New("not applicable: no games to average over")
	// ErrNoOutcome rejects a record that never reached Won or Lost.
	ErrNoOutcome = errors.New("session record has no outcome")
)

// Snapshot is a consistent copy of the aggregate counters.
type Snapshot struct {
	GamesPlayed        int
	GamesWon           int
	TotalGuessesInWins int
	CurrentStreak      int
	MaxStreak          int
	// Distribution maps guesses used to the number of games won with that count.
	Distribution map[int]int
}

// WinRate returns GamesWon / GamesPlayed.
func (s Snapshot) WinRate() (float64, error) {
	if s.GamesPlayed == 0 {
		return 0, ErrNotApplicable
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed), nil
}

// AverageWinningGuesses returns TotalGuessesInWins / GamesWon.
func (s Snapshot) AverageWinningGuesses() (float64, error) {
	if s.GamesWon == 0 {
		return 0, ErrNotApplicable
	}
	return float64(s.TotalGuessesInWins) / float64(s.GamesWon), nil
}

// Aggregator accumulates completed sessions for the life of the process.
// It is safe for concurrent use.
type Aggregator struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{snap: Snapshot{Distribution: map[int]int{}}}
}

// Record folds one finished session into the counters. Records without an
// outcome are rejected and leave the counters untouched.
func (a *Aggregator) Record(rec model.SessionRecord) error {
	if rec.Outcome != model.Won && rec.Outcome != model.Lost {
		return fmt.Errorf("%w: %s", ErrNoOutcome, rec.Outcome)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.snap.Distribution == nil {
		a.snap.Distribution = map[int]int{}
	}
	a.snap.GamesPlayed++
	if rec.Outcome != model.Won {
		a.snap.CurrentStreak = 0
		return nil
	}
	a.snap.GamesWon++
	a.snap.TotalGuessesInWins += rec.GuessesUsed
	a.snap.Distribution[rec.GuessesUsed]++
	a.snap.CurrentStreak++
	if a.snap.CurrentStreak > a.snap.MaxStreak {
		a.snap.MaxStreak = a.snap.CurrentStreak
	}
	return nil
}

// Snapshot returns a copy of the counters taken under the lock.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.snap
	out.Distribution = make(map[int]int, len(a.snap.Distribution))
	for k, v := range a.snap.Distribution {
		out.Distribution[k] = v
	}
	return out
}

// WinRate returns the share of games won.
func (a *Aggregator) WinRate() (float64, error) {
	return a.Snapshot().WinRate()
}

// AverageWinningGuesses returns the mean guesses used across won games.
func (a *Aggregator) AverageWinningGuesses() (float64, error) {
	return a.Snapshot().AverageWinningGuesses()
}
