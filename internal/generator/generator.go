// Package generator picks target words.
package generator

import (
	"encoding/binary"
	"errors"
	"math/rand"
	"time"

	"github.com/zeebo/blake3"
)

// ErrEmptyPool is returned when there is nothing to pick from.
var ErrEmptyPool = errors.New("no candidate words to choose a target from")

const dailyContext = "guessr 2024-01-01 daily target"

// Generator selects target words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for reproducible games.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a target uniformly from candidates.
func (g *Generator) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyPool
	}
	return candidates[g.rnd.Intn(len(candidates))], nil
}

// PickFresh prefers candidates not in played, falling back to the whole
// pool once every candidate has been used.
func (g *Generator) PickFresh(candidates []string, played map[string]struct{}) (string, error) {
	if len(played) == 0 {
		return g.Pick(candidates)
	}
	fresh := make([]string, 0, len(candidates))
	for _, word := range candidates {
		if _, ok := played[word]; !ok {
			fresh = append(fresh, word)
		}
	}
	if len(fresh) == 0 {
		return g.Pick(candidates)
	}
	return g.Pick(fresh)
}

// Daily returns the target for the calendar day of date (UTC).
func Daily(candidates []string, date time.Time) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyPool
	}
	return candidates[DailyIndex(date, len(candidates))], nil
}

// DailyIndex maps a UTC date to an index in [0, n) with a keyed hash so
// consecutive days do not walk the list in order.
func DailyIndex(date time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	h := blake3.NewDeriveKey(dailyContext)
	_, _ = h.Write([]byte(date.UTC().Format("2006-01-02")))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
