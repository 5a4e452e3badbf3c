// Package game implements guess scoring and the per-game session state machine.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when a guess and target differ in length.
var ErrLengthMismatch = errors.New("guess length does not match target length")

// Mark classifies one letter of a guess.
type Mark int

const (
	// Absent means every occurrence of the letter is already accounted for.
	Absent Mark = iota
	// Present means the letter occurs elsewhere in the target.
	Present
	// Correct means the letter matches the target at the same position.
	Correct
)

// String returns the symbolic tag for the mark.
func (m Mark) String() string {
	switch m {
	case Correct:
		return "CORRECT"
	case Present:
		return "PRESENT"
	default:
		return "ABSENT"
	}
}

// Feedback is the ordered per-letter classification of one guess.
type Feedback []Mark

// Solved reports whether every position is Correct.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != Correct {
			return false
		}
	}
	return true
}

// Count returns how many positions carry the given mark.
func (f Feedback) Count(mark Mark) int {
	n := 0
	for _, m := range f {
		if m == mark {
			n++
		}
	}
	return n
}

func (f Feedback) String() string {
	tags := make([]string, len(f))
	for i, m := range f {
		tags[i] = m.String()
	}
	return strings.Join(tags, " ")
}

// Evaluate scores guess against target.
//
// Exact matches consume letter occurrences first; the leftovers are then
// handed out as Present from left to right, so a letter is never reported
// more often than it occurs in the target.
func Evaluate(target, guess string) (Feedback, error) {
	targetRunes := []rune(target)
	guessRunes := []rune(guess)
	if len(targetRunes) != len(guessRunes) {
		return nil, fmt.Errorf("%w: target has %d letters, guess has %d", ErrLengthMismatch, len(targetRunes), len(guessRunes))
	}

	remaining := make(map[rune]int, len(targetRunes))
	for _, r := range targetRunes {
		remaining[r]++
	}

	res := make(Feedback, len(guessRunes))
	marked := make([]bool, len(guessRunes))
	for i, r := range guessRunes {
		if r == targetRunes[i] {
			res[i] = Correct
			marked[i] = true
			remaining[r]--
		}
	}
	for i, r := range guessRunes {
		if marked[i] {
			continue
		}
		if remaining[r] > 0 {
			res[i] = Present
			remaining[r]--
			continue
		}
		res[i] = Absent
	}
	return res, nil
}
