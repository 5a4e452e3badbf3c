package wordlist

import (
	"errors"
	"fmt"
)

// ErrNotInDictionary rejects a guess that is not a recognized word.
var ErrNotInDictionary = errors.New("not in word list")

// Dictionary holds the target candidates and the accepted guesses for one
// word length. Every candidate is also an accepted guess.
type Dictionary struct {
	length     int
	candidates []string
	allowed    map[string]struct{}
}

// NewDictionary keeps the words of the given length from answers and
// allowed. An empty allowed list means only answers are accepted.
func NewDictionary(length int, filter FilterFunc, answers, allowed []string) (*Dictionary, error) {
	if length < 1 {
		return nil, fmt.Errorf("word length must be >= 1, got %d", length)
	}
	keep := FilterLength(filter, length)
	candidates := Apply(answers, keep)
	d := &Dictionary{
		length:     length,
		candidates: candidates,
		allowed:    make(map[string]struct{}, len(candidates)+len(allowed)),
	}
	for _, w := range candidates {
		d.allowed[w] = struct{}{}
	}
	for _, w := range Apply(allowed, keep) {
		d.allowed[w] = struct{}{}
	}
	return d, nil
}

// Length returns the word length of the dictionary.
func (d *Dictionary) Length() int {
	return d.length
}

// Candidates returns the target candidates.
func (d *Dictionary) Candidates() []string {
	out := make([]string, len(d.candidates))
	copy(out, d.candidates)
	return out
}

// Size returns the number of accepted guesses.
func (d *Dictionary) Size() int {
	return len(d.allowed)
}

// Contains reports whether word is an accepted guess.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.allowed[word]
	return ok
}

// Check normalizes raw input and runs the shape and membership checks a
// guess must pass before it may consume a turn.
func (d *Dictionary) Check(raw string) (string, error) {
	word := Normalize(raw)
	if err := ValidateShape(word, d.length); err != nil {
		return "", err
	}
	if !d.Contains(word) {
		return "", fmt.Errorf("%w: %q", ErrNotInDictionary, word)
	}
	return word, nil
}
