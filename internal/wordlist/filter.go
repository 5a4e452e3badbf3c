// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrongLength rejects a guess whose length differs from the target.
	ErrWrongLength = errors.New("wrong number of letters")
	// ErrInvalidLetters rejects a guess with characters outside a-z.
	ErrInvalidLetters = errors.New("only letters a-z are allowed")
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Letters keeps words made only of a-z, the alphabet guesses are typed in.
var Letters FilterFunc = filterLettersASCII

// FilterLength keeps words of exactly n letters that also pass keep.
func FilterLength(keep FilterFunc, n int) FilterFunc {
	return func(word string) bool {
		return len([]rune(word)) == n && keep(word)
	}
}

// Apply returns the words kept by filter, in order and without duplicates.
func Apply(words []string, filter FilterFunc) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if !filter(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

// Normalize lowercases and trims raw user input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateShape checks that word has n letters from a-z.
func ValidateShape(word string, n int) error {
	if got := len([]rune(word)); got != n {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, got, n)
	}
	if !filterLettersASCII(word) {
		return ErrInvalidLetters
	}
	return nil
}

func filterLettersASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
