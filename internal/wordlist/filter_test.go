package wordlist

import (
	"errors"
	"testing"
)

func TestLettersFilter(t *testing.T) {
	if !Letters("hello") {
		t.Fatalf("expected hello to pass letters filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", "Hello", ""} {
		if Letters(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestValidateShape(t *testing.T) {
	if err := ValidateShape("crane", 5); err != nil {
		t.Fatalf("expected crane to be valid: %v", err)
	}
	if err := ValidateShape("cran", 5); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("expected ErrWrongLength, got %v", err)
	}
	if err := ValidateShape("cr4ne", 5); !errors.Is(err, ErrInvalidLetters) {
		t.Fatalf("expected ErrInvalidLetters, got %v", err)
	}
}

func TestApplyDropsDuplicates(t *testing.T) {
	got := Apply([]string{"crane", "cat", "crane", "slate"}, FilterLength(Letters, 5))
	if len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Fatalf("unexpected filtered words: %v", got)
	}
}
