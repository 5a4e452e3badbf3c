package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDictionaryCheck(t *testing.T) {
	d, err := NewDictionary(5, Letters, []string{"crane", "slate", "cat"}, []string{"pious", "words!"})
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	if got := d.Candidates(); len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if d.Size() != 3 {
		t.Fatalf("expected 3 allowed words, got %d", d.Size())
	}

	word, err := d.Check("  PIOUS ")
	if err != nil || word != "pious" {
		t.Fatalf("expected pious to be accepted, got %q %v", word, err)
	}
	if _, err := d.Check("cat"); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("expected ErrWrongLength, got %v", err)
	}
	if _, err := d.Check("zzzzz"); !errors.Is(err, ErrNotInDictionary) {
		t.Fatalf("expected ErrNotInDictionary, got %v", err)
	}
	if _, err := d.Check("cr@ne"); !errors.Is(err, ErrInvalidLetters) {
		t.Fatalf("expected ErrInvalidLetters, got %v", err)
	}
}

func TestEmbeddedEnglish(t *testing.T) {
	answers, allowed, err := Embedded("en")
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	d, err := NewDictionary(5, Letters, answers, allowed)
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	if len(d.Candidates()) == 0 {
		t.Fatalf("expected five-letter candidates")
	}
	for _, w := range []string{"crane", "slate", "world", "words", "speed", "erase"} {
		if !d.Contains(w) {
			t.Fatalf("expected %q in built-in dictionary", w)
		}
	}
	langs := EmbeddedLangs()
	if len(langs) != 1 || langs[0] != "en" {
		t.Fatalf("unexpected embedded langs: %v", langs)
	}
	if _, _, err := Embedded("xx"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# comment\nCrane\n\n slate \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "crane" || words[1] != "slate" {
		t.Fatalf("unexpected words: %v", words)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(empty); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
