package game

import (
	"errors"
	"testing"

	"github.com/verte-zerg/guessr/internal/model"
)

func newTestSession(t *testing.T, target string) *Session {
	t.Helper()
	s, err := NewSession(model.GameConfig{WordLength: 5, MaxGuesses: 6}, target)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNewSessionAwaitsGuess(t *testing.T) {
	s := newTestSession(t, "crane")
	if s.State() != AwaitingGuess {
		t.Fatalf("expected awaiting-guess, got %s", s.State())
	}
	if s.GuessesUsed() != 0 || s.Remaining() != 6 {
		t.Fatalf("unexpected counters: used=%d remaining=%d", s.GuessesUsed(), s.Remaining())
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	if _, err := NewSession(model.GameConfig{WordLength: 0, MaxGuesses: 6}, ""); err == nil {
		t.Fatalf("expected error for zero word length")
	}
	if _, err := NewSession(model.GameConfig{WordLength: 5, MaxGuesses: 0}, "crane"); err == nil {
		t.Fatalf("expected error for zero max guesses")
	}
	if _, err := NewSession(model.GameConfig{WordLength: 5, MaxGuesses: 6}, "cranes"); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch for long target, got %v", err)
	}
}

func TestSessionWinsOnLastGuess(t *testing.T) {
	s := newTestSession(t, "crane")
	for i, guess := range []string{"slate", "pious", "dwarf", "lymph", "bogus"} {
		_, state, err := s.SubmitGuess(guess)
		if err != nil {
			t.Fatalf("guess %d: %v", i, err)
		}
		if state != AwaitingGuess {
			t.Fatalf("guess %d: expected awaiting-guess, got %s", i, state)
		}
	}
	fb, state, err := s.SubmitGuess("crane")
	if err != nil {
		t.Fatalf("final guess: %v", err)
	}
	if state != Won || !fb.Solved() {
		t.Fatalf("expected win with solved row, got %s %v", state, fb)
	}
	res, ok := s.Result()
	if !ok || res.Outcome != model.Won || res.GuessesUsed != 6 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.String() != "Won(6)" {
		t.Fatalf("unexpected result string: %s", res)
	}
}

func TestSessionLosesAfterMaxGuesses(t *testing.T) {
	s := newTestSession(t, "crane")
	guesses := []string{"slate", "pious", "dwarf", "lymph", "bogus", "fight"}
	var state State
	for i, guess := range guesses {
		var err error
		_, state, err = s.SubmitGuess(guess)
		if err != nil {
			t.Fatalf("guess %d: %v", i, err)
		}
	}
	if state != Lost {
		t.Fatalf("expected lost, got %s", state)
	}
	res, ok := s.Result()
	if !ok || res.Outcome != model.Lost || res.Target != "crane" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.String() != "Lost(crane)" {
		t.Fatalf("unexpected result string: %s", res)
	}
}

func TestSessionTerminated(t *testing.T) {
	s := newTestSession(t, "crane")
	if _, _, err := s.SubmitGuess("crane"); err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	_, state, err := s.SubmitGuess("slate")
	if !errors.Is(err, ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
	if state != Won || s.GuessesUsed() != 1 {
		t.Fatalf("terminated guess changed the session: state=%s used=%d", state, s.GuessesUsed())
	}
}

func TestSessionWrongLengthIsNoop(t *testing.T) {
	s := newTestSession(t, "crane")
	if _, _, err := s.SubmitGuess("cat"); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if s.GuessesUsed() != 0 || s.State() != AwaitingGuess {
		t.Fatalf("wrong-length guess changed the session: state=%s used=%d", s.State(), s.GuessesUsed())
	}
}

func TestSessionRecord(t *testing.T) {
	s := newTestSession(t, "crane")
	if _, err := s.Record(); err == nil {
		t.Fatalf("expected error recording an unfinished session")
	}
	for _, guess := range []string{"slate", "crane"} {
		if _, _, err := s.SubmitGuess(guess); err != nil {
			t.Fatalf("guess %q: %v", guess, err)
		}
	}
	rec, err := s.Record()
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Outcome != model.Won || rec.GuessesUsed != 2 || rec.Target != "crane" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Guesses) != 2 || rec.Guesses[0] != "slate" {
		t.Fatalf("unexpected guesses: %v", rec.Guesses)
	}
	if rec.EndedAt.Before(rec.StartedAt) {
		t.Fatalf("ended before started: %v < %v", rec.EndedAt, rec.StartedAt)
	}
}

func TestSessionHistoryIsCopy(t *testing.T) {
	s := newTestSession(t, "crane")
	if _, _, err := s.SubmitGuess("slate"); err != nil {
		t.Fatalf("guess: %v", err)
	}
	history := s.History()
	history[0].Feedback[0] = Correct
	if s.History()[0].Feedback[0] == Correct {
		t.Fatalf("history mutation leaked into session")
	}
}
