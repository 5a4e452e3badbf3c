package play

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessr/internal/game"
	"github.com/verte-zerg/guessr/internal/generator"
	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/stats"
	"github.com/verte-zerg/guessr/internal/store"
	"github.com/verte-zerg/guessr/internal/wordlist"
)

func newRunner(t *testing.T, cfg model.Config, answers []string) (*Runner, *stats.Aggregator, *store.Store) {
	t.Helper()
	dict, err := wordlist.NewDictionary(cfg.Game.WordLength, wordlist.Letters, answers, []string{"slate", "pious"})
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	st, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	agg := stats.NewAggregator()
	r, err := NewRunner(cfg, dict, generator.NewSeeded(7), st, agg, zerolog.Nop())
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r, agg, st
}

func TestRunnerPlaysAndRecords(t *testing.T) {
	cfg := model.Config{Game: model.GameConfig{WordLength: 5, MaxGuesses: 6}, HistorySize: 5}
	r, agg, st := newRunner(t, cfg, []string{"crane"})
	ctx := context.Background()

	s, err := r.NewGame(ctx)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if s.Target() != "crane" {
		t.Fatalf("expected the only candidate, got %q", s.Target())
	}

	if _, err := r.Check("zzzzz"); !errors.Is(err, wordlist.ErrNotInDictionary) {
		t.Fatalf("expected dictionary rejection, got %v", err)
	}
	if s.GuessesUsed() != 0 {
		t.Fatalf("rejected input consumed a turn")
	}

	for _, raw := range []string{"Slate", "crane"} {
		guess, err := r.Check(raw)
		if err != nil {
			t.Fatalf("check %q: %v", raw, err)
		}
		if _, _, err := s.SubmitGuess(guess); err != nil {
			t.Fatalf("submit %q: %v", guess, err)
		}
	}
	if s.State() != game.Won {
		t.Fatalf("expected won, got %s", s.State())
	}
	rec, err := r.Finish(ctx, s)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if rec.GuessesUsed != 2 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if snap := agg.Snapshot(); snap.GamesPlayed != 1 || snap.GamesWon != 1 {
		t.Fatalf("aggregator not updated: %+v", snap)
	}
	sessions, err := st.ListSessions(ctx, 0)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("expected one journal row, got %v %v", sessions, err)
	}
	report, err := r.Report(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Recent) != 1 || report.MaxGuesses != 6 {
		t.Fatalf("unexpected report: %+v", report)
	}
	guesses, err := r.Guesses(ctx, report.Recent[0].SessionID)
	if err != nil {
		t.Fatalf("guesses: %v", err)
	}
	if strings.Join(guesses, ",") != "slate,crane" {
		t.Fatalf("unexpected journaled guesses: %v", guesses)
	}
}

func TestRunnerFinishRejectsActiveSession(t *testing.T) {
	cfg := model.Config{Game: model.GameConfig{WordLength: 5, MaxGuesses: 6}}
	r, _, _ := newRunner(t, cfg, []string{"crane"})
	s, err := r.NewGame(context.Background())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if _, err := r.Finish(context.Background(), s); err == nil {
		t.Fatalf("expected error finishing an active session")
	}
}

func TestRunnerAvoidsRepeatTargets(t *testing.T) {
	cfg := model.Config{Game: model.GameConfig{WordLength: 5, MaxGuesses: 1}}
	r, _, _ := newRunner(t, cfg, []string{"crane", "slate"})
	ctx := context.Background()
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		s, err := r.NewGame(ctx)
		if err != nil {
			t.Fatalf("new game: %v", err)
		}
		if seen[s.Target()] {
			t.Fatalf("target %q repeated before the pool was used up", s.Target())
		}
		seen[s.Target()] = true
		if _, _, err := s.SubmitGuess("pious"); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := r.Finish(ctx, s); err != nil {
			t.Fatalf("finish: %v", err)
		}
	}
}

func TestRunnerMore(t *testing.T) {
	cfg := model.Config{Game: model.GameConfig{WordLength: 5, MaxGuesses: 6}, Games: 1}
	r, _, _ := newRunner(t, cfg, []string{"crane"})
	if !r.More() {
		t.Fatalf("expected a first game")
	}
	if _, err := r.NewGame(context.Background()); err != nil {
		t.Fatalf("new game: %v", err)
	}
	if r.More() {
		t.Fatalf("expected no more games after the limit")
	}
}

func TestNewRunnerEmptyPool(t *testing.T) {
	dict, err := wordlist.NewDictionary(4, wordlist.Letters, []string{"crane"}, nil)
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	cfg := model.Config{Game: model.GameConfig{WordLength: 4, MaxGuesses: 6}}
	_, err = NewRunner(cfg, dict, generator.New(), nil, stats.NewAggregator(), zerolog.Nop())
	if !errors.Is(err, generator.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}
