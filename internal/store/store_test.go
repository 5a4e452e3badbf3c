package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/guessr/internal/model"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func record(target string, outcome model.Outcome, guesses ...string) model.SessionRecord {
	start := time.Unix(1700000000, 0).UTC()
	return model.SessionRecord{
		StartedAt:   start,
		EndedAt:     start.Add(42 * time.Second),
		WordLength:  len(target),
		MaxGuesses:  6,
		GuessesUsed: len(guesses),
		Outcome:     outcome,
		Target:      target,
		Guesses:     guesses,
	}
}

func TestInsertAndListSessions(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()

	var ids []int64
	for _, rec := range []model.SessionRecord{
		record("crane", model.Won, "slate", "crane"),
		record("pious", model.Lost, "a", "b", "c", "d", "e", "f"),
		record("dwarf", model.Won, "dwarf"),
	} {
		id, err := st.InsertSession(ctx, rec)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}

	recent, err := st.ListSessions(ctx, 2)
	if err != nil {
		t.Fatalf("list recent sessions: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != ids[1] || recent[1].SessionID != ids[2] {
		t.Fatalf("unexpected recent sessions: %+v", recent)
	}
	if recent[0].Outcome != model.Lost || recent[0].Target != "pious" {
		t.Fatalf("unexpected lost row: %+v", recent[0])
	}
	if recent[1].DurationMs != 42000 {
		t.Fatalf("expected 42000ms duration, got %d", recent[1].DurationMs)
	}

	guesses, err := st.ListGuesses(ctx, ids[0])
	if err != nil {
		t.Fatalf("list guesses: %v", err)
	}
	if len(guesses) != 2 || guesses[0] != "slate" || guesses[1] != "crane" {
		t.Fatalf("unexpected guesses: %v", guesses)
	}
}

func TestPlayedTargets(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()
	for _, rec := range []model.SessionRecord{
		record("crane", model.Won, "crane"),
		record("crane", model.Won, "crane"),
		record("cat", model.Lost, "dog"),
	} {
		if _, err := st.InsertSession(ctx, rec); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	played, err := st.PlayedTargets(ctx, 5)
	if err != nil {
		t.Fatalf("played targets: %v", err)
	}
	if len(played) != 1 {
		t.Fatalf("expected one five-letter target, got %v", played)
	}
	if _, ok := played["crane"]; !ok {
		t.Fatalf("expected crane in %v", played)
	}
}

func TestOpenFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "guessr.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	if _, err := st.InsertSession(context.Background(), record("crane", model.Won, "crane")); err != nil {
		t.Fatalf("insert session: %v", err)
	}
}
