package theme

import (
	"strings"
	"testing"

	"github.com/verte-zerg/guessr/internal/game"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		th, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		for _, m := range []game.Mark{game.Correct, game.Present, game.Absent} {
			if th.MarkStyle(m).Symbol == "" {
				t.Fatalf("theme %q has no symbol for %s", name, m)
			}
		}
	}
	if _, err := Lookup("neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	th, err := Lookup("")
	if err != nil || th.Name != DefaultName {
		t.Fatalf("expected default theme, got %q %v", th.Name, err)
	}
}

func TestWithOverrideDoesNotTouchBuiltin(t *testing.T) {
	th, err := Lookup("default")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	color := "#123456"
	custom := th.WithOverride(Override{Correct: &color})
	if custom.MarkStyle(game.Correct).Background != color {
		t.Fatalf("override not applied: %+v", custom.MarkStyle(game.Correct))
	}
	again, _ := Lookup("default")
	if again.MarkStyle(game.Correct).Background == color {
		t.Fatalf("override leaked into built-in theme")
	}
	if custom.MarkStyle(game.Present) != th.MarkStyle(game.Present) {
		t.Fatalf("unrelated mark changed")
	}
}

func TestPlainRow(t *testing.T) {
	th, _ := Lookup("mono")
	fb := game.Feedback{game.Correct, game.Correct, game.Correct, game.Present, game.Absent}
	got := th.PlainRow("words", fb)
	want := "W O R D S\n= = = + ."
	if got != want {
		t.Fatalf("unexpected plain row:\n%s\nwant:\n%s", got, want)
	}
}

func TestHint(t *testing.T) {
	fb := game.Feedback{game.Present, game.Absent, game.Absent, game.Present, game.Present}
	if got := Hint(fb); got != "0 correct, 3 present" {
		t.Fatalf("unexpected hint: %q", got)
	}
}

func TestLetterStatesKeepsBest(t *testing.T) {
	turns := []game.Turn{
		{Guess: "erase", Feedback: game.Feedback{game.Present, game.Absent, game.Absent, game.Present, game.Present}},
		{Guess: "speed", Feedback: game.Feedback{game.Correct, game.Correct, game.Correct, game.Correct, game.Correct}},
	}
	states := LetterStates(turns)
	if states['e'] != game.Correct {
		t.Fatalf("expected e to be correct, got %s", states['e'])
	}
	if states['r'] != game.Absent {
		t.Fatalf("expected r to be absent, got %s", states['r'])
	}
	if _, ok := states['z']; ok {
		t.Fatalf("unguessed letter should have no state")
	}
}

func TestPlainKeyboard(t *testing.T) {
	th, _ := Lookup("mono")
	states := map[rune]game.Mark{'q': game.Absent, 'w': game.Present, 'a': game.Correct}
	lines := strings.Split(th.PlainKeyboard(states), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 keyboard rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], ". W+ E") {
		t.Fatalf("unexpected top row: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "A= S") {
		t.Fatalf("unexpected middle row: %q", lines[1])
	}
}

func TestRowRendersEveryLetter(t *testing.T) {
	th, _ := Lookup("default")
	out := th.Row("crane", game.Feedback{game.Correct, game.Absent, game.Absent, game.Absent, game.Absent})
	for _, r := range "CRANE" {
		if !strings.ContainsRune(out, r) {
			t.Fatalf("row missing %q: %q", r, out)
		}
	}
}
