package theme

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guessr/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

func tile(style lipgloss.Style, r rune) string {
	return style.Render(" " + string(unicode.ToUpper(r)) + " ")
}

// Row renders a scored guess as coloured tiles.
func (t Theme) Row(guess string, fb game.Feedback) string {
	runes := []rune(guess)
	tiles := make([]string, len(runes))
	for i, r := range runes {
		mark := game.Absent
		if i < len(fb) {
			mark = fb[i]
		}
		tiles[i] = tile(t.MarkStyle(mark).Lip(), r)
	}
	return strings.Join(tiles, " ")
}

// InputRow renders the guess being typed, padded to length with blanks.
func (t Theme) InputRow(input string, length int) string {
	runes := []rune(input)
	style := t.Pending.Lip()
	tiles := make([]string, length)
	for i := 0; i < length; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		tiles[i] = tile(style, r)
	}
	return strings.Join(tiles, " ")
}

// EmptyRow renders an unused grid row.
func (t Theme) EmptyRow(length int) string {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border))
	tiles := make([]string, length)
	for i := range tiles {
		tiles[i] = border.Render("[ ]")
	}
	return strings.Join(tiles, " ")
}

// PlainRow renders a scored guess without colour: the letters on one line
// and the classification symbols under them.
func (t Theme) PlainRow(guess string, fb game.Feedback) string {
	runes := []rune(guess)
	letters := make([]string, len(runes))
	symbols := make([]string, len(runes))
	for i, r := range runes {
		letters[i] = string(unicode.ToUpper(r))
		mark := game.Absent
		if i < len(fb) {
			mark = fb[i]
		}
		symbols[i] = t.MarkStyle(mark).Symbol
	}
	return strings.Join(letters, " ") + "\n" + strings.Join(symbols, " ")
}

// Legend explains the plain text symbols.
func (t Theme) Legend() string {
	parts := make([]string, 0, 3)
	for _, m := range []game.Mark{game.Correct, game.Present, game.Absent} {
		parts = append(parts, fmt.Sprintf("%s %s", t.MarkStyle(m).Symbol, strings.ToLower(m.String())))
	}
	return strings.Join(parts, "  ")
}

// Hint summarizes a feedback row for practice mode.
func Hint(fb game.Feedback) string {
	return fmt.Sprintf("%d correct, %d present", fb.Count(game.Correct), fb.Count(game.Present))
}

// LetterStates returns the best classification seen for each guessed letter.
func LetterStates(turns []game.Turn) map[rune]game.Mark {
	states := map[rune]game.Mark{}
	for _, turn := range turns {
		for i, r := range []rune(turn.Guess) {
			if i >= len(turn.Feedback) {
				break
			}
			mark := turn.Feedback[i]
			if prev, ok := states[r]; !ok || mark > prev {
				states[r] = mark
			}
		}
	}
	return states
}

// Keyboard renders a QWERTY layout coloured by letter states.
func (t Theme) Keyboard(states map[rune]game.Mark) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			style := t.Unused.Lip()
			if mark, ok := states[r]; ok {
				style = t.MarkStyle(mark).Lip()
			}
			keys = append(keys, style.Render(string(unicode.ToUpper(r))))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// PlainKeyboard renders the keyboard summary as text, with absent letters
// hidden and present/correct letters tagged by symbol.
func (t Theme) PlainKeyboard(states map[rune]game.Mark) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		var b strings.Builder
		for i, r := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			mark, ok := states[r]
			switch {
			case !ok:
				b.WriteRune(unicode.ToUpper(r))
			case mark == game.Absent:
				b.WriteString(t.MarkStyle(mark).Symbol)
			default:
				b.WriteRune(unicode.ToUpper(r))
				b.WriteString(t.MarkStyle(mark).Symbol)
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
