// Package theme maps letter classifications to display styles.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guessr/internal/game"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// Style is the display metadata for one classification.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	// Symbol marks the classification in plain text output.
	Symbol string
}

// Theme maps each classification, plus untyped and pending cells, to a style.
type Theme struct {
	Name    string
	Marks   map[game.Mark]Style
	Pending Style
	Unused  Style
	Border  string
}

var builtin = map[string]Theme{
	"default": {
		Name: "default",
		Marks: map[game.Mark]Style{
			game.Correct: {Foreground: "#FFFFFF", Background: "#538D4E", Bold: true, Symbol: "="},
			game.Present: {Foreground: "#FFFFFF", Background: "#B59F3B", Bold: true, Symbol: "+"},
			game.Absent:  {Foreground: "#FFFFFF", Background: "#3A3A3C", Bold: true, Symbol: "."},
		},
		Pending: Style{Foreground: "#F0F0F0", Background: "#121213", Bold: true, Symbol: "_"},
		Unused:  Style{Foreground: "#F0F0F0", Background: "#818384", Symbol: " "},
		Border:  "#565758",
	},
	"high-contrast": {
		Name: "high-contrast",
		Marks: map[game.Mark]Style{
			game.Correct: {Foreground: "#FFFFFF", Background: "#F5793A", Bold: true, Symbol: "="},
			game.Present: {Foreground: "#FFFFFF", Background: "#85C0F9", Bold: true, Symbol: "+"},
			game.Absent:  {Foreground: "#FFFFFF", Background: "#3A3A3C", Bold: true, Symbol: "."},
		},
		Pending: Style{Foreground: "#FFFFFF", Background: "#000000", Bold: true, Symbol: "_"},
		Unused:  Style{Foreground: "#000000", Background: "#D3D6DA", Symbol: " "},
		Border:  "#FFFFFF",
	},
	"mono": {
		Name: "mono",
		Marks: map[game.Mark]Style{
			game.Correct: {Bold: true, Symbol: "="},
			game.Present: {Symbol: "+"},
			game.Absent:  {Foreground: "#6E6E6E", Symbol: "."},
		},
		Pending: Style{Bold: true, Symbol: "_"},
		Unused:  Style{Symbol: " "},
		Border:  "#8C8C8C",
	},
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named built-in theme.
func Lookup(name string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	t, ok := builtin[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	marks := make(map[game.Mark]Style, len(t.Marks))
	for k, v := range t.Marks {
		marks[k] = v
	}
	t.Marks = marks
	return t, nil
}

// Override holds optional colour overrides, typically from the config file.
type Override struct {
	Correct *string
	Present *string
	Absent  *string
}

// WithOverride returns t with the given background colours replaced.
func (t Theme) WithOverride(o Override) Theme {
	marks := make(map[game.Mark]Style, len(t.Marks))
	for k, v := range t.Marks {
		marks[k] = v
	}
	apply := func(mark game.Mark, color *string) {
		if color == nil {
			return
		}
		s := marks[mark]
		s.Background = *color
		marks[mark] = s
	}
	apply(game.Correct, o.Correct)
	apply(game.Present, o.Present)
	apply(game.Absent, o.Absent)
	t.Marks = marks
	return t
}

// Lip converts a Style to a lipgloss style.
func (s Style) Lip() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold)
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}

// MarkStyle returns the style for a classification.
func (t Theme) MarkStyle(m game.Mark) Style {
	return t.Marks[m]
}
