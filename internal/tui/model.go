// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessr/internal/game"
	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/play"
	"github.com/verte-zerg/guessr/internal/stats"
	"github.com/verte-zerg/guessr/internal/theme"
)

type phase int

const (
	phasePlaying phase = iota
	phaseFinished
)

// Model implements the Bubble Tea game UI.
type Model struct {
	runner   *play.Runner
	theme    theme.Theme
	practice bool
	log      zerolog.Logger

	width  int
	height int

	session *game.Session
	input   textinput.Model
	message string
	phase   phase
	err     error

	report   stats.Report
	history  table.Model
	selected selectedGame
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	wonStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#538D4E"))
	lostStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a game TUI model and starts the first game.
func NewModel(runner *play.Runner, th theme.Theme, practice bool, log zerolog.Logger) (*Model, error) {
	m := &Model{
		runner:   runner,
		theme:    th,
		practice: practice,
		log:      log,
		input:    newGuessInput(runner.Config().Game.WordLength),
		history:  newHistoryTable(),
	}
	if err := m.startGame(); err != nil {
		return nil, err
	}
	return m, nil
}

func newGuessInput(length int) textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = length
	input.Placeholder = strings.Repeat("_", length)
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()
	return input
}

// Err returns the error that stopped the UI, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.SetWidth(minInt(msg.Width, historyTableWidth))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if m.phase == phaseFinished {
			return m.updateFinished(msg)
		}
		if msg.Type == tea.KeyEnter {
			m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "n":
		if !m.runner.More() {
			return m, tea.Quit
		}
		if err := m.startGame(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	m.loadSelectedGuesses()
	return m, cmd
}

func (m *Model) startGame() error {
	s, err := m.runner.NewGame(context.Background())
	if err != nil {
		return err
	}
	m.session = s
	m.phase = phasePlaying
	m.message = ""
	m.input.Reset()
	m.input.Focus()
	return nil
}

// submit runs the upstream checks; only an accepted guess reaches the session.
func (m *Model) submit() {
	guess, err := m.runner.Check(m.input.Value())
	if err != nil {
		m.message = err.Error()
		return
	}
	_, state, err := m.session.SubmitGuess(guess)
	if err != nil {
		m.message = err.Error()
		m.log.Error().Err(err).Str("guess", guess).Msg("guess rejected by session")
		return
	}
	m.message = ""
	m.input.Reset()
	if state.Terminal() {
		m.finishGame()
	}
}

func (m *Model) finishGame() {
	ctx := context.Background()
	if _, err := m.runner.Finish(ctx, m.session); err != nil {
		m.message = err.Error()
		return
	}
	m.phase = phaseFinished
	m.input.Blur()
	report, err := m.runner.Report(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to build stats report")
		report = stats.Report{Snapshot: stats.Snapshot{}, MaxGuesses: m.session.Config().MaxGuesses}
	}
	m.report = report
	m.history.SetRows(historyRows(report.Recent))
	m.history.GotoTop()
	m.loadSelectedGuesses()
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderHeader(), m.renderGrid()}
	if m.phase == phasePlaying {
		sections = append(sections, m.input.View())
		if m.message != "" {
			sections = append(sections, messageStyle.Render(m.message))
		}
		if hint := m.renderHint(); hint != "" {
			sections = append(sections, hint)
		}
		sections = append(sections, "", m.theme.Keyboard(theme.LetterStates(m.session.History())))
	} else {
		sections = append(sections, m.renderResult(), "", m.renderStats())
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderHeader() string {
	cfg := m.session.Config()
	return titleStyle.Render(fmt.Sprintf("Game %d · %d letters · %d tries", m.runner.Started(), cfg.WordLength, cfg.MaxGuesses))
}

func (m *Model) renderGrid() string {
	cfg := m.session.Config()
	turns := m.session.History()
	rows := make([]string, 0, cfg.MaxGuesses)
	for _, turn := range turns {
		rows = append(rows, m.theme.Row(turn.Guess, turn.Feedback))
	}
	if m.phase == phasePlaying && len(rows) < cfg.MaxGuesses {
		rows = append(rows, m.theme.InputRow(m.input.Value(), cfg.WordLength))
	}
	for len(rows) < cfg.MaxGuesses {
		rows = append(rows, m.theme.EmptyRow(cfg.WordLength))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) renderHint() string {
	if !m.practice {
		return ""
	}
	turns := m.session.History()
	if len(turns) == 0 {
		return ""
	}
	return hintStyle.Render("hint: " + theme.Hint(turns[len(turns)-1].Feedback))
}

func (m *Model) renderResult() string {
	res, ok := m.session.Result()
	if !ok {
		return ""
	}
	if res.Outcome == model.Won {
		return wonStyle.Render(fmt.Sprintf("Solved in %d/%d", res.GuessesUsed, m.session.Config().MaxGuesses))
	}
	return lostStyle.Render("The word was " + strings.ToUpper(res.Target))
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.phase == phasePlaying {
		segments = append(segments, fmt.Sprintf("%d left", m.session.Remaining()), "enter submit", "esc quit")
	} else {
		next := "enter next game"
		if !m.runner.More() {
			next = "enter exit"
		}
		segments = append(segments, next, "↑/↓ history", "q quit")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
