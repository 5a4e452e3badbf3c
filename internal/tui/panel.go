package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/stats"
)

const (
	historyTableWidth  = 44
	historyTableHeight = 6
	distributionWidth  = 40
	cardsPerRow        = 3
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	sectionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

var historyColumns = []table.Column{
	{Title: stats.HistoryHeaders[0], Width: 4},
	{Title: stats.HistoryHeaders[1], Width: 10},
	{Title: stats.HistoryHeaders[2], Width: 6},
	{Title: stats.HistoryHeaders[3], Width: 8},
	{Title: stats.HistoryHeaders[4], Width: 8},
}

// selectedGame holds the journaled guesses of the highlighted history row.
type selectedGame struct {
	id      int64
	guesses []string
}

func newHistoryTable() table.Model {
	t := table.New(
		table.WithColumns(historyColumns),
		table.WithHeight(historyTableHeight),
		table.WithFocused(true),
	)
	t.SetWidth(historyTableWidth)
	t.SetStyles(historyTableStyles())
	return t
}

func historyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func historyRows(sessions []model.SessionSummary) []table.Row {
	cells := stats.HistoryRows(sessions)
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, table.Row(c))
	}
	return rows
}

func (m *Model) renderStats() string {
	snap := m.report.Snapshot
	if snap.GamesPlayed == 0 {
		return "No games played yet."
	}
	parts := []string{renderSummaryCards(snap, m.width)}
	if lines := stats.DistributionLines(snap, m.report.MaxGuesses, distributionWidth); len(lines) > 0 {
		parts = append(parts, "", sectionStyle.Render("Guess Distribution"), strings.Join(lines, "\n"))
	}
	if len(m.report.Recent) > 0 {
		parts = append(parts, "", sectionStyle.Render("Recent Games"), tableMutedStyle.Render(m.history.View()))
		if len(m.selected.guesses) > 0 {
			line := fmt.Sprintf("#%d: %s", m.selected.id, strings.ToUpper(strings.Join(m.selected.guesses, " ")))
			parts = append(parts, cardTitleStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSummaryCards(snap stats.Snapshot, width int) string {
	avg := "n/a"
	if mean, err := snap.AverageWinningGuesses(); err == nil {
		avg = fmt.Sprintf("%.2f", mean)
	}
	cards := []string{
		metricCard("Played", fmt.Sprintf("%d", snap.GamesPlayed)),
		metricCard("Win %", stats.FormatRate(snap.WinRate())),
		metricCard("Avg Guesses", avg),
		metricCard("Streak", fmt.Sprintf("%d", snap.CurrentStreak)),
		metricCard("Max Streak", fmt.Sprintf("%d", snap.MaxStreak)),
	}
	if width > 0 && width < 60 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[:cardsPerRow]...)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[cardsPerRow:]...)
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func (m *Model) loadSelectedGuesses() {
	row := m.history.SelectedRow()
	if len(row) == 0 {
		m.selected = selectedGame{}
		return
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		m.selected = selectedGame{}
		return
	}
	if id == m.selected.id && m.selected.guesses != nil {
		return
	}
	guesses, err := m.runner.Guesses(context.Background(), id)
	if err != nil {
		m.log.Warn().Err(err).Int64("session", id).Msg("failed to load guesses")
		m.selected = selectedGame{}
		return
	}
	m.selected = selectedGame{id: id, guesses: guesses}
}
