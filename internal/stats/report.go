// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/store"
)

const (
	barChar        = '#'
	minBarWidth    = 10
	defaultBarSpan = 30
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Snapshot   Snapshot
	Recent     []model.SessionSummary
	MaxGuesses int
}

// BuildReport combines the live counters with the most recent journal rows.
func BuildReport(ctx context.Context, st *store.Store, agg *Aggregator, last, maxGuesses int) (Report, error) {
	report := Report{Snapshot: agg.Snapshot(), MaxGuesses: maxGuesses}
	if st == nil {
		return report, nil
	}
	recent, err := st.ListSessions(ctx, last)
	if err != nil {
		return Report{}, err
	}
	report.Recent = recent
	return report, nil
}

// Render writes the summary, distribution and history sections.
func (r Report) Render(w io.Writer, width int) error {
	if err := RenderSummary(w, r.Snapshot); err != nil {
		return err
	}
	if err := RenderDistribution(w, r.Snapshot, r.MaxGuesses, width); err != nil {
		return err
	}
	return RenderHistory(w, r.Recent)
}

// SummaryLines formats the headline counters.
func SummaryLines(snap Snapshot) []string {
	winRate := FormatRate(snap.WinRate())
	avg := "n/a"
	if mean, err := snap.AverageWinningGuesses(); err == nil {
		avg = fmt.Sprintf("%.2f", mean)
	}
	return []string{
		fmt.Sprintf("Played: %d", snap.GamesPlayed),
		fmt.Sprintf("Won: %d", snap.GamesWon),
		fmt.Sprintf("Win rate: %s", winRate),
		fmt.Sprintf("Avg guesses (wins): %s", avg),
		fmt.Sprintf("Streak: %d (max %d)", snap.CurrentStreak, snap.MaxStreak),
	}
}

// RenderSummary prints the headline counters.
func RenderSummary(w io.Writer, snap Snapshot) error {
	if snap.GamesPlayed == 0 {
		_, err := fmt.Fprintln(w, "No games played yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range SummaryLines(snap) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// DistributionLines renders one bar per guess count from 1 to maxGuesses.
func DistributionLines(snap Snapshot, maxGuesses, width int) []string {
	if maxGuesses <= 0 {
		for k := range snap.Distribution {
			if k > maxGuesses {
				maxGuesses = k
			}
		}
	}
	if maxGuesses <= 0 {
		return nil
	}
	peak := 0
	for _, n := range snap.Distribution {
		if n > peak {
			peak = n
		}
	}
	label := len(fmt.Sprint(maxGuesses))
	barSpan := width - label - 8
	if width <= 0 {
		barSpan = defaultBarSpan
	}
	if barSpan < minBarWidth {
		barSpan = minBarWidth
	}

	lines := make([]string, 0, maxGuesses)
	for g := 1; g <= maxGuesses; g++ {
		n := snap.Distribution[g]
		bar := 0
		if peak > 0 {
			bar = n * barSpan / peak
		}
		if n > 0 && bar == 0 {
			bar = 1
		}
		lines = append(lines, fmt.Sprintf("%*d %s %d", label, g, strings.Repeat(string(barChar), bar), n))
	}
	return lines
}

// RenderDistribution prints the guess distribution of won games.
func RenderDistribution(w io.Writer, snap Snapshot, maxGuesses, width int) error {
	lines := DistributionLines(snap, maxGuesses, width)
	if len(lines) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// HistoryRows converts journal rows into table cells, newest first.
func HistoryRows(sessions []model.SessionSummary) [][]string {
	sorted := make([]model.SessionSummary, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SessionID > sorted[j].SessionID
	})
	rows := make([][]string, 0, len(sorted))
	for _, s := range sorted {
		guesses := fmt.Sprintf("%d/%d", s.GuessesUsed, s.MaxGuesses)
		if s.Outcome != model.Won {
			guesses = fmt.Sprintf("X/%d", s.MaxGuesses)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.SessionID),
			strings.ToUpper(s.Target),
			s.Outcome.String(),
			guesses,
			fmt.Sprintf("%.1fs", float64(s.DurationMs)/1000),
		})
	}
	return rows
}

// HistoryHeaders are the column titles for HistoryRows.
var HistoryHeaders = []string{"#", "Word", "Result", "Guesses", "Time"}

// RenderHistory prints the recent games table.
func RenderHistory(w io.Writer, sessions []model.SessionSummary) error {
	if len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recent Games"); err != nil {
		return err
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true}
	for _, line := range formatTable(HistoryHeaders, HistoryRows(sessions), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// FormatRate renders a ratio for display, or "n/a" when it is undefined.
func FormatRate(v float64, err error) string {
	if errors.Is(err, ErrNotApplicable) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", v*100)
}
