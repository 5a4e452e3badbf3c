// Package plain runs the game over line-oriented input and output, for pipes
// and terminals without a full-screen UI.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/guessr/internal/game"
	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/play"
	"github.com/verte-zerg/guessr/internal/theme"
)

const quitCommand = ":q"

// Options configures Run.
type Options struct {
	Theme    theme.Theme
	Practice bool
	// Width is the output width used for the stats bars; 0 picks a default.
	Width int
}

// Run plays games until the runner has no more, input ends, or the user quits.
func Run(ctx context.Context, r *play.Runner, in io.Reader, out io.Writer, opts Options) error {
	w := &writer{out: out}
	scanner := bufio.NewScanner(in)
	cfg := r.Config().Game

	for r.More() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := r.NewGame(ctx)
		if err != nil {
			return err
		}
		w.printf("Game %d: guess the %d-letter word in %d tries. %s to quit.\n", r.Started(), cfg.WordLength, cfg.MaxGuesses, quitCommand)
		w.println(opts.Theme.Legend())

		quit, err := playOne(ctx, r, s, scanner, w, opts)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		if _, err := r.Finish(ctx, s); err != nil {
			return err
		}
		res, _ := s.Result()
		if res.Outcome == model.Won {
			w.printf("Solved in %d/%d.\n\n", res.GuessesUsed, cfg.MaxGuesses)
		} else {
			w.printf("Out of guesses. The word was %s.\n\n", strings.ToUpper(res.Target))
		}
		report, err := r.Report(ctx)
		if err != nil {
			return err
		}
		if n := len(report.Recent); n > 0 {
			guesses, err := r.Guesses(ctx, report.Recent[n-1].SessionID)
			if err != nil {
				return err
			}
			w.printf("Guesses: %s\n\n", strings.ToUpper(strings.Join(guesses, " ")))
		}
		var b strings.Builder
		if err := report.Render(&b, opts.Width); err != nil {
			return err
		}
		w.printf("%s", b.String())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return w.err
}

// playOne drives a session to a terminal state. It reports quit when the
// input ended or the user asked to stop before the game was over.
func playOne(ctx context.Context, r *play.Runner, s *game.Session, scanner *bufio.Scanner, w *writer, opts Options) (bool, error) {
	for !s.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		w.printf("[%d/%d] > ", s.GuessesUsed()+1, s.Config().MaxGuesses)
		if !scanner.Scan() {
			w.println("")
			return true, nil
		}
		raw := scanner.Text()
		if strings.TrimSpace(raw) == quitCommand {
			w.printf("The word was %s.\n", strings.ToUpper(s.Target()))
			return true, nil
		}
		guess, err := r.Check(raw)
		if err != nil {
			w.printf("rejected: %v\n", err)
			continue
		}
		fb, _, err := s.SubmitGuess(guess)
		if err != nil {
			if errors.Is(err, game.ErrSessionTerminated) {
				break
			}
			return true, err
		}
		w.println(opts.Theme.PlainRow(guess, fb))
		if opts.Practice {
			w.printf("hint: %s\n", theme.Hint(fb))
			w.println(opts.Theme.PlainKeyboard(theme.LetterStates(s.History())))
		}
	}
	return false, nil
}

type writer struct {
	out io.Writer
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *writer) println(s string) {
	w.printf("%s\n", s)
}
