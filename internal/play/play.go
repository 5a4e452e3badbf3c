// Package play wires target selection, sessions and statistics together for
// the interactive front ends.
package play

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessr/internal/game"
	"github.com/verte-zerg/guessr/internal/generator"
	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/stats"
	"github.com/verte-zerg/guessr/internal/store"
	"github.com/verte-zerg/guessr/internal/wordlist"
)

// Runner starts games and records their outcomes.
type Runner struct {
	cfg   model.Config
	dict  *wordlist.Dictionary
	gen   *generator.Generator
	store *store.Store
	agg   *stats.Aggregator
	log   zerolog.Logger
	now   func() time.Time

	started int
}

// NewRunner builds a Runner. The dictionary length must match cfg.Game.WordLength.
func NewRunner(cfg model.Config, dict *wordlist.Dictionary, gen *generator.Generator, st *store.Store, agg *stats.Aggregator, log zerolog.Logger) (*Runner, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	if dict.Length() != cfg.Game.WordLength {
		return nil, fmt.Errorf("dictionary holds %d-letter words, game needs %d", dict.Length(), cfg.Game.WordLength)
	}
	if len(dict.Candidates()) == 0 {
		return nil, fmt.Errorf("no %d-letter target words: %w", cfg.Game.WordLength, generator.ErrEmptyPool)
	}
	return &Runner{
		cfg:   cfg,
		dict:  dict,
		gen:   gen,
		store: st,
		agg:   agg,
		log:   log,
		now:   time.Now,
	}, nil
}

// Config returns the resolved configuration.
func (r *Runner) Config() model.Config {
	return r.cfg
}

// Started returns how many games have been started.
func (r *Runner) Started() int {
	return r.started
}

// More reports whether another game may be started.
func (r *Runner) More() bool {
	if r.cfg.Daily {
		return r.started == 0
	}
	return r.cfg.Games <= 0 || r.started < r.cfg.Games
}

// NewGame picks a target and returns a fresh session.
func (r *Runner) NewGame(ctx context.Context) (*game.Session, error) {
	target, err := r.pickTarget(ctx)
	if err != nil {
		return nil, err
	}
	s, err := game.NewSession(r.cfg.Game, target)
	if err != nil {
		return nil, err
	}
	r.started++
	r.log.Debug().Int("game", r.started).Int("length", r.cfg.Game.WordLength).Msg("game started")
	return s, nil
}

func (r *Runner) pickTarget(ctx context.Context) (string, error) {
	candidates := r.dict.Candidates()
	if r.cfg.Daily {
		return generator.Daily(candidates, r.now())
	}
	var played map[string]struct{}
	if r.store != nil {
		var err error
		played, err = r.store.PlayedTargets(ctx, r.cfg.Game.WordLength)
		if err != nil {
			r.log.Warn().Err(err).Msg("failed to load played targets")
		}
	}
	return r.gen.PickFresh(candidates, played)
}

// Check runs the upstream shape and dictionary checks on raw input.
func (r *Runner) Check(raw string) (string, error) {
	return r.dict.Check(raw)
}

// Finish records a terminal session into the aggregator and the journal.
func (r *Runner) Finish(ctx context.Context, s *game.Session) (model.SessionRecord, error) {
	rec, err := s.Record()
	if err != nil {
		return model.SessionRecord{}, err
	}
	if err := r.agg.Record(rec); err != nil {
		return model.SessionRecord{}, err
	}
	if r.store != nil {
		if _, err := r.store.InsertSession(ctx, rec); err != nil {
			r.log.Warn().Err(err).Msg("failed to save session")
		}
	}
	r.log.Info().
		Str("outcome", rec.Outcome.String()).
		Int("guesses", rec.GuessesUsed).
		Dur("duration", rec.EndedAt.Sub(rec.StartedAt)).
		Msg("game finished")
	return rec, nil
}

// Report builds the stats report for display.
func (r *Runner) Report(ctx context.Context) (stats.Report, error) {
	return stats.BuildReport(ctx, r.store, r.agg, r.cfg.HistorySize, r.cfg.Game.MaxGuesses)
}

// Guesses returns the journaled guesses of a finished game in turn order.
func (r *Runner) Guesses(ctx context.Context, sessionID int64) ([]string, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.ListGuesses(ctx, sessionID)
}
