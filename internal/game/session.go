package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/guessr/internal/model"
)

// ErrSessionTerminated is returned when a guess arrives after the game ended.
var ErrSessionTerminated = errors.New("session already terminated")

// State is the lifecycle position of a session.
type State int

const (
	// Initialized is the state before a target is bound.
	Initialized State = iota
	// AwaitingGuess means the session accepts guesses.
	AwaitingGuess
	// Won is terminal: the target was guessed.
	Won
	// Lost is terminal: the guesses ran out.
	Lost
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case AwaitingGuess:
		return "awaiting-guess"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no more guesses are accepted.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Turn is one accepted guess and its feedback.
type Turn struct {
	Guess    string
	Feedback Feedback
}

// Result is the end-of-game outcome: Won(GuessesUsed) or Lost(Target).
type Result struct {
	Outcome     model.Outcome
	GuessesUsed int
	Target      string
}

func (r Result) String() string {
	if r.Outcome == model.Won {
		return fmt.Sprintf("Won(%d)", r.GuessesUsed)
	}
	return fmt.Sprintf("Lost(%s)", r.Target)
}

// Session owns one game: its target, turn counter and state.
// A Session is not safe for concurrent use; run one per game.
type Session struct {
	cfg       model.GameConfig
	target    string
	state     State
	turns     []Turn
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

// NewSession binds target to a new session. The returned session is
// already AwaitingGuess.
func NewSession(cfg model.GameConfig, target string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n := len([]rune(target)); n != cfg.WordLength {
		return nil, fmt.Errorf("%w: target %q has %d letters, want %d", ErrLengthMismatch, target, n, cfg.WordLength)
	}
	s := &Session{
		cfg:   cfg,
		state: Initialized,
		turns: make([]Turn, 0, cfg.MaxGuesses),
		now:   time.Now,
	}
	s.bind(target)
	return s, nil
}

func (s *Session) bind(target string) {
	s.target = target
	s.startedAt = s.now()
	s.state = AwaitingGuess
}

// SubmitGuess scores an accepted guess and advances the session.
//
// The guess must already have passed shape and dictionary checks. Calls
// that fail leave the counter and state untouched.
func (s *Session) SubmitGuess(guess string) (Feedback, State, error) {
	if s.state.Terminal() {
		return nil, s.state, ErrSessionTerminated
	}
	fb, err := Evaluate(s.target, guess)
	if err != nil {
		return nil, s.state, err
	}

	s.turns = append(s.turns, Turn{Guess: guess, Feedback: fb})
	switch {
	case guess == s.target:
		s.finish(Won)
	case len(s.turns) == s.cfg.MaxGuesses:
		s.finish(Lost)
	}

	out := make(Feedback, len(fb))
	copy(out, fb)
	return out, s.state, nil
}

func (s *Session) finish(state State) {
	s.state = state
	s.endedAt = s.now()
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Config returns the session configuration.
func (s *Session) Config() model.GameConfig {
	return s.cfg
}

// GuessesUsed returns the number of accepted guesses.
func (s *Session) GuessesUsed() int {
	return len(s.turns)
}

// Remaining returns the number of guesses left.
func (s *Session) Remaining() int {
	return s.cfg.MaxGuesses - len(s.turns)
}

// Target returns the secret word.
func (s *Session) Target() string {
	return s.target
}

// History returns a copy of the accepted turns in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.turns))
	for i, t := range s.turns {
		fb := make(Feedback, len(t.Feedback))
		copy(fb, t.Feedback)
		out[i] = Turn{Guess: t.Guess, Feedback: fb}
	}
	return out
}

// Result returns the outcome once the session is terminal.
func (s *Session) Result() (Result, bool) {
	switch s.state {
	case Won:
		return Result{Outcome: model.Won, GuessesUsed: len(s.turns), Target: s.target}, true
	case Lost:
		return Result{Outcome: model.Lost, GuessesUsed: len(s.turns), Target: s.target}, true
	default:
		return Result{}, false
	}
}

// Record builds the immutable record of a finished session.
func (s *Session) Record() (model.SessionRecord, error) {
	res, ok := s.Result()
	if !ok {
		return model.SessionRecord{}, fmt.Errorf("session is %s, not finished", s.state)
	}
	guesses := make([]string, len(s.turns))
	for i, t := range s.turns {
		guesses[i] = t.Guess
	}
	return model.SessionRecord{
		StartedAt:   s.startedAt,
		EndedAt:     s.endedAt,
		WordLength:  s.cfg.WordLength,
		MaxGuesses:  s.cfg.MaxGuesses,
		GuessesUsed: res.GuessesUsed,
		Outcome:     res.Outcome,
		Target:      s.target,
		Guesses:     guesses,
	}, nil
}
