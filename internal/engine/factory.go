package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

// DefaultRoundsToWin is the win threshold used when none is given.
const DefaultRoundsToWin = 3

// Option configures a Session built by NewGame.
type Option func(*Session)

func WithRoundsToWin(n int) Option {
	return func(s *Session) { s.roundsToWin = n }
}

func WithPolicy(p Policy) Option {
	return func(s *Session) { s.policy = p }
}

func WithDrawRule(d DrawRule) Option {
	return func(s *Session) { s.draws = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithSessionID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewGame creates a session for rs. Without options it plays first to
// DefaultRoundsToWin against a RandomPolicy.
func NewGame(rs rules.RuleSet, opts ...Option) (*Session, error) {
	if rs == nil {
		return nil, fmt.Errorf("new game: no rule set")
	}

	s := &Session{
		rules:       rs,
		roundsToWin: DefaultRoundsToWin,
		tracker:     models.NewFrequencyTracker(),
		history:     models.NewHistoryLog(),
		phase:       PhaseAwaitingRound,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.roundsToWin < 1 {
		return nil, fmt.Errorf("new game: rounds to win must be at least 1, got %d", s.roundsToWin)
	}
	if s.policy == nil {
		s.policy = NewRandomPolicy(NewRand(rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s, nil
}
