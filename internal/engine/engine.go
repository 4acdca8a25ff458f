package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrWrongPhase  = errors.New("not allowed in the current phase")
	ErrInputClosed = errors.New("input closed before the game finished")
)

// Phase is where a session sits in its round loop.
type Phase int

const (
	PhaseAwaitingRound Phase = iota
	PhaseRoundResolved
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingRound:
		return "awaiting round"
	case PhaseRoundResolved:
		return "round resolved"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// DrawRule decides who scores a drawn round.
type DrawRule int

const (
	// DrawHouse gives drawn rounds to the computer.
	DrawHouse DrawRule = iota
	// DrawReplay scores nothing for a drawn round.
	DrawReplay
)

func ParseDrawRule(s string) (DrawRule, error) {
	switch strings.ToLower(s) {
	case "house", "":
		return DrawHouse, nil
	case "replay":
		return DrawReplay, nil
	}
	return DrawHouse, fmt.Errorf("unknown draw rule %q", s)
}

// Decision is the effect of a stick-or-twist answer.
type Decision int

const (
	Twist Decision = iota
	Stick
	// StickRefused means the player asked to stick without being ahead.
	StickRefused
)

// Round describes one resolved round.
type Round struct {
	Number   int
	Player   rules.Choice
	Computer rules.Choice
	Outcome  rules.Outcome
	Entry    models.HistoryEntry
	Scores   models.Scores
	GameOver bool
}

// Report is the end-of-game summary.
type Report struct {
	SessionID   string
	RuleSet     string
	Player      string
	Scores      models.Scores
	PlayerWon   bool
	Stuck       bool
	Rounds      int
	Frequencies []models.Frequency
	History     []models.HistoryEntry
}

// Session is one game: first to roundsToWin points against the computer.
// It is not safe for concurrent use.
type Session struct {
	id          string
	player      string
	rules       rules.RuleSet
	policy      Policy
	draws       DrawRule
	roundsToWin int
	logger      *slog.Logger

	tracker *models.FrequencyTracker
	history *models.HistoryLog
	scores  models.Scores
	rounds  int
	phase   Phase
	stuck   bool
}

// Start names the player and clears the frequency counts. It must be called
// before the first round.
func (s *Session) Start(playerName string) error {
	if s.rounds > 0 || s.phase != PhaseAwaitingRound {
		return fmt.Errorf("start: %w (%s)", ErrWrongPhase, s.phase)
	}
	s.player = strings.TrimSpace(playerName)
	if s.player == "" {
		s.player = "Player"
	}
	s.tracker.Reset()
	s.logger.Info("session started", "session", s.id, "rules", s.rules.Name(), "player", s.player, "rounds_to_win", s.roundsToWin)
	return nil
}

// Round plays the player's input against the computer. An invalid input
// returns rules.ErrInvalidChoice and leaves the session untouched.
func (s *Session) Round(input string) (Round, error) {
	switch s.phase {
	case PhaseGameOver:
		return Round{}, ErrGameOver
	case PhaseRoundResolved:
		return Round{}, fmt.Errorf("round: %w (%s)", ErrWrongPhase, s.phase)
	}

	choice := Normalize(input)
	if !s.rules.IsValid(choice) {
		return Round{}, fmt.Errorf("%w: %q", rules.ErrInvalidChoice, input)
	}

	computer := s.policy.Next(s.rules, s.tracker)
	if !s.rules.IsValid(computer) {
		return Round{}, fmt.Errorf("rule set %q: policy chose %q: %w", s.rules.Name(), computer, rules.ErrUndefinedOutcome)
	}
	outcome, err := s.rules.Resolve(choice, computer)
	if err != nil {
		return Round{}, fmt.Errorf("rule set %q: %w", s.rules.Name(), err)
	}

	entry := s.entryFor(outcome)
	s.history.Append(entry)
	s.tracker.Record(choice)
	s.rounds++

	switch {
	case outcome == rules.PlayerWins:
		s.scores.Player++
	case outcome == rules.ComputerWins, s.draws == DrawHouse:
		s.scores.Computer++
	}

	over := s.scores.Player >= s.roundsToWin || s.scores.Computer >= s.roundsToWin
	if over {
		s.phase = PhaseGameOver
	} else {
		s.phase = PhaseRoundResolved
	}

	s.logger.Debug("round resolved",
		"session", s.id, "round", s.rounds,
		"player", choice, "computer", computer, "outcome", outcome,
		"player_score", s.scores.Player, "computer_score", s.scores.Computer)

	return Round{
		Number:   s.rounds,
		Player:   choice,
		Computer: computer,
		Outcome:  outcome,
		Entry:    entry,
		Scores:   s.scores,
		GameOver: over,
	}, nil
}

// Continue applies a stick-or-twist answer after a round that did not end the game.
// Sticking ends the game only while the player is strictly ahead.
func (s *Session) Continue(answer string) (Decision, error) {
	switch s.phase {
	case PhaseGameOver:
		return Twist, ErrGameOver
	case PhaseAwaitingRound:
		return Twist, fmt.Errorf("continue: %w (%s)", ErrWrongPhase, s.phase)
	}

	switch Normalize(answer) {
	case "s", "stick":
		if s.scores.Player > s.scores.Computer {
			s.stuck = true
			s.phase = PhaseGameOver
			return Stick, nil
		}
		s.phase = PhaseAwaitingRound
		return StickRefused, nil
	}
	s.phase = PhaseAwaitingRound
	return Twist, nil
}

// Finish persists the history to sink and returns the final report. The
// report is filled in even when persisting fails.
func (s *Session) Finish(sink models.Sink) (Report, error) {
	if s.phase != PhaseGameOver {
		return Report{}, fmt.Errorf("finish: %w (%s)", ErrWrongPhase, s.phase)
	}

	report := Report{
		SessionID:   s.id,
		RuleSet:     s.rules.Name(),
		Player:      s.player,
		Scores:      s.scores,
		PlayerWon:   s.scores.Player > s.scores.Computer,
		Stuck:       s.stuck,
		Rounds:      s.rounds,
		Frequencies: s.tracker.Report(),
		History:     s.history.Entries(),
	}

	if err := s.history.Persist(sink); err != nil {
		s.logger.Error("failed to save history", "session", s.id, "error", err)
		return report, err
	}

	s.logger.Info("session finished", "session", s.id, "rounds", s.rounds, "player_won", report.PlayerWon)
	return report, nil
}

func (s *Session) ID() string { return s.id }

// ShortID is the first block of the session ID, used in file names.
func (s *Session) ShortID() string {
	id, _, _ := strings.Cut(s.id, "-")
	return id
}

func (s *Session) Player() string { return s.player }
func (s *Session) RuleSet() rules.RuleSet { return s.rules }
func (s *Session) RoundsToWin() int { return s.roundsToWin }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Scores() models.Scores { return s.scores }
func (s *Session) Rounds() int { return s.rounds }
func (s *Session) History() []string { return s.history.Display() }
func (s *Session) Frequencies() []models.Frequency { return s.tracker.Report() }

func (s *Session) entryFor(o rules.Outcome) models.HistoryEntry {
	switch {
	case o == rules.PlayerWins:
		return models.HistoryEntry(s.player + " wins this round!")
	case o == rules.Draw && s.draws == DrawReplay:
		return "It's a draw!"
	}
	return "Computer wins this round."
}

// Normalize trims and lower-cases raw player input.
func Normalize(input string) rules.Choice {
	return rules.Choice(cases.Lower(language.Und).String(strings.TrimSpace(input)))
}

// Title renders a rule set's choices as a banner title: "Rock, Paper, Scissors".
func Title(rs rules.RuleSet) string {
	caser := cases.Title(language.English)
	names := make([]string, 0, len(rs.Choices()))
	for _, c := range rs.Choices() {
		names = append(names, caser.String(string(c)))
	}
	return strings.Join(names, ", ")
}
