package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChoice is returned when a choice is not part of a rule set.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrUndefinedOutcome is returned when a rule set has no outcome for a pair of choices.
	ErrUndefinedOutcome = errors.New("undefined outcome")
)

// Choice is a move identifier, e.g. "rock".
type Choice string

// Outcome is the result of one round, seen from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	PlayerWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case PlayerWins:
		return "Player"
	case ComputerWins:
		return "Computer"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Invert swaps the point of view between player and computer.
func (o Outcome) Invert() Outcome {
	switch o {
	case PlayerWins:
		return ComputerWins
	case ComputerWins:
		return PlayerWins
	}
	return o
}

// RuleSet defines the legal choices of a game variant and how pairs of them resolve.
type RuleSet interface {
	Name() string
	// Choices returns the legal moves in display order.
	Choices() []Choice
	IsValid(c Choice) bool
	Resolve(player, computer Choice) (Outcome, error)
}
