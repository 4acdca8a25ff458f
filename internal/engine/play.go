package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

// UI is the line-oriented front end Play talks to.
type UI interface {
	Banner(title string)
	Show(lines ...string)
	// Ask shows prompt and returns the next line of input.
	// It returns ErrInputClosed when no more input will arrive.
	Ask(ctx context.Context, prompt string) (string, error)
}

// Play runs the whole game over ui and writes the history to sink at the end.
func (s *Session) Play(ctx context.Context, ui UI, sink models.Sink) (Report, error) {
	ui.Banner("Welcome to " + Title(s.rules) + "!")

	name, err := ui.Ask(ctx, "Enter your name:")
	if err != nil {
		return Report{}, err
	}
	if err := s.Start(name); err != nil {
		return Report{}, err
	}

	choices := joinChoices(s.rules.Choices())
	for s.phase != PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		s.showHistory(ui)

		input, err := ui.Ask(ctx, fmt.Sprintf("\n%s, choose your weapon: (%s)", s.player, choices))
		if err != nil {
			return Report{}, err
		}

		round, err := s.Round(input)
		if errors.Is(err, rules.ErrInvalidChoice) {
			ui.Show("Invalid choice. Please choose from the available options.")
			continue
		}
		if err != nil {
			return Report{}, err
		}

		ui.Show(
			"Computer chose: "+string(round.Computer),
			s.describe(round),
			s.scoreLine(),
		)
		if round.GameOver {
			break
		}

		answer, err := ui.Ask(ctx, "\nDo you want to stick (s) or twist (t)?")
		if err != nil {
			return Report{}, err
		}
		decision, err := s.Continue(answer)
		if err != nil {
			return Report{}, err
		}
		switch decision {
		case Stick:
			ui.Show(s.player + " sticks.")
		case StickRefused:
			ui.Show("You can only stick while you are ahead. Playing on.")
		}
	}

	report, err := s.Finish(sink)
	if err != nil {
		ui.Show("", "Could not save the game history: "+err.Error())
		return report, err
	}

	ui.Show("", "Player's Strategy Analysis:")
	for _, f := range report.Frequencies {
		ui.Show(fmt.Sprintf("Choice: %s, Frequency: %d", f.Choice, f.Count))
	}

	s.showHistory(ui)

	if report.PlayerWon {
		ui.Show("", fmt.Sprintf("Congratulations, %s! You win the game!", s.player))
	} else {
		ui.Show("", "Computer wins the game. Better luck next time!")
	}
	ui.Show("", "Thanks for playing!")

	return report, nil
}

func (s *Session) showHistory(ui UI) {
	lines := s.history.Display()
	if lines == nil {
		return
	}
	out := append([]string{"", "Game History:"}, lines...)
	ui.Show(append(out, "")...)
}

func (s *Session) describe(r Round) string {
	switch r.Outcome {
	case rules.PlayerWins:
		return s.player + " wins this round!"
	case rules.ComputerWins:
		return "Computer wins this round!"
	}
	if s.draws == DrawHouse {
		return "It's a draw! The computer takes the point."
	}
	return "It's a draw!"
}

func (s *Session) scoreLine() string {
	return fmt.Sprintf("%s: %d - Computer: %d", s.player, s.scores.Player, s.scores.Computer)
}

func joinChoices(choices []rules.Choice) string {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
