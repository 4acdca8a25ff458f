package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"

	"github.com/montanaflynn/stats"

	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

const (
	sessionsPerMatchup = 200
	roundsToWin        = 3
)

// bot stands in for the human at the keyboard.
type bot struct {
	name string
	next func(round int, choices []rules.Choice) rules.Choice
}

func bots(rng *rand.Rand) []bot {
	return []bot{
		{"always-rock", func(int, []rules.Choice) rules.Choice { return rules.Rock }},
		{"cycler", func(round int, choices []rules.Choice) rules.Choice { return choices[round%len(choices)] }},
		{"uniform", func(_ int, choices []rules.Choice) rules.Choice { return choices[rng.IntN(len(choices))] }},
	}
}

func main() {
	rs := rules.RPSLS()
	rng := engine.NewRand(1)
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := models.WriterSink{W: io.Discard}

	fmt.Printf("--- %s, first to %d, %d sessions per matchup ---\n", rs.Name(), roundsToWin, sessionsPerMatchup)
	fmt.Printf("%-12s %-8s %8s %8s %8s %8s\n", "bot", "policy", "win%", "mean", "median", "stddev")

	for _, b := range bots(rng) {
		for _, strategy := range []string{engine.StrategyRandom, engine.StrategyCounter} {
			var rounds stats.Float64Data
			wins := 0

			for i := 0; i < sessionsPerMatchup; i++ {
				policy, err := engine.NewPolicy(strategy, rng)
				if err != nil {
					log.Fatalf("Failed to create policy: %v", err)
				}
				s, err := engine.NewGame(rs,
					engine.WithRoundsToWin(roundsToWin),
					engine.WithPolicy(policy),
					engine.WithLogger(quiet))
				if err != nil {
					log.Fatalf("Failed to create game: %v", err)
				}

				report, err := playSession(s, b, sink)
				if err != nil {
					log.Fatalf("Session %d failed: %v", i, err)
				}
				rounds = append(rounds, float64(report.Rounds))
				if report.PlayerWon {
					wins++
				}
			}

			mean, _ := stats.Mean(rounds)
			median, _ := stats.Median(rounds)
			stddev, _ := stats.StandardDeviation(rounds)
			fmt.Printf("%-12s %-8s %7.1f%% %8.2f %8.1f %8.2f\n",
				b.name, strategy, 100*float64(wins)/sessionsPerMatchup, mean, median, stddev)
		}
	}
}

func playSession(s *engine.Session, b bot, sink models.Sink) (engine.Report, error) {
	if err := s.Start(b.name); err != nil {
		return engine.Report{}, err
	}
	choices := s.RuleSet().Choices()
	for s.Phase() != engine.PhaseGameOver {
		if _, err := s.Round(string(b.next(s.Rounds(), choices))); err != nil {
			return engine.Report{}, err
		}
		if s.Phase() == engine.PhaseRoundResolved {
			if _, err := s.Continue("t"); err != nil {
				return engine.Report{}, err
			}
		}
	}
	return s.Finish(sink)
}
