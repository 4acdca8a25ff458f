package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"

	"github.com/tatianab/rps-game/internal/config"
	"github.com/tatianab/rps-game/internal/console"
	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/logging"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
	"github.com/tatianab/rps-game/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	registry := rules.NewRegistry()
	if cfg.RulesFile != "" {
		tables, err := rules.LoadFile(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("loading rule sets: %w", err)
		}
		for _, t := range tables {
			registry.Register(t)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			return err
		}
	}
	rng := engine.NewRand(seed)
	logger.Debug("seeded", "seed", seed)

	draws, err := engine.ParseDrawRule(cfg.Draws)
	if err != nil {
		return err
	}

	// one session per configured rule set, back to back
	ui := console.New(os.Stdin, os.Stdout)
	for _, name := range cfg.RuleSets {
		rs, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		policy, err := engine.NewPolicy(cfg.Strategy, rng)
		if err != nil {
			return err
		}

		s, err := engine.NewGame(rs,
			engine.WithRoundsToWin(cfg.RoundsToWin),
			engine.WithPolicy(policy),
			engine.WithDrawRule(draws),
			engine.WithLogger(logger.With("rules", rs.Name())),
		)
		if err != nil {
			return err
		}

		path := models.SessionPath(cfg.HistoryDir, cfg.HistoryFile, s.ShortID(), cfg.HistoryPerSession)
		sink := models.FileSink{Path: path}

		var report engine.Report
		if cfg.UI == "tui" {
			report, err = tui.Run(s, sink)
		} else {
			report, err = s.Play(ctx, ui, sink)
		}
		if err != nil {
			return err
		}
		logger.Info("history saved", "path", path, "rounds", report.Rounds)
	}
	return nil
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

