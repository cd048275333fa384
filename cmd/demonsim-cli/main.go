package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/aidenkroll/demonsim/internal/catalog"
	"github.com/aidenkroll/demonsim/internal/config"
	"github.com/aidenkroll/demonsim/internal/log"
	"github.com/aidenkroll/demonsim/internal/montecarlo"
	"github.com/aidenkroll/demonsim/internal/report"
	"github.com/aidenkroll/demonsim/internal/sim"
)

func main() {
	args, err := config.ExpandDefaultsFile("defaults.txt", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseArgs("demonsim", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opLog := montecarlo.NewOperationalLogger(cfg.Verbose)

	cards, err := catalog.LoadCards("cards.txt")
	if err != nil {
		opLog.Fatal("failed to load card catalog", "err", err)
	}

	demonTemplate, ok := cards[cfg.Demon]
	if !ok {
		opLog.Fatal("unknown demon", "demon", cfg.Demon)
	}

	deck, err := catalog.LoadDeck(cfg.Deck, cards)
	if err != nil {
		opLog.Fatal("failed to load deck", "err", err)
	}

	out := os.Stdout
	if cfg.Output != "" {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if cfg.Append {
			flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		}
		f, err := os.OpenFile(cfg.Output, flags, 0o644)
		if err != nil {
			opLog.Fatal("failed to open output file", "path", cfg.Output, "err", err)
		}
		defer f.Close()
		out = f
	}

	def := sim.NewState(demonTemplate, deck.Cards, deck.Runes, cfg.HP)

	params := sim.RunParams{
		MaxRounds:      cfg.MaxRounds,
		RoundX:         cfg.PrintRound,
		AvgConcentrate: cfg.AvgConcentrate,
	}

	var trace log.EventLogger
	if cfg.Debug {
		trace = log.NewTextLogger(os.Stderr)
	}

	var showDamage io.Writer
	if cfg.ShowDamage {
		showDamage = out
	}

	agg, err := montecarlo.Run(context.Background(), &def, params, cfg.Iterations, cfg.NumThreads, trace, showDamage, opLog)
	if err != nil {
		opLog.Fatal("simulation run failed", "err", err)
	}

	if err := report.Render(out, cfg, deck, agg, uuid.New()); err != nil {
		opLog.Fatal("failed to render report", "err", err)
	}
}
