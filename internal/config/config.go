package config

import (
	"flag"
	"fmt"

	"github.com/aidenkroll/demonsim/internal/catalog"
)

// MaxDefaultArgs caps how many tokens ExpandDefaultsFile will prepend
// from defaults.txt, mirroring the reference implementation's
// MAX_DEFAULT_ARGS.
const MaxDefaultArgs = 50

// Config mirrors every CLI flag of spec.md §6.
type Config struct {
	Level          int
	HP             int
	Iterations     int
	Demon          string
	Deck           string
	Debug          bool
	Verbose        bool
	ShowDamage     bool
	AvgConcentrate bool
	PrintRound     int
	NumThreads     int
	MaxRounds      int
	Output         string
	Append         bool
}

// DefaultConfig mirrors original_source/sim.c's compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Level:      61,
		Iterations: 50000,
		Demon:      "",
		Deck:       "deck.txt",
		NumThreads: 8,
		MaxRounds:  500,
		PrintRound: 50,
	}
}

// ParseArgs parses a flag set built the way cmd/tcgx-cli/main.go builds
// its own subcommand flag sets, starting from DefaultConfig and
// resolving -level into an hp default when -hp is absent.
func ParseArgs(name string, args []string) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var hpSet bool
	fs.IntVar(&cfg.Level, "level", cfg.Level, "deck level, used to derive starting hp")
	fs.Func("hp", "hero starting hp (overrides -level's derived value)", func(s string) error {
		hpSet = true
		_, err := fmt.Sscanf(s, "%d", &cfg.HP)
		return err
	})
	fs.IntVar(&cfg.Iterations, "iter", cfg.Iterations, "number of independent trials to run")
	fs.StringVar(&cfg.Demon, "demon", cfg.Demon, "name of the demon card to fight")
	fs.StringVar(&cfg.Deck, "deck", cfg.Deck, "path to the deck file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable single-worker debug tracing, forces a small iteration count")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose debug tracing (implies -debug)")
	fs.BoolVar(&cfg.ShowDamage, "showdamage", cfg.ShowDamage, "print each trial's total damage, forces a moderate iteration count")
	fs.BoolVar(&cfg.AvgConcentrate, "avgconcentrate", cfg.AvgConcentrate, "replace Concentrate/Frost Bite's coin-flip bonus with its deterministic average")
	fs.IntVar(&cfg.NumThreads, "numthreads", cfg.NumThreads, "number of parallel workers")
	fs.IntVar(&cfg.MaxRounds, "maxrounds", cfg.MaxRounds, "safety cap on rounds per trial")
	fs.IntVar(&cfg.PrintRound, "printround", cfg.PrintRound, "round threshold used for the \"percent hit round X\" stat")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "write the report to this file instead of stdout")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "shorthand for -output")
	fs.BoolVar(&cfg.Append, "append", cfg.Append, "append to -output instead of overwriting it")
	fs.BoolVar(&cfg.Append, "a", cfg.Append, "shorthand for -append")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Verbose {
		cfg.Debug = true
	}
	if cfg.Debug {
		cfg.Iterations = 10
	} else if cfg.ShowDamage {
		cfg.Iterations = 200
	}

	if cfg.Debug || cfg.ShowDamage {
		cfg.NumThreads = 1
	}
	if cfg.NumThreads > 64 {
		cfg.NumThreads = 64
	}
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = 1
	}

	if !hpSet {
		hp, err := catalog.HPForLevel(cfg.Level)
		if err != nil {
			return Config{}, err
		}
		cfg.HP = hp
	}

	if cfg.Demon == "" {
		return Config{}, fmt.Errorf("config: -demon is required")
	}

	return cfg, nil
}

// ExpandDefaultsFile reads the defaults.txt preamble (if present) and
// prepends its whitespace-separated tokens to args, reproducing
// HandleDefaultArgs's argv-prepending behavior including the
// MaxDefaultArgs token cap. A missing defaults.txt is not an error.
func ExpandDefaultsFile(path string, args []string) ([]string, error) {
	tokens, err := readDefaultsTokens(path)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return args, nil
	}
	return append(tokens, args...), nil
}
