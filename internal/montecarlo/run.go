package montecarlo

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	internallog "github.com/aidenkroll/demonsim/internal/log"
	"github.com/aidenkroll/demonsim/internal/sim"
)

// Run partitions trials across workers and runs them concurrently
// using errgroup, each worker owning one slab-allocated sim.State.
// Results merge associatively once every worker finishes. When trace
// is non-nil, workers is forced to 1 so event ordering stays
// meaningful, matching spec.md §5's debug-tracing constraint. When
// showDamage is non-nil, each trial's total damage is printed to it
// as it completes, matching original_source/sim.c's -showdamage flag.
func Run(ctx context.Context, def *sim.State, params sim.RunParams, trials, workers int, trace internallog.EventLogger, showDamage io.Writer, opLog *charmlog.Logger) (Result, error) {
	if trace != nil {
		workers = 1
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	counts := Partition(trials, workers)
	slab := newStateSlab(workers, def)

	if opLog != nil {
		opLog.Info("starting monte carlo run", "trials", trials, "workers", workers)
	}

	partials := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			worker := slab.at(w)
			worker.SeedW = workerSeed()
			worker.SeedZ = workerSeed()
			if trace != nil {
				worker.Trace = trace
			}

			partial := newResult()
			for i := 0; i < counts[w]; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				res := sim.RunTrial(worker, def, params)
				partial.Merge(res.DmgDone, res.Rounds, res.HitRoundX)
				if showDamage != nil {
					fmt.Fprintf(showDamage, "Dmg done = %d\n", res.DmgDone)
				}
			}
			partials[w] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	total := newResult()
	for _, p := range partials {
		total.MergeFrom(p)
	}

	if opLog != nil {
		opLog.Info("monte carlo run complete", "trials", total.Trials, "avg_damage", total.AverageDamage())
	}

	return total, nil
}

// workerSeed draws a fresh 32-bit seed for one worker's MWC PRNG.
// Unlike the engine's own per-trial PRNG, seeding is not required to
// be reproducible across runs, so this uses math/rand rather than the
// engine's MWC generator.
func workerSeed() uint32 {
	return rand.Uint32()
}

// NewOperationalLogger builds the process-level logger used by
// cmd/demonsim-cli, grounded in other_examples/tifye-shigure's
// charmbracelet/log-backed Simulator.
func NewOperationalLogger(verbose bool) *charmlog.Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})
	if verbose {
		l.SetLevel(charmlog.DebugLevel)
	}
	return l
}
