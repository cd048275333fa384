package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/aidenkroll/demonsim/internal/catalog"
	"github.com/aidenkroll/demonsim/internal/config"
	"github.com/aidenkroll/demonsim/internal/montecarlo"
)

// Render writes the exact report format of spec.md §6 to w, followed
// by a trailing Run ID line carrying runID for provenance when
// comparing reports across runs.
func Render(w io.Writer, cfg config.Config, deck catalog.Deck, agg montecarlo.Result, runID uuid.UUID) error {
	cost := deck.Cost()
	deckTime := 60 + cost*2

	if _, err := fmt.Fprintf(w, "Demon: %s\n", cfg.Demon); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Deck : (level %d, %d initial hp, %d cost, %d:%02d cooldown)\n\n",
		cfg.Level, cfg.HP, cost, deckTime/60, deckTime%60); err != nil {
		return err
	}
	for i, c := range deck.Cards {
		if _, err := fmt.Fprintf(w, "%2d) %s\n", i+1, c.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nRunes:\n\n"); err != nil {
		return err
	}
	for _, r := range deck.Runes {
		if _, err := fmt.Fprintf(w, "%s\n", r.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nResults of simulation (%d fights):\n\n", cfg.Iterations); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Lowest  number of rounds      : %d\n"+
		"Highest number of rounds      : %d\n"+
		"Average number of rounds      : %4.1f\n",
		agg.LowRounds, agg.HighRounds, agg.AverageRounds()); err != nil {
		return err
	}
	if agg.TimesHitRoundX > 0 {
		if _, err := fmt.Fprintf(w, "Percent time hitting round %d : %4.1f\n",
			cfg.PrintRound, agg.PercentHitRoundX()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	dTotal := agg.AverageDamage()
	if _, err := fmt.Fprintf(w, "Lowest  damage                : %d\n"+
		"Highest damage                : %d\n"+
		"Average dmg per fight         : %5.1f\n",
		agg.LowDamage, agg.HighDamage, dTotal); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average dmg per minute        : %5.1f\n",
		(dTotal*60)/float64(60+cost*2)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n\n"); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Run ID: %s\n", runID)
	return err
}
