package montecarlo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	internallog "github.com/aidenkroll/demonsim/internal/log"
	"github.com/aidenkroll/demonsim/internal/sim"
)

func trivialDef() sim.State {
	return sim.NewState(
		&sim.CardTemplate{Name: "Demon"},
		[]*sim.CardTemplate{{Name: "Soldier", BaseAtk: 10, BaseHp: 10}},
		nil,
		1000,
	)
}

func TestRunMergesAllTrialsRegardlessOfWorkerCount(t *testing.T) {
	def := trivialDef()

	one, err := Run(context.Background(), &def, sim.RunParams{MaxRounds: 20}, 20, 1, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 20, one.Trials)

	many, err := Run(context.Background(), &def, sim.RunParams{MaxRounds: 20}, 20, 7, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 20, many.Trials)
}

func TestRunClampsWorkersToTrialCount(t *testing.T) {
	def := trivialDef()
	res, err := Run(context.Background(), &def, sim.RunParams{MaxRounds: 5}, 3, 100, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 3, res.Trials)
}

func TestRunForcesSingleWorkerWhenTracing(t *testing.T) {
	def := trivialDef()
	trace := internallog.NewMemoryLogger()
	res, err := Run(context.Background(), &def, sim.RunParams{MaxRounds: 5}, 4, 8, trace, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 4, res.Trials)
	require.NotEmpty(t, trace.Events())
}
