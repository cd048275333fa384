package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type trialOutcome struct {
	dmg       int
	rounds    int
	hitRoundX bool
}

var sampleTrials = []trialOutcome{
	{dmg: 100, rounds: 10, hitRoundX: false},
	{dmg: 250, rounds: 32, hitRoundX: true},
	{dmg: 40, rounds: 5, hitRoundX: false},
	{dmg: 999, rounds: 60, hitRoundX: true},
	{dmg: 1, rounds: 1, hitRoundX: false},
	{dmg: 500, rounds: 45, hitRoundX: true},
}

func mergeSequentially(trials []trialOutcome) Result {
	r := newResult()
	for _, tr := range trials {
		r.Merge(tr.dmg, tr.rounds, tr.hitRoundX)
	}
	return r
}

// Invariant 6: partitioning N trials into any set of workers and
// merging their partial Results yields the same aggregate as merging
// every trial into one Result directly.
func TestMergeIsAssociativeAcrossPartitions(t *testing.T) {
	whole := mergeSequentially(sampleTrials)

	// Partition into 3 workers: [0:2], [2:4], [4:6].
	partA := mergeSequentially(sampleTrials[0:2])
	partB := mergeSequentially(sampleTrials[2:4])
	partC := mergeSequentially(sampleTrials[4:6])

	merged := newResult()
	merged.MergeFrom(partA)
	merged.MergeFrom(partB)
	merged.MergeFrom(partC)

	require.Equal(t, whole, merged)

	// A different partitioning: one worker per trial.
	perTrial := newResult()
	for _, tr := range sampleTrials {
		single := newResult()
		single.Merge(tr.dmg, tr.rounds, tr.hitRoundX)
		perTrial.MergeFrom(single)
	}
	require.Equal(t, whole, perTrial)
}

func TestPartitionDistributesRemainderToFirstWorker(t *testing.T) {
	counts := Partition(17, 4)
	require.Len(t, counts, 4)

	total := 0
	for _, c := range counts {
		total += c
	}
	require.Equal(t, 17, total)
	require.Equal(t, counts[0], counts[1]+1)
}

func TestPartitionSingleWorkerGetsEverything(t *testing.T) {
	counts := Partition(50000, 1)
	require.Equal(t, []int{50000}, counts)
}

func TestResultAveragesAndPercent(t *testing.T) {
	r := mergeSequentially(sampleTrials)
	require.InDelta(t, float64(100+250+40+999+1+500)/6, r.AverageDamage(), 0.0001)
	require.InDelta(t, float64(10+32+5+60+1+45)/6, r.AverageRounds(), 0.0001)
	require.InDelta(t, 3*100.0/6, r.PercentHitRoundX(), 0.0001)
}

func TestResultZeroTrialsAvoidsDivideByZero(t *testing.T) {
	r := newResult()
	require.Equal(t, 0.0, r.AverageDamage())
	require.Equal(t, 0.0, r.AverageRounds())
	require.Equal(t, 0.0, r.PercentHitRoundX())
}
