package driver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnaint/rnaint/rnaint/energy"
	"github.com/rnaint/rnaint/rnaint/interaction"
	"github.com/rnaint/rnaint/rnaint/predict"
	"github.com/rnaint/rnaint/rnaint/seed"
)

func testPair(store *interaction.SequenceStore, name1, seq1, name2, seq2 string) Pair {
	s1 := store.Add(name1, seq1)
	s2 := store.Add(name2, seq2)
	return Pair{
		S1: s1, S2: s2,
		R1: interaction.IndexRange{From: 0, To: interaction.LastPos},
		R2: interaction.IndexRange{From: 0, To: interaction.LastPos},
	}
}

// collectingSink records every interaction handed to it, guarded by a mutex
// since RunBatch may call it from multiple goroutines.
type collectingSink struct {
	mu  sync.Mutex
	got []interaction.Interaction
}

func (s *collectingSink) HandleInteraction(ix interaction.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, ix)
	return nil
}

func TestRunOneProducesAFullyTracedInteraction(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "AAAA", "s2", "UUUU")

	sink := &collectingSink{}
	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, sink, nil, true)

	require.NoError(t, result.Err)
	assert.NotZero(t, result.Duration)
	require.Len(t, sink.got, 1)
	assert.True(t, sink.got[0].IsValid())
}

func TestRunOneReportsNoFeasibleInteraction(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "GGGG", "s2", "GGGG")

	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, nil, nil, true)
	require.NoError(t, result.Err)
	assert.Equal(t, interaction.EInf, result.Ix.Energy)
	assert.Empty(t, result.Ix.BasePairs)
}

func TestRunOneSkipsTracebackWhenDisabled(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "AAAA", "s2", "UUUU")

	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, nil, nil, false)
	require.NoError(t, result.Err)
	assert.LessOrEqual(t, len(result.Ix.BasePairs), 2)
}

func TestRunBatchPreservesOrder(t *testing.T) {
	store := interaction.NewSequenceStore()
	pairs := []Pair{
		testPair(store, "a1", "AAAA", "a2", "UUUU"),
		testPair(store, "b1", "GGGG", "b2", "CCCC"),
		testPair(store, "c1", "AUAU", "c2", "AUAU"),
	}

	results := RunBatch(context.Background(), DefaultOracle, pairs, predict.OutputConstraint{ReportMax: 1}, nil, nil, true, 2)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, pairs[i].S1.Name(), r.Pair.S1.Name())
		assert.NoError(t, r.Err)
	}
}

func TestRunBatchHonorsCancellation(t *testing.T) {
	store := interaction.NewSequenceStore()
	pairs := []Pair{
		testPair(store, "a1", "AAAA", "a2", "UUUU"),
		testPair(store, "b1", "GGGG", "b2", "CCCC"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RunBatch(ctx, DefaultOracle, pairs, predict.OutputConstraint{ReportMax: 1}, nil, nil, true, 1)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRunOneRejectsResultBelowSeedBasePairFloor(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "AAAA", "s2", "UUUU")

	sc, err := seed.New(10, 0, 0, 0, interaction.EInf, nil, nil)
	require.NoError(t, err)
	pair.Seed = &sc

	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, nil, nil, true)
	require.NoError(t, result.Err)
	assert.Equal(t, interaction.EInf, result.Ix.Energy)
	assert.Empty(t, result.Ix.BasePairs)
}

func TestRunOneAcceptsResultMeetingSeedConstraint(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "AAAA", "s2", "UUUU")

	sc, err := seed.New(2, 0, 0, 0, interaction.EInf, nil, nil)
	require.NoError(t, err)
	pair.Seed = &sc

	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, nil, nil, true)
	require.NoError(t, result.Err)
	assert.NotEqual(t, interaction.EInf, result.Ix.Energy)
	assert.True(t, result.Ix.IsValid())
}

func TestRunOneRejectsResultAboveSeedMaxE(t *testing.T) {
	store := interaction.NewSequenceStore()
	pair := testPair(store, "s1", "AAAA", "s2", "UUUU")

	sc, err := seed.New(2, 0, 0, 0, interaction.E(-1000), nil, nil)
	require.NoError(t, err)
	pair.Seed = &sc

	result := RunOne(context.Background(), DefaultOracle, pair, predict.OutputConstraint{ReportMax: 1}, nil, nil, true)
	require.NoError(t, result.Err)
	assert.Equal(t, interaction.EInf, result.Ix.Energy)
}

func TestRestrictRangeBoundsByAllowedSpan(t *testing.T) {
	allowed := seed.IndexRangeList{{From: 2, To: 4}, {From: 10, To: 12}}
	got := restrictRange(interaction.IndexRange{From: 0, To: interaction.LastPos}, allowed)
	assert.Equal(t, interaction.IndexRange{From: 2, To: 12}, got)
}

func TestRestrictRangeLeavesUnrestrictedWhenEmpty(t *testing.T) {
	r := interaction.IndexRange{From: 0, To: 9}
	assert.Equal(t, r, restrictRange(r, nil))
}

func TestRestrictRangeIntersectsWithInput(t *testing.T) {
	allowed := seed.IndexRangeList{{From: 0, To: 20}}
	got := restrictRange(interaction.IndexRange{From: 3, To: 6}, allowed)
	assert.Equal(t, interaction.IndexRange{From: 3, To: 6}, got)
}

func TestWorkerLimit(t *testing.T) {
	assert.Equal(t, 1, workerLimit(0, 0))
	assert.Equal(t, 5, workerLimit(0, 5))
	assert.Equal(t, 3, workerLimit(3, 5))
}

func TestRunBatchBoundsConcurrency(t *testing.T) {
	store := interaction.NewSequenceStore()
	var pairs []Pair
	for i := 0; i < 6; i++ {
		pairs = append(pairs, testPair(store, "t", "AAAA", "q", "UUUU"))
	}

	var mu sync.Mutex
	var current, max int
	var track NewOracle = func(s1, s2 interaction.SequenceHandle) energy.Oracle {
		mu.Lock()
		current++
		if current > max {
			max = current
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		mu.Lock()
		current--
		mu.Unlock()
		return DefaultOracle(s1, s2)
	}

	RunBatch(context.Background(), track, pairs, predict.OutputConstraint{ReportMax: 1}, nil, nil, true, 2)
	assert.LessOrEqual(t, max, 2)
}
