/*
Package driver runs predictions over one or more sequence pairs, optionally
in parallel across a bounded pool of worker goroutines, and reports timing
for each — the ambient piece that sits between the CLI and rnaint/predict,
generalizing the teacher's commands.go wg.Add/go func/wg.Wait pattern to a
worker-count-bounded pool driven by a work queue instead of one goroutine
per item.
*/
package driver

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/rnaint/rnaint/rnaint/energy"
	"github.com/rnaint/rnaint/rnaint/interaction"
	"github.com/rnaint/rnaint/rnaint/predict"
	"github.com/rnaint/rnaint/rnaint/seed"
)

// Pair is one sequence pair to predict against. Seed, when non-nil,
// narrows the search to its allowed seed regions and gates the reported
// interaction on its bp/energy thresholds.
type Pair struct {
	S1, S2 interaction.SequenceHandle
	R1, R2 interaction.IndexRange
	Seed   *seed.Constraint
}

// Result bundles a prediction outcome with the pair it came from and how
// long it took.
type Result struct {
	Pair     Pair
	Ix       interaction.Interaction
	Err      error
	Duration time.Duration
}

// NewOracle builds the default energy.Oracle for a pair; a driver caller
// with a custom oracle (e.g. one with accessibility data) can bypass
// RunBatch and call predict.Hybridizer directly instead.
type NewOracle func(s1, s2 interaction.SequenceHandle) energy.Oracle

// DefaultOracle builds a energy.NearestNeighborOracle over a pair's raw
// sequences.
func DefaultOracle(s1, s2 interaction.SequenceHandle) energy.Oracle {
	return energy.New(s1.Sequence(), s2.Sequence())
}

// RunOne predicts and (if requested) tracebacks a single pair, logging its
// duration the way the teacher's commands.go logs per-file work.
func RunOne(ctx context.Context, newOracle NewOracle, pair Pair, out predict.OutputConstraint, sink predict.OutputHandler, telemetry predict.PredictionTracker, withTraceback bool) Result {
	start := time.Now()
	oracle := newOracle(pair.S1, pair.S2)
	h := predict.NewHybridizer(oracle, pair.S1, pair.S2)

	r1, r2 := pair.R1, pair.R2
	if pair.Seed != nil {
		r1 = restrictRange(r1, pair.Seed.Ranges1())
		r2 = restrictRange(r2, pair.Seed.Ranges2Reversed())
	}

	// Predict is given no sink: it would otherwise report the
	// boundary-only interaction before TraceBack fills in the interior
	// base pairs. The fully-traced interaction is reported below instead.
	ix, err := h.Predict(ctx, r1, r2, out, nil, telemetry)
	if err == nil && withTraceback && len(ix.BasePairs) == 2 {
		err = h.TraceBack(&ix, out)
	}
	if err == nil && pair.Seed != nil && len(ix.BasePairs) > 0 && !seedSatisfied(ix, *pair.Seed) {
		ix = interaction.Interaction{S1: pair.S1, S2: pair.S2, Energy: interaction.EInf}
	}
	if err == nil && sink != nil {
		err = sink.HandleInteraction(ix)
	}

	return Result{Pair: pair, Ix: ix, Err: err, Duration: time.Since(start)}
}

// restrictRange narrows r to the bounding span of allowed (its lowest From
// to its highest To), leaving r untouched when allowed is empty.
// Hybridizer.Predict searches one contiguous range per axis, so disjoint
// seed windows are approximated by their bounding span; a caller wanting
// per-window precision should issue one RunOne call per window.
func restrictRange(r interaction.IndexRange, allowed seed.IndexRangeList) interaction.IndexRange {
	if len(allowed) == 0 {
		return r
	}
	from, to := allowed[0].From, allowed[0].To
	for _, a := range allowed[1:] {
		if a.From < from {
			from = a.From
		}
		if a.To > to {
			to = a.To
		}
	}
	if from < r.From {
		from = r.From
	}
	if to > r.To {
		to = r.To
	}
	return interaction.IndexRange{From: from, To: to}
}

// seedSatisfied gates a fully-traced interaction on the constraint's
// minimum base-pair count and maximum energy, the two seed properties
// that are checkable directly against the reported result rather than
// requiring the core to search for seed sub-structures explicitly.
func seedSatisfied(ix interaction.Interaction, sc seed.Constraint) bool {
	if uint(len(ix.BasePairs)) < sc.BasePairs() {
		return false
	}
	return !interaction.LessE(sc.MaxE(), ix.Energy)
}

// RunBatch predicts every pair in pairs, running up to workers predictions
// concurrently (workers <= 0 means unbounded, one goroutine per pair).
// Results are returned in the same order as pairs regardless of
// completion order. Cancelling ctx aborts in-flight and not-yet-started
// predictions.
func RunBatch(ctx context.Context, newOracle NewOracle, pairs []Pair, out predict.OutputConstraint, sink predict.OutputHandler, telemetry predict.PredictionTracker, withTraceback bool, workers int) []Result {
	results := make([]Result, len(pairs))

	sem := make(chan struct{}, workerLimit(workers, len(pairs)))
	var wg sync.WaitGroup

	for i, pair := range pairs {
		select {
		case <-ctx.Done():
			results[i] = Result{Pair: pair, Err: ctx.Err()}
			continue
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, pair Pair) {
			defer wg.Done()
			defer func() { <-sem }()

			result := RunOne(ctx, newOracle, pair, out, sink, telemetry, withTraceback)
			results[i] = result
			if result.Err != nil {
				log.Printf("rnaint: prediction for %s/%s failed: %v", pair.S1.Name(), pair.S2.Name(), result.Err)
			} else {
				log.Printf("rnaint: predicted %s/%s in %s (energy=%v)", pair.S1.Name(), pair.S2.Name(), result.Duration, result.Ix.Energy)
			}
		}(i, pair)
	}

	wg.Wait()
	return results
}

func workerLimit(workers, totalPairs int) int {
	if workers <= 0 {
		if totalPairs == 0 {
			return 1
		}
		return totalPairs
	}
	return workers
}
