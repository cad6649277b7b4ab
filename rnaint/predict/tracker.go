package predict

import (
	"fmt"

	"github.com/rnaint/rnaint/rnaint/energy"
	"github.com/rnaint/rnaint/rnaint/interaction"
)

// OutputHandler receives each reported Interaction from ReportOptima. A nil
// OutputHandler is valid; reported interactions are simply dropped.
type OutputHandler interface {
	HandleInteraction(ix interaction.Interaction) error
}

// PredictionTracker is an optional telemetry sink notified of every
// UpdateOptima offer, win or not. Left nil, no telemetry is recorded —
// mirroring the teacher's pattern of optional logging hooks that default
// to doing nothing.
type PredictionTracker interface {
	ObserveOptimaUpdate(i1, j1, i2, j2 interaction.Position, e interaction.E, accepted bool)
}

// totalEnergyConverter is implemented by an Oracle that needs to add
// contributions beyond pure hybridization energy (e.g. accessibility
// penalties) before a hybridE-flagged candidate is comparable to the
// tracked best. Oracles that don't implement it are treated as already
// reporting total energy.
type totalEnergyConverter interface {
	ToTotalEnergy(hybridE interaction.E) interaction.E
}

func toTotalEnergy(oracle energy.Oracle, e interaction.E, isHybridE bool) interaction.E {
	if !isHybridE {
		return e
	}
	if conv, ok := oracle.(totalEnergyConverter); ok {
		return conv.ToTotalEnergy(e)
	}
	return e
}

// optimaTracker records the single best (minimum-energy) interaction
// boundary seen across all right boundaries processed by a Hybridizer,
// generalizing the teacher fold package's minimumStructure comparison
// idiom from a single (start,end) span to a four-corner boundary.
type optimaTracker struct {
	oracle     energy.Oracle
	sink       OutputHandler
	telemetry  PredictionTracker
	constraint OutputConstraint

	hasBest bool
	best    struct {
		i1, j1, i2, j2 interaction.Position
		e              interaction.E
	}
}

// Init resets the tracker and validates the output constraint. The core
// only supports ReportMax == 1 or ReportOverlap == OverlapBoth; any other
// combination fails with ErrUnsupportedConstraint.
func (t *optimaTracker) Init(oracle energy.Oracle, sink OutputHandler, telemetry PredictionTracker, constraint OutputConstraint) error {
	if !constraint.validate() {
		return fmt.Errorf("%w: reportMax=%d reportOverlap=%v", ErrUnsupportedConstraint, constraint.ReportMax, constraint.ReportOverlap)
	}
	t.oracle = oracle
	t.sink = sink
	t.telemetry = telemetry
	t.constraint = constraint
	t.hasBest = false
	return nil
}

// UpdateOptima offers a candidate boundary; it is retained iff strictly
// lower than the current best. isHybridE flags that e is pure
// hybridization energy requiring conversion to total interaction energy
// before comparison, per the Oracle's totalEnergyConverter hook if any.
func (t *optimaTracker) UpdateOptima(i1, j1, i2, j2 interaction.Position, e interaction.E, isHybridE bool) {
	total := toTotalEnergy(t.oracle, e, isHybridE)
	accepted := !t.hasBest || interaction.LessE(total, t.best.e)
	if accepted {
		t.hasBest = true
		t.best.i1, t.best.j1, t.best.i2, t.best.j2 = i1, j1, i2, j2
		t.best.e = total
	}
	if t.telemetry != nil {
		t.telemetry.ObserveOptimaUpdate(i1, j1, i2, j2, total, accepted)
	}
}

// ReportOptima emits the best boundary-only interaction to the configured
// sink, if any candidate was ever retained.
func (t *optimaTracker) ReportOptima(s1, s2 interaction.SequenceHandle) error {
	if !t.hasBest || !interaction.IsFinite(t.best.e) {
		return nil
	}
	if t.sink == nil {
		return nil
	}
	bpLeft := t.oracle.BasePair(t.best.i1, t.best.i2)
	bpRight := t.oracle.BasePair(t.best.j1, t.best.j2)
	r1 := interaction.IndexRange{From: bpLeft.P1, To: bpRight.P1}
	r2 := interaction.IndexRange{From: bpLeft.P2, To: bpRight.P2}
	ix := interaction.NewFromRange(s1, s2, r1, r2, t.best.e)
	return t.sink.HandleInteraction(ix)
}

// Best returns the retained boundary, if any, and whether one was ever
// retained.
func (t *optimaTracker) Best() (i1, j1, i2, j2 interaction.Position, e interaction.E, ok bool) {
	return t.best.i1, t.best.j1, t.best.i2, t.best.j2, t.best.e, t.hasBest && interaction.IsFinite(t.best.e)
}

// GetNextBest writes the "no further solutions" sentinel into out: an
// infeasible energy and an empty base-pair list. The single-optimum core
// never supports enumerating a second-best interaction.
func GetNextBest(out *interaction.Interaction) {
	out.Energy = interaction.EInf
	out.BasePairs = nil
}
