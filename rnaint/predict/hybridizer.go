/*
Package predict implements the O(n·m) space dynamic program that fills a
hybridization-energy matrix for a fixed right boundary, tracebacks the
optimal interaction, and tracks the minimum-energy boundary seen across the
whole search.
*/
package predict

import (
	"context"
	"fmt"

	"github.com/rnaint/rnaint/rnaint/energy"
	"github.com/rnaint/rnaint/rnaint/interaction"
	"github.com/rnaint/rnaint/rnaint/matrix"
)

// Hybridizer orchestrates the matrix fill and traceback for one RNA-RNA
// hybridization prediction. It consumes an energy.Oracle, owns a
// matrix.Dense2D, and drives an optimaTracker — the Go shape of the
// teacher's pairedMinimumFreeEnergyV fill-and-traceback pair, generalized
// from one sequence to two.
type Hybridizer struct {
	oracle  energy.Oracle
	mat     matrix.Dense2D
	tracker optimaTracker

	s1, s2 interaction.SequenceHandle
}

// NewHybridizer builds a Hybridizer over the given oracle. s1 and s2 are
// the sequence handles attached to every Interaction the Hybridizer
// produces.
func NewHybridizer(oracle energy.Oracle, s1, s2 interaction.SequenceHandle) *Hybridizer {
	return &Hybridizer{oracle: oracle, s1: s1, s2: s2}
}

// Predict computes the MFE interaction boundary within r1 x r2 and reports
// it (boundary-only, i.e. at most the two outermost base pairs) to sink.
// It returns the same boundary-only interaction, or one with Energy ==
// interaction.EInf and no base pairs if no feasible interaction exists.
//
// ctx is checked between right-boundary iterations; a canceled context
// aborts the prediction with ctx.Err() and yields no interaction.
func (h *Hybridizer) Predict(ctx context.Context, r1, r2 interaction.IndexRange, out OutputConstraint, sink OutputHandler, telemetry PredictionTracker) (interaction.Interaction, error) {
	if !out.validate() {
		return interaction.Interaction{}, fmt.Errorf("%w: reportMax=%d reportOverlap=%v", ErrUnsupportedConstraint, out.ReportMax, out.ReportOverlap)
	}
	if !r1.IsAscending() {
		return interaction.Interaction{}, fmt.Errorf("%w: r1=%+v", ErrBadRange, r1)
	}
	if !r2.IsAscending() {
		return interaction.Interaction{}, fmt.Errorf("%w: r2=%+v", ErrBadRange, r2)
	}

	h.oracle.SetOffset1(r1.From)
	h.oracle.SetOffset2(r2.From)

	w1 := minInt(int(h.oracle.Size1()), int(r1.EffectiveWidth(h.s1.Len())))
	w2 := minInt(int(h.oracle.Size2()), int(r2.EffectiveWidth(h.s2.Len())))
	h.mat.Resize(w1, w2)

	if err := h.tracker.Init(h.oracle, sink, telemetry, out); err != nil {
		return interaction.Interaction{}, err
	}

	for j1 := w1 - 1; j1 >= 0; j1-- {
		select {
		case <-ctx.Done():
			return interaction.Interaction{}, ctx.Err()
		default:
		}
		p1 := interaction.Position(j1)
		if !h.oracle.IsAccessible1(p1) {
			continue
		}
		for j2 := w2 - 1; j2 >= 0; j2-- {
			p2 := interaction.Position(j2)
			if !h.oracle.IsAccessible2(p2) || !h.oracle.AreComplementary(p1, p2) {
				continue
			}
			if err := h.fillHybridE(p1, p2, out, 0, 0); err != nil {
				return interaction.Interaction{}, err
			}
		}
	}

	if err := h.tracker.ReportOptima(h.s1, h.s2); err != nil {
		return interaction.Interaction{}, err
	}

	i1, j1, i2, j2, e, ok := h.tracker.Best()
	if !ok {
		return interaction.Interaction{S1: h.s1, S2: h.s2, Energy: interaction.EInf}, nil
	}
	bpLeft := h.oracle.BasePair(i1, i2)
	bpRight := h.oracle.BasePair(j1, j2)
	r1Result := interaction.IndexRange{From: bpLeft.P1, To: bpRight.P1}
	r2Result := interaction.IndexRange{From: bpLeft.P2, To: bpRight.P2}
	return interaction.NewFromRange(h.s1, h.s2, r1Result, r2Result, e), nil
}

// windowStart computes i{1,2}start for fillHybridE: the larger of the
// caller-supplied floor and how far back MaxLength{1,2} allows from the
// right boundary.
func windowStart(jK, initK, maxLengthK interaction.Position) interaction.Position {
	back := minPos(jK, maxLengthK+1)
	start := jK - back
	if initK > start {
		return initK
	}
	return start
}

// fillHybridE computes hybridE_pq(i1, i2) for every (i1, i2) with
// i1start <= i1 <= j1 and i2start <= i2 <= j2, where i1start/i2start are
// bounded below by i1init/i2init and above by the oracle's maximum
// interaction length. Both axes are visited from high to low so that
// split-decomposition reads of cells with larger indices always target
// cells already written within this same call.
func (h *Hybridizer) fillHybridE(j1, j2 interaction.Position, out OutputConstraint, i1init, i2init interaction.Position) error {
	if i1init > j1 || i2init > j2 {
		return fmt.Errorf("%w: fillHybridE init (%d,%d) beyond boundary (%d,%d)", ErrOracleRange, i1init, i2init, j1, j2)
	}
	i1start := windowStart(j1, i1init, h.oracle.MaxLength1())
	i2start := windowStart(j2, i2init, h.oracle.MaxLength2())

	maxLoop1 := int(h.oracle.MaxInternalLoopSize1())
	maxLoop2 := int(h.oracle.MaxInternalLoopSize2())

	for i1 := int(j1); i1 >= int(i1start); i1-- {
		for i2 := int(j2); i2 >= int(i2start); i2-- {
			p1, p2 := interaction.Position(i1), interaction.Position(i2)
			h.mat.Set(i1, i2, interaction.EInf)

			if !h.oracle.IsAccessible1(p1) || !h.oracle.IsAccessible2(p2) || !h.oracle.AreComplementary(p1, p2) {
				continue
			}

			var best interaction.E
			if p1 == j1 && p2 == j2 {
				best = h.oracle.EInit()
			} else {
				w1 := int(j1) - i1 + 1
				w2 := int(j2) - i2 + 1

				best = interaction.AddE(h.oracle.EInterLeft(p1, j1, p2, j2), h.mat.Get(int(j1), int(j2)))

				if w1 > 2 && w2 > 2 {
					maxK1 := minInt(int(j1)-1, i1+maxLoop1+1)
					maxK2 := minInt(int(j2)-1, i2+maxLoop2+1)
					for k1 := maxK1; k1 > i1; k1-- {
						for k2 := maxK2; k2 > i2; k2-- {
							candE := h.mat.Get(k1, k2)
							if !interaction.IsFinite(candE) {
								continue
							}
							cand := interaction.AddE(h.oracle.EInterLeft(p1, interaction.Position(k1), p2, interaction.Position(k2)), candE)
							if interaction.LessE(cand, best) {
								best = cand
							}
						}
					}
				}
			}
			h.mat.Set(i1, i2, best)
			h.tracker.UpdateOptima(p1, j1, p2, j2, best, true)
		}
	}
	return nil
}

// TraceBack mutates ix (which must contain exactly the two boundary base
// pairs, or a single pair) to include every intermediate base pair of the
// MFE decomposition recorded in the matrix, preserving the non-crossing
// invariant.
func (h *Hybridizer) TraceBack(ix *interaction.Interaction, out OutputConstraint) error {
	if len(ix.BasePairs) < 2 {
		return nil
	}
	if len(ix.BasePairs) > 2 {
		return fmt.Errorf("%w: traceback expects a boundary-only interaction, got %d pairs", ErrInvalidInteraction, len(ix.BasePairs))
	}
	ix.Sort()

	left, right := ix.BasePairs[0], ix.BasePairs[1]
	if left.P1 == right.P1 {
		ix.BasePairs = []interaction.BasePair{left}
		return nil
	}

	i1, i2 := h.oracle.Index1(left), h.oracle.Index2(left)
	j1, j2 := h.oracle.Index1(right), h.oracle.Index2(right)

	if err := h.fillHybridE(j1, j2, out, i1, i2); err != nil {
		return err
	}

	maxLoop1 := int(h.oracle.MaxInternalLoopSize1())
	maxLoop2 := int(h.oracle.MaxInternalLoopSize2())

	var interior []interaction.BasePair
	cur1, cur2 := i1, i2
	for {
		curE := h.mat.Get(int(cur1), int(cur2))
		direct := interaction.AddE(h.oracle.EInterLeft(cur1, j1, cur2, j2), h.mat.Get(int(j1), int(j2)))
		if interaction.EqualE(curE, direct) {
			break
		}

		maxK1 := minInt(int(j1)-1, int(cur1)+maxLoop1+1)
		maxK2 := minInt(int(j2)-1, int(cur2)+maxLoop2+1)

		found := false
		for k1 := maxK1; k1 > int(cur1) && !found; k1-- {
			for k2 := maxK2; k2 > int(cur2) && !found; k2-- {
				candE := h.mat.Get(k1, k2)
				if !interaction.IsFinite(candE) {
					continue
				}
				cand := interaction.AddE(h.oracle.EInterLeft(cur1, interaction.Position(k1), cur2, interaction.Position(k2)), candE)
				if interaction.EqualE(curE, cand) {
					cur1, cur2 = interaction.Position(k1), interaction.Position(k2)
					interior = append(interior, h.oracle.BasePair(cur1, cur2))
					found = true
				}
			}
		}
		if !found {
			return fmt.Errorf("%w: traceback stalled at (%d,%d)..(%d,%d)", ErrInvalidInteraction, cur1, cur2, j1, j2)
		}
	}

	result := make([]interaction.BasePair, 0, len(interior)+2)
	result = append(result, left)
	result = append(result, interior...)
	result = append(result, right)
	ix.BasePairs = result
	return nil
}

// GetNextBest writes the "no further solutions" sentinel into out. The
// core only ever supports single-optimum mode.
func (h *Hybridizer) GetNextBest(out *interaction.Interaction) {
	GetNextBest(out)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minPos(a, b interaction.Position) interaction.Position {
	if a < b {
		return a
	}
	return b
}
