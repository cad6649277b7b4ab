package predict

import "github.com/rnaint/rnaint/rnaint/interaction"

// fakeOracle is a fully scriptable energy.Oracle for exercising the
// recurrence's edge cases without depending on any particular numeric
// parameter set — the scenarios in spec.md §8 are all defined against a
// "fabricated oracle", and this is that oracle.
type fakeOracle struct {
	s1, s2           string
	offset1, offset2 interaction.Position

	complementary func(i1, i2 interaction.Position) bool
	accessible1   func(i interaction.Position) bool
	accessible2   func(i interaction.Position) bool
	eInit         interaction.E
	interLeft     func(i1, k1, i2, k2 interaction.Position) interaction.E
	maxLoop1      interaction.Position
	maxLoop2      interaction.Position
	maxLen1       interaction.Position
	maxLen2       interaction.Position
}

func newFakeOracle(s1, s2 string) *fakeOracle {
	return &fakeOracle{
		s1: s1, s2: s2,
		complementary: func(interaction.Position, interaction.Position) bool { return true },
		eInit:         0,
		maxLoop1:      interaction.Position(len(s1)),
		maxLoop2:      interaction.Position(len(s2)),
		maxLen1:       interaction.Position(len(s1)),
		maxLen2:       interaction.Position(len(s2)),
	}
}

// adjacentOnly returns an EInterLeft implementation that returns cost for
// directly adjacent base pairs (no unpaired bases on either side) and
// EInf for anything else — the "legal (i,k,j,l)" reading of spec.md S4.
func adjacentOnly(cost interaction.E) func(i1, k1, i2, k2 interaction.Position) interaction.E {
	return func(i1, k1, i2, k2 interaction.Position) interaction.E {
		if k1-i1-1 == 0 && k2-i2-1 == 0 {
			return cost
		}
		return interaction.EInf
	}
}

// gapCost returns an EInterLeft implementation that charges one unit per
// unpaired base on either side, rejecting any loop exceeding maxLoop1 or
// maxLoop2 — the general internal-loop-size contract every real Oracle
// must honor, without committing to any particular energy model.
func gapCost(maxLoop1, maxLoop2 interaction.Position) func(i1, k1, i2, k2 interaction.Position) interaction.E {
	return func(i1, k1, i2, k2 interaction.Position) interaction.E {
		g1 := k1 - i1 - 1
		g2 := k2 - i2 - 1
		if g1 > maxLoop1 || g2 > maxLoop2 {
			return interaction.EInf
		}
		return interaction.E(g1 + g2)
	}
}

func (o *fakeOracle) Size1() interaction.Position { return interaction.Position(len(o.s1)) - o.offset1 }
func (o *fakeOracle) Size2() interaction.Position { return interaction.Position(len(o.s2)) - o.offset2 }

func (o *fakeOracle) IsAccessible1(i interaction.Position) bool {
	if o.accessible1 == nil {
		return true
	}
	return o.accessible1(o.offset1 + i)
}

func (o *fakeOracle) IsAccessible2(i interaction.Position) bool {
	if o.accessible2 == nil {
		return true
	}
	return o.accessible2(o.offset2 + i)
}

func (o *fakeOracle) AreComplementary(i1, i2 interaction.Position) bool {
	return o.complementary(o.offset1+i1, o.offset2+i2)
}

func (o *fakeOracle) EInit() interaction.E { return o.eInit }

func (o *fakeOracle) EInterLeft(i1, k1, i2, k2 interaction.Position) interaction.E {
	return o.interLeft(o.offset1+i1, k1+o.offset1, o.offset2+i2, k2+o.offset2)
}

func (o *fakeOracle) MaxInternalLoopSize1() interaction.Position { return o.maxLoop1 }
func (o *fakeOracle) MaxInternalLoopSize2() interaction.Position { return o.maxLoop2 }
func (o *fakeOracle) MaxLength1() interaction.Position           { return o.maxLen1 }
func (o *fakeOracle) MaxLength2() interaction.Position           { return o.maxLen2 }

// reverseIndex2 mirrors energy.NearestNeighborOracle's antiparallel
// conversion: ascending matrix index i2 names a descending absolute
// position in s2.
func (o *fakeOracle) reverseIndex2(i2 interaction.Position) interaction.Position {
	return interaction.Position(len(o.s2)-1) - o.offset2 - i2
}

func (o *fakeOracle) BasePair(i1, i2 interaction.Position) interaction.BasePair {
	return interaction.BasePair{P1: o.offset1 + i1, P2: o.reverseIndex2(i2)}
}
func (o *fakeOracle) Index1(bp interaction.BasePair) interaction.Position { return bp.P1 - o.offset1 }
func (o *fakeOracle) Index2(bp interaction.BasePair) interaction.Position {
	return interaction.Position(len(o.s2)-1) - o.offset2 - bp.P2
}
func (o *fakeOracle) SetOffset1(v interaction.Position) { o.offset1 = v }
func (o *fakeOracle) SetOffset2(v interaction.Position) { o.offset2 = v }
