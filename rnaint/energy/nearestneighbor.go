package energy

import (
	"math"

	"github.com/rnaint/rnaint/rnaint/interaction"
)

// complementSet maps a base in s1 to the bases in s2 it may pair with,
// including G-U wobble pairs, matching the pairing rules used throughout
// the corpus's RNA-handling code.
var complementSet = map[byte]string{
	'A': "U",
	'U': "AG",
	'G': "UC",
	'C': "G",
}

// NearestNeighborOracle is the default, self-contained Oracle
// implementation: it derives accessibility, complementarity, and loop
// energies directly from the two input sequences using the simplified
// nearest-neighbor table in tables.go, following the extrapolation and
// asymmetry-penalty idiom of the teacher's fold package but generalized
// from a single folded sequence to an inter-molecular duplex.
type NearestNeighborOracle struct {
	s1, s2                   string
	offset1, offset2         interaction.Position
	accessible1, accessible2 []bool
	eInit                    interaction.E
	maxInternalLoopSize1     interaction.Position
	maxInternalLoopSize2     interaction.Position
	maxLength1               interaction.Position
	maxLength2               interaction.Position
	temp                     float64
}

// Option configures a NearestNeighborOracle at construction time.
type Option func(*NearestNeighborOracle)

// WithAccessibility overrides the default "every position accessible"
// assumption with explicit per-position masks; a nil mask leaves all
// positions of that sequence accessible.
func WithAccessibility(accessible1, accessible2 []bool) Option {
	return func(o *NearestNeighborOracle) {
		o.accessible1 = accessible1
		o.accessible2 = accessible2
	}
}

// WithInitEnergy overrides the default interaction initiation cost.
func WithInitEnergy(e interaction.E) Option {
	return func(o *NearestNeighborOracle) { o.eInit = e }
}

// WithMaxInternalLoopSize overrides the default per-side internal loop
// bound.
func WithMaxInternalLoopSize(size1, size2 interaction.Position) Option {
	return func(o *NearestNeighborOracle) {
		o.maxInternalLoopSize1 = size1
		o.maxInternalLoopSize2 = size2
	}
}

// WithMaxLength overrides the default per-sequence maximum interaction
// length.
func WithMaxLength(len1, len2 interaction.Position) Option {
	return func(o *NearestNeighborOracle) {
		o.maxLength1 = len1
		o.maxLength2 = len2
	}
}

// WithTemperature overrides the default folding temperature, in Kelvin.
func WithTemperature(kelvin float64) Option {
	return func(o *NearestNeighborOracle) { o.temp = kelvin }
}

// New builds a NearestNeighborOracle over s1 and s2 (both expected to be
// upper-case RNA, see checks.IsRNA), with defaults matching IntaRNA's
// typical run configuration: no accessibility restriction, a 16nt
// internal-loop window per side, and interaction length bounded by the
// sequence length.
func New(s1, s2 string, opts ...Option) *NearestNeighborOracle {
	o := &NearestNeighborOracle{
		s1:                   s1,
		s2:                   s2,
		eInit:                interaction.E(-1.0),
		maxInternalLoopSize1: 16,
		maxInternalLoopSize2: 16,
		maxLength1:           interaction.Position(len(s1)),
		maxLength2:           interaction.Position(len(s2)),
		temp:                 310.15, // 37C, IntaRNA's default
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *NearestNeighborOracle) Size1() interaction.Position {
	return interaction.Position(len(o.s1)) - o.offset1
}

func (o *NearestNeighborOracle) Size2() interaction.Position {
	return interaction.Position(len(o.s2)) - o.offset2
}

func (o *NearestNeighborOracle) IsAccessible1(i interaction.Position) bool {
	if o.accessible1 == nil {
		return true
	}
	return o.accessible1[o.offset1+i]
}

func (o *NearestNeighborOracle) IsAccessible2(i interaction.Position) bool {
	if o.accessible2 == nil {
		return true
	}
	return o.accessible2[o.offset2+i]
}

// reverseIndex2 converts a matrix-relative index on the s2 axis into the
// absolute position of the actual base it names. s2 hybridizes
// antiparallel to s1, so as i2 grows from 0 toward Size2()-1 the named
// base moves from the end of s2 backward to its start — consecutive
// matrix indices on this axis are never consecutive sequence positions.
func (o *NearestNeighborOracle) reverseIndex2(i2 interaction.Position) interaction.Position {
	return interaction.Position(len(o.s2)-1) - o.offset2 - i2
}

func (o *NearestNeighborOracle) AreComplementary(i1, i2 interaction.Position) bool {
	b1 := o.s1[o.offset1+i1]
	b2 := o.s2[o.reverseIndex2(i2)]
	partners, ok := complementSet[b1]
	if !ok {
		return false
	}
	for k := 0; k < len(partners); k++ {
		if partners[k] == b2 {
			return true
		}
	}
	return false
}

func (o *NearestNeighborOracle) EInit() interaction.E {
	return o.eInit
}

// EInterLeft computes the stacking energy (when (i1,i2) and (k1,k2) are
// directly adjacent base pairs) or the internal-loop/bulge penalty
// (when unpaired bases separate them on one or both sides), following the
// teacher's jacobsonStockmayer extrapolation and loop-asymmetry penalty.
func (o *NearestNeighborOracle) EInterLeft(i1, k1, i2, k2 interaction.Position) interaction.E {
	loopLen1 := int(k1) - int(i1) - 1
	loopLen2 := int(k2) - int(i2) - 1
	if loopLen1 < 0 || loopLen2 < 0 {
		return interaction.EInf
	}
	if interaction.Position(loopLen1) > o.maxInternalLoopSize1 || interaction.Position(loopLen2) > o.maxInternalLoopSize2 {
		return interaction.EInf
	}

	if loopLen1 == 0 && loopLen2 == 0 {
		return interaction.E(o.stackEnergy(i1, k1, i2, k2))
	}

	loopLength := loopLen1 + loopLen2
	dG := o.loopInitiation(loopLength)
	dG += loopAsymmetryPenalty * math.Abs(float64(loopLen1-loopLen2))
	return interaction.E(dG)
}

// stackEnergy looks up the adjacent-pair stacking energy for the base
// pairs at (i1,i2) and (k1,k2), both matrix-relative.
func (o *NearestNeighborOracle) stackEnergy(i1, k1, i2, k2 interaction.Position) float64 {
	top := string([]byte{o.s1[o.offset1+i1], o.s2[o.reverseIndex2(i2)]})
	bottom := string([]byte{o.s1[o.offset1+k1], o.s2[o.reverseIndex2(k2)]})
	key := top + "/" + bottom
	if e, ok := stackEnergies[key]; ok {
		return e
	}
	// unknown combination (e.g. a non-canonical pair slipped through
	// AreComplementary's wobble allowance): fall back to the weakest
	// tabulated stack rather than treating it as infeasible.
	return -0.3
}

// loopInitiation derives the initiation penalty of an internal loop of the
// given total unpaired-base length from the loopInitiationAt10 anchor.
// Loops of up to loopInitiationKnownLen bases scale linearly with length;
// longer loops are extrapolated with the Jacobson-Stockmayer formula
// exactly as the teacher's fold package does for bulges and internal loops
// beyond its precalculated table.
func (o *NearestNeighborOracle) loopInitiation(loopLength int) float64 {
	if loopLength <= loopInitiationKnownLen {
		return loopInitiationAt10 * float64(loopLength) / loopInitiationKnownLen
	}
	return loopInitiationAt10 + 2.44*gasConstantKcal*o.temp*math.Log(float64(loopLength)/loopInitiationKnownLen)
}

func (o *NearestNeighborOracle) MaxInternalLoopSize1() interaction.Position {
	return o.maxInternalLoopSize1
}

func (o *NearestNeighborOracle) MaxInternalLoopSize2() interaction.Position {
	return o.maxInternalLoopSize2
}

func (o *NearestNeighborOracle) MaxLength1() interaction.Position {
	return o.maxLength1
}

func (o *NearestNeighborOracle) MaxLength2() interaction.Position {
	return o.maxLength2
}

func (o *NearestNeighborOracle) BasePair(i1, i2 interaction.Position) interaction.BasePair {
	return interaction.BasePair{P1: o.offset1 + i1, P2: o.reverseIndex2(i2)}
}

func (o *NearestNeighborOracle) Index1(bp interaction.BasePair) interaction.Position {
	return bp.P1 - o.offset1
}

func (o *NearestNeighborOracle) Index2(bp interaction.BasePair) interaction.Position {
	return interaction.Position(len(o.s2)-1) - o.offset2 - bp.P2
}

func (o *NearestNeighborOracle) SetOffset1(v interaction.Position) {
	o.offset1 = v
}

func (o *NearestNeighborOracle) SetOffset2(v interaction.Position) {
	o.offset2 = v
}
