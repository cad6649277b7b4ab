package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rnaint/rnaint/rnaint/interaction"
)

func TestAreComplementary(t *testing.T) {
	cases := []struct {
		name   string
		s1, s2 string
		want   bool
	}{
		{"Watson-Crick A-U", "A", "U", true},
		{"non-pair A-G", "A", "G", false},
		{"G-U wobble", "G", "U", true},
		{"G-C canonical", "G", "C", true},
		{"unknown base", "N", "U", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := New(c.s1, c.s2)
			assert.Equal(t, c.want, o.AreComplementary(0, 0))
		})
	}
}

func TestBasePairIndexRoundTrip(t *testing.T) {
	o := New("AAAAA", "UUUUU")
	o.SetOffset1(1)
	o.SetOffset2(2)

	for i1 := interaction.Position(0); i1 < 3; i1++ {
		for i2 := interaction.Position(0); i2 < 2; i2++ {
			bp := o.BasePair(i1, i2)
			assert.Equal(t, i1, o.Index1(bp), "Index1 should invert BasePair's first coordinate")
			assert.Equal(t, i2, o.Index2(bp), "Index2 should invert BasePair's second coordinate")
		}
	}
}

func TestBasePairAntiparallelOrdering(t *testing.T) {
	// s2 hybridizes antiparallel: as the matrix index on the s2 axis
	// grows, the absolute position it names shrinks.
	o := New("AAAA", "UUUU")
	p0 := o.BasePair(0, 0).P2
	p1 := o.BasePair(0, 1).P2
	p2 := o.BasePair(0, 2).P2
	assert.Greater(t, p0, p1)
	assert.Greater(t, p1, p2)
}

func TestEInterLeftStacking(t *testing.T) {
	// Adjacent base pairs (no unpaired bases) cost exactly the tabulated
	// stacking energy.
	o := New("AU", "AU")
	got := o.EInterLeft(0, 1, 0, 1)
	assert.Equal(t, interaction.E(-0.9), got)
}

func TestEInterLeftInternalLoop(t *testing.T) {
	o := New("AAAA", "UUU")
	got := o.EInterLeft(0, 3, 0, 2)
	assert.InDelta(t, float64(1.26), float64(got), 1e-9)
}

func TestEInterLeftRejectsOversizedLoop(t *testing.T) {
	o := New("AAAA", "UUUU", WithMaxInternalLoopSize(0, 0))
	got := o.EInterLeft(0, 3, 0, 3)
	assert.Equal(t, interaction.EInf, got)
}

func TestEInterLeftRejectsOutOfOrderIndices(t *testing.T) {
	o := New("AAAA", "UUUU")
	got := o.EInterLeft(3, 1, 0, 1)
	assert.Equal(t, interaction.EInf, got)
}

func TestNewDefaults(t *testing.T) {
	o := New("AAAA", "UUUU")
	assert.EqualValues(t, 16, o.MaxInternalLoopSize1())
	assert.EqualValues(t, 16, o.MaxInternalLoopSize2())
	assert.EqualValues(t, 4, o.MaxLength1())
	assert.EqualValues(t, 4, o.MaxLength2())
	assert.Equal(t, interaction.E(-1.0), o.EInit())
}

func TestWithAccessibility(t *testing.T) {
	o := New("AAAA", "UUUU", WithAccessibility([]bool{true, false, true, true}, nil))
	assert.True(t, o.IsAccessible1(0))
	assert.False(t, o.IsAccessible1(1))
	assert.True(t, o.IsAccessible2(0))
}
