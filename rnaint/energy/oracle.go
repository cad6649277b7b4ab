/*
Package energy defines the EnergyOracle contract the predictor queries
during fill and traceback, together with a default nearest-neighbor
implementation.
*/
package energy

import "github.com/rnaint/rnaint/rnaint/interaction"

// Oracle is the stateless (beyond offsets) view over two RNA sequences
// that the predictor issues all of its energy and accessibility queries
// against. All positions passed to and returned from Oracle methods other
// than BasePair/Index1/Index2 are matrix-relative (i.e. already shifted by
// the active offsets); BasePair/Index1/Index2 convert between that
// internal space and sequence-absolute coordinates.
type Oracle interface {
	// Size1 and Size2 report how many matrix-relative positions are
	// available from the current offsets to the end of each sequence.
	Size1() interaction.Position
	Size2() interaction.Position

	// IsAccessible1 and IsAccessible2 report whether a position may
	// participate in any interaction.
	IsAccessible1(i interaction.Position) bool
	IsAccessible2(i interaction.Position) bool

	// AreComplementary reports whether the two positions can form a base
	// pair.
	AreComplementary(i1, i2 interaction.Position) bool

	// EInit is the additive cost of starting an interaction.
	EInit() interaction.E

	// EInterLeft is the energy of the internal loop or stack that
	// extends a left boundary from (k1,k2) to (i1,i2); returns EInf if
	// the loop exceeds the configured size limits.
	EInterLeft(i1, k1, i2, k2 interaction.Position) interaction.E

	// MaxInternalLoopSize1 and MaxInternalLoopSize2 bound the unpaired
	// bases allowed on each side of a single internal loop.
	MaxInternalLoopSize1() interaction.Position
	MaxInternalLoopSize2() interaction.Position

	// MaxLength1 and MaxLength2 bound the overall interaction length on
	// each sequence.
	MaxLength1() interaction.Position
	MaxLength2() interaction.Position

	// BasePair, Index1, and Index2 convert between sequence-absolute
	// base pair coordinates and offset-relative matrix indices.
	BasePair(i1, i2 interaction.Position) interaction.BasePair
	Index1(bp interaction.BasePair) interaction.Position
	Index2(bp interaction.BasePair) interaction.Position

	// SetOffset1 and SetOffset2 mutate the active offsets for the
	// duration of one predict call.
	SetOffset1(v interaction.Position)
	SetOffset2(v interaction.Position)
}
