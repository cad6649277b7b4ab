package interaction

import (
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"
)

// HashAlgorithm selects the fingerprint algorithm used by Interaction's
// Fingerprint/FingerprintWith, mirroring the teacher's own multi-algorithm
// HashFunction switch for sequence hashing.
type HashAlgorithm int

const (
	// Blake3 is the default fingerprint algorithm.
	Blake3 HashAlgorithm = iota
	// Blake2b256 is a selectable alternate, e.g. for interop with tooling
	// that expects a NIST-family-adjacent hash rather than blake3.
	Blake2b256
)

// SeedRange describes a short sub-interaction meeting a SeedConstraint,
// annotated onto an Interaction. It carries only hybridization loop
// energy, not the total interaction energy.
type SeedRange struct {
	S1, S2 SequenceHandle
	R1, R2 IndexRange
	Energy E
}

// Interaction is the value object produced by the predictor: an ordered,
// non-crossing list of inter-molecular base pairs between two sequences,
// its total free energy, and an optional seed annotation.
//
// BasePairs is kept sorted strictly ascending on P1 and, for a valid
// interaction, strictly descending on P2 — see IsValid.
type Interaction struct {
	S1, S2    SequenceHandle
	BasePairs []BasePair
	Energy    E
	Seed      *SeedRange
}

// IsValid reports whether the interaction's base pairs form a non-empty,
// strictly monotone (non-crossing) sequence: empty is invalid, a single
// pair is always valid, and two or more pairs are valid iff every
// consecutive pair (a, b) satisfies a.P1 < b.P1 && a.P2 > b.P2.
func (ix *Interaction) IsValid() bool {
	if len(ix.BasePairs) == 0 {
		return false
	}
	if len(ix.BasePairs) < 2 {
		return true
	}
	for i := 1; i < len(ix.BasePairs); i++ {
		a, b := ix.BasePairs[i-1], ix.BasePairs[i]
		if !(a.P1 < b.P1 && a.P2 > b.P2) {
			return false
		}
	}
	return true
}

// Sort stably orders the base pairs ascending on P1 (descending on P2 is
// implied for a valid interaction).
func (ix *Interaction) Sort() {
	sort.SliceStable(ix.BasePairs, func(i, j int) bool {
		return ix.BasePairs[i].P1 < ix.BasePairs[j].P1
	})
}

// SetSeedRange creates or overwrites the interaction's seed annotation from
// the pair of boundary base pairs ij1 (leftmost) and ij2 (rightmost) and
// the seed's hybridization energy. The replacement is a write-through: a
// prior SeedRange, if any, is discarded rather than accumulated.
func (ix *Interaction) SetSeedRange(ij1, ij2 BasePair, energy E) {
	ix.Seed = &SeedRange{
		S1:     ix.S1,
		S2:     ix.S2,
		R1:     IndexRange{From: ij1.P1, To: ij2.P1},
		R2:     IndexRange{From: ij2.P2, To: ij1.P2},
		Energy: energy,
	}
}

// NewFromRange builds an Interaction from an InteractionRange-style value:
// two sequence handles, an ascending range on s1, a range on s2 (descending,
// since s2 hybridizes antiparallel to s1), and an energy. It is the Go
// stand-in for the teacher corpus's operator= idiom, since Go has no
// operator overloading — following the constructor-function convention
// used for compound value types elsewhere in the corpus.
//
// The result carries the left boundary base pair (r1.From, r2.From) and,
// unless the ranges are both singletons, the right boundary pair
// (r1.To, r2.To) as well; a singleton-singleton range collapses to one
// base pair.
func NewFromRange(s1, s2 SequenceHandle, r1, r2 IndexRange, energy E) Interaction {
	ix := Interaction{
		S1:     s1,
		S2:     s2,
		Energy: energy,
	}
	ix.BasePairs = append(ix.BasePairs, BasePair{P1: r1.From, P2: r2.From})
	if r1.From != r1.To || r2.From != r2.To {
		ix.BasePairs = append(ix.BasePairs, BasePair{P1: r1.To, P2: r2.To})
	}
	return ix
}

// Fingerprint returns a content hash of the interaction's base pair list
// under the default algorithm (Blake3), used by the reporting layer for
// dedup and log correlation rather than for any correctness-affecting
// comparison.
func (ix *Interaction) Fingerprint() [32]byte {
	return ix.FingerprintWith(Blake3)
}

// FingerprintWith returns the same content hash as Fingerprint, under the
// selected algorithm.
func (ix *Interaction) FingerprintWith(alg HashAlgorithm) [32]byte {
	var h interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
	}
	switch alg {
	case Blake2b256:
		b2, _ := blake2b.New256(nil)
		h = b2
	default:
		h = blake3.New(32, nil)
	}

	var buf [8]byte
	for _, bp := range ix.BasePairs {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(bp.P1))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(bp.P2))
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
