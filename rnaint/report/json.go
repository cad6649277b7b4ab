package report

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/rnaint/rnaint/checks"
	"github.com/rnaint/rnaint/rnaint/interaction"
)

// Record is the JSON-serializable projection of an Interaction: sequence
// names and the predicted structure, independent of the SequenceStore
// arena an Interaction's handles point into.
type Record struct {
	Sequence1          string           `json:"sequence1"`
	Sequence2          string           `json:"sequence2"`
	BasePairs          []BasePairRecord `json:"basePairs"`
	Energy             interaction.E    `json:"energy"`
	Seed               *SeedRangeRecord `json:"seed,omitempty"`
	Fingerprint        string           `json:"fingerprint"`
	GcContent1         float64          `json:"gcContent1"`
	GcContent2         float64          `json:"gcContent2"`
	SelfComplementary1 bool             `json:"selfComplementary1"`
	SelfComplementary2 bool             `json:"selfComplementary2"`
}

// BasePairRecord is the JSON projection of a BasePair.
type BasePairRecord struct {
	P1 interaction.Position `json:"p1"`
	P2 interaction.Position `json:"p2"`
}

// SeedRangeRecord is the JSON projection of a SeedRange annotation.
type SeedRangeRecord struct {
	From1  interaction.Position `json:"from1"`
	To1    interaction.Position `json:"to1"`
	From2  interaction.Position `json:"from2"`
	To2    interaction.Position `json:"to2"`
	Energy interaction.E        `json:"energy"`
}

// ToRecord projects an Interaction into its JSON-serializable form, using
// the default (Blake3) fingerprint algorithm.
func ToRecord(ix interaction.Interaction) Record {
	return ToRecordWithHash(ix, interaction.Blake3)
}

// ToRecordWithHash is ToRecord with an explicit fingerprint algorithm,
// selectable at the CLI via --hash.
func ToRecordWithHash(ix interaction.Interaction, alg interaction.HashAlgorithm) Record {
	fp := ix.FingerprintWith(alg)
	seq1, seq2 := ix.S1.Sequence(), ix.S2.Sequence()
	rec := Record{
		Sequence1:          ix.S1.Name(),
		Sequence2:          ix.S2.Name(),
		Energy:             ix.Energy,
		Fingerprint:        hex.EncodeToString(fp[:]),
		GcContent1:         checks.GcContent(seq1),
		GcContent2:         checks.GcContent(seq2),
		SelfComplementary1: checks.IsPalindromic(seq1),
		SelfComplementary2: checks.IsPalindromic(seq2),
	}
	for _, bp := range ix.BasePairs {
		rec.BasePairs = append(rec.BasePairs, BasePairRecord{P1: bp.P1, P2: bp.P2})
	}
	if ix.Seed != nil {
		rec.Seed = &SeedRangeRecord{
			From1:  ix.Seed.R1.From,
			To1:    ix.Seed.R1.To,
			From2:  ix.Seed.R2.From,
			To2:    ix.Seed.R2.To,
			Energy: ix.Seed.Energy,
		}
	}
	return rec
}

// JSONHandler writes each interaction to W as a newline-delimited JSON
// record, grounded on the encoding/json round-tripping the teacher uses
// for its own genbank/gff-adjacent json.go.
type JSONHandler struct {
	W         io.Writer
	Encode    *json.Encoder
	Algorithm interaction.HashAlgorithm
}

// NewJSONHandler builds a JSONHandler writing to w, fingerprinting with
// the default (Blake3) algorithm.
func NewJSONHandler(w io.Writer) *JSONHandler {
	return &JSONHandler{W: w, Encode: json.NewEncoder(w), Algorithm: interaction.Blake3}
}

// HandleInteraction implements predict.OutputHandler.
func (h *JSONHandler) HandleInteraction(ix interaction.Interaction) error {
	return h.Encode.Encode(ToRecordWithHash(ix, h.Algorithm))
}
