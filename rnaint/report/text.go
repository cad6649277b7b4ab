/*
Package report provides OutputHandler implementations that render a
predicted Interaction as text, JSON, or a diff against a saved baseline.
*/
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/rnaint/rnaint/checks"
	"github.com/rnaint/rnaint/rnaint/interaction"
)

// TextHandler writes a human-readable rendering of each interaction to W:
// the base pairs, total energy, and a dot-bracket-style duplex diagram.
type TextHandler struct {
	W         io.Writer
	Algorithm interaction.HashAlgorithm
}

// HandleInteraction implements predict.OutputHandler.
func (h TextHandler) HandleInteraction(ix interaction.Interaction) error {
	_, err := fmt.Fprintf(h.W, "%s\n", RenderWithHash(ix, h.Algorithm))
	return err
}

// Render formats an interaction as a multi-line string: the sequence
// names, the dot-bracket duplex diagram, the base pair list, the total
// energy, its default (Blake3) fingerprint, and each strand's GC content
// and self-complementarity.
func Render(ix interaction.Interaction) string {
	return RenderWithHash(ix, interaction.Blake3)
}

// RenderWithHash is Render with an explicit fingerprint algorithm.
func RenderWithHash(ix interaction.Interaction, alg interaction.HashAlgorithm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s & %s\n", ix.S1.Name(), ix.S2.Name())
	fmt.Fprintf(&b, "%s\n", DotBracket(ix))
	fmt.Fprintf(&b, "base pairs:")
	for _, bp := range ix.BasePairs {
		fmt.Fprintf(&b, " (%d,%d)", bp.P1, bp.P2)
	}
	fmt.Fprintf(&b, "\nenergy: %v kcal/mol", ix.Energy)
	fp := ix.FingerprintWith(alg)
	fmt.Fprintf(&b, "\nfingerprint: %s", hex.EncodeToString(fp[:]))
	fmt.Fprintf(&b, "\ngc content: %.3f & %.3f", checks.GcContent(ix.S1.Sequence()), checks.GcContent(ix.S2.Sequence()))
	if checks.IsPalindromic(ix.S1.Sequence()) {
		fmt.Fprintf(&b, "\n%s is self-complementary", ix.S1.Name())
	}
	if checks.IsPalindromic(ix.S2.Sequence()) {
		fmt.Fprintf(&b, "\n%s is self-complementary", ix.S2.Name())
	}
	return b.String()
}

// DotBracket renders the interaction as an intermolecular dot-bracket
// diagram of two lines: the two sequences, then their marks, with '('
// marking paired positions of sequence 1, ')' those of sequence 2, and '&'
// separating the two strands on each line, matching the RNAcofold/IntaRNA
// duplex convention.
func DotBracket(ix interaction.Interaction) string {
	seq1 := ix.S1.Sequence()
	seq2 := ix.S2.Sequence()
	marks1 := make([]byte, len(seq1))
	marks2 := make([]byte, len(seq2))
	for i := range marks1 {
		marks1[i] = '.'
	}
	for i := range marks2 {
		marks2[i] = '.'
	}
	for _, bp := range ix.BasePairs {
		if int(bp.P1) < len(marks1) {
			marks1[bp.P1] = '('
		}
		if int(bp.P2) < len(marks2) {
			marks2[bp.P2] = ')'
		}
	}
	return seq1 + "&" + seq2 + "\n" + string(marks1) + "&" + string(marks2)
}
