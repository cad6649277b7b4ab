package report

import (
	"encoding/json"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/rnaint/rnaint/rnaint/interaction"
)

// DiffAgainstBaseline compares a freshly predicted interaction against a
// previously saved baseline Record (e.g. loaded from a --diff-against
// fixture) and returns a unified diff of their JSON renderings, following
// the round-trip diffing idiom the teacher uses in its own format tests
// (gff_test.go's difflib.UnifiedDiff over before/after file bytes).
//
// An empty string means the two interactions serialize identically.
func DiffAgainstBaseline(got interaction.Interaction, baseline Record) (string, error) {
	gotBytes, err := json.MarshalIndent(ToRecord(got), "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal predicted interaction: %w", err)
	}
	baselineBytes, err := json.MarshalIndent(baseline, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal baseline: %w", err)
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(baselineBytes)),
		B:        difflib.SplitLines(string(gotBytes)),
		FromFile: "baseline",
		ToFile:   "predicted",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// InlineDiff renders a character-level diff between the text renderings of
// two interactions, for terminal-friendly output where a unified diff's
// line granularity is too coarse — grounded on the teacher's use of
// diffmatchpatch for readable string comparisons in seqhash_test.go.
func InlineDiff(got, baseline interaction.Interaction) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(Render(baseline), Render(got), false)
	return dmp.DiffPrettyText(diffs)
}
