/*
rnaint is the command line utility for predicting RNA-RNA hybridization
interactions.

Essentially rnaint's app is defined via the &cli.App{} struct, following the
same "github.com/urfave/cli/v2" convention the corpus uses elsewhere: a top
level Name/Usage/Flags plus a Commands list, one *cli.Command per
subcommand with its own Flags and Action.
*/
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rnaint/rnaint/rnaint/driver"
	"github.com/rnaint/rnaint/rnaint/energy"
	rnaio "github.com/rnaint/rnaint/rnaint/io"
	"github.com/rnaint/rnaint/rnaint/interaction"
	"github.com/rnaint/rnaint/rnaint/predict"
	"github.com/rnaint/rnaint/rnaint/report"
	"github.com/rnaint/rnaint/rnaint/seed"
)

// seedFlags are shared between the predict and batch commands; a seed
// constraint is optional and only built when --seed-bp is set.
var seedFlags = []cli.Flag{
	&cli.UintFlag{Name: "seed-bp", Usage: "Minimum base pairs a seed must contain; enables seed filtering when set."},
	&cli.UintFlag{Name: "seed-max-unpaired", Usage: "Overall unpaired-base budget allowed within a seed."},
	&cli.UintFlag{Name: "seed-max-unpaired1", Usage: "Unpaired-base budget within sequence 1's seed span."},
	&cli.UintFlag{Name: "seed-max-unpaired2", Usage: "Unpaired-base budget within sequence 2's seed span."},
	&cli.Float64Flag{Name: "seed-max-e", Usage: "Maximum seed energy, in kcal/mol. Unset means unbounded."},
	&cli.StringFlag{Name: "seed-ranges1", Usage: "Comma-separated from-to ranges in sequence 1 allowed to host a seed."},
	&cli.StringFlag{Name: "seed-ranges2", Usage: "Comma-separated from-to ranges in sequence 2 allowed to host a seed."},
}

// seedSpec holds the seed flag values parsed once per invocation; since
// sequence 2's length (needed to reverse ranges2 into the predictor's
// coordinate convention) varies per pair in batch mode, building the
// final *seed.Constraint is deferred to withLen2, called once per pair.
type seedSpec struct {
	enabled                                            bool
	bp, maxUnpairedOverall, maxUnpaired1, maxUnpaired2 uint
	maxE                                                interaction.E
	ranges1, ranges2                                    seed.IndexRangeList
}

// seedFromFlags parses the seedFlags above into a seedSpec, or a disabled
// one if --seed-bp was not set (no seed filtering requested).
func seedFromFlags(c *cli.Context) (seedSpec, error) {
	if !c.IsSet("seed-bp") {
		return seedSpec{}, nil
	}
	maxE := interaction.EInf
	if c.IsSet("seed-max-e") {
		maxE = interaction.E(c.Float64("seed-max-e"))
	}
	ranges1, err := seed.ParseIndexRangeList(c.String("seed-ranges1"))
	if err != nil {
		return seedSpec{}, err
	}
	ranges2, err := seed.ParseIndexRangeList(c.String("seed-ranges2"))
	if err != nil {
		return seedSpec{}, err
	}
	return seedSpec{
		enabled:            true,
		bp:                 c.Uint("seed-bp"),
		maxUnpairedOverall: c.Uint("seed-max-unpaired"),
		maxUnpaired1:       c.Uint("seed-max-unpaired1"),
		maxUnpaired2:       c.Uint("seed-max-unpaired2"),
		maxE:               maxE,
		ranges1:            ranges1,
		ranges2:            ranges2,
	}, nil
}

// withLen2 builds the *seed.Constraint for a specific pair's sequence-2
// length, or nil if seed filtering was not requested.
func (spec seedSpec) withLen2(len2 interaction.Position) (*seed.Constraint, error) {
	if !spec.enabled {
		return nil, nil
	}
	sc, err := seed.New(spec.bp, spec.maxUnpairedOverall, spec.maxUnpaired1, spec.maxUnpaired2,
		spec.maxE, spec.ranges1, seed.ReverseRanges(spec.ranges2, len2))
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// main is the entry point; separated from application() to keep app
// construction testable without touching os.Args.
func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the rnaint app: the predict, batch, and params
// subcommands.
func application() *cli.App {
	return &cli.App{
		Name:  "rnaint",
		Usage: "Predict the minimum free energy RNA-RNA hybridization interaction between two sequences.",

		Commands: []*cli.Command{
			{
				Name:  "predict",
				Usage: "Predict the MFE interaction between one pair of sequences read from two FASTA files.",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "seq1", Required: true, Usage: "FASTA file holding the first sequence."},
					&cli.StringFlag{Name: "seq2", Required: true, Usage: "FASTA file holding the second sequence."},
					&cli.StringFlag{Name: "o", Value: "text", Usage: "Output format: text or json."},
					&cli.StringFlag{Name: "hash", Value: "blake3", Usage: "Fingerprint algorithm: blake3 or blake2b."},
					&cli.StringFlag{Name: "diff-against", Usage: "Baseline .json fixture (one report.Record per line) to diff the prediction against."},
				}, seedFlags...),
				Action: predictCommand,
			},
			{
				Name:  "batch",
				Usage: "Predict the MFE interaction for every pair across two multi-record FASTA files.",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "seq1", Required: true, Usage: "FASTA file holding the first sequence set."},
					&cli.StringFlag{Name: "seq2", Required: true, Usage: "FASTA file holding the second sequence set."},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "Maximum number of predictions to run concurrently."},
					&cli.StringFlag{Name: "o", Value: "text", Usage: "Output format: text or json."},
					&cli.StringFlag{Name: "hash", Value: "blake3", Usage: "Fingerprint algorithm: blake3 or blake2b."},
					&cli.StringFlag{Name: "diff-against", Usage: "Baseline .json fixture (one report.Record per line, keyed by sequence name pair) to diff each prediction against."},
				}, seedFlags...),
				Action: batchCommand,
			},
			{
				Name:  "params",
				Usage: "Print the default energy oracle's configuration.",
				Action: func(c *cli.Context) error {
					o := energy.New("", "")
					fmt.Printf("maxInternalLoopSize1=%d maxInternalLoopSize2=%d eInit=%v\n",
						o.MaxInternalLoopSize1(), o.MaxInternalLoopSize2(), o.EInit())
					return nil
				},
			},
		},
	}
}

// hashAlgorithmFlag parses --hash ("blake3", the default, or "blake2b")
// into an interaction.HashAlgorithm.
func hashAlgorithmFlag(c *cli.Context) (interaction.HashAlgorithm, error) {
	switch c.String("hash") {
	case "", "blake3":
		return interaction.Blake3, nil
	case "blake2b":
		return interaction.Blake2b256, nil
	default:
		return 0, fmt.Errorf("rnaint: unknown --hash %q, want blake3 or blake2b", c.String("hash"))
	}
}

// baselineKey identifies a baseline record by its sequence name pair, the
// way report.ToRecord's Sequence1/Sequence2 fields name the pair.
func baselineKey(name1, name2 string) string {
	return name1 + "\x00" + name2
}

// loadBaselines reads a --diff-against fixture: one report.Record JSON
// object per line (the same newline-delimited form JSONHandler writes),
// indexed by its sequence name pair.
func loadBaselines(path string) (map[string]report.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rnaint: reading --diff-against baseline %s: %w", path, err)
	}
	defer f.Close()

	baselines := map[string]report.Record{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec report.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("rnaint: parsing --diff-against baseline %s: %w", path, err)
		}
		baselines[baselineKey(rec.Sequence1, rec.Sequence2)] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rnaint: reading --diff-against baseline %s: %w", path, err)
	}
	return baselines, nil
}

// reportDiff prints a unified diff between ix and its baseline record (if
// one was found under name1/name2) to stderr, the way commands.go logs
// secondary diagnostic output alongside primary stdout results.
func reportDiff(baselines map[string]report.Record, ix interaction.Interaction) {
	baseline, ok := baselines[baselineKey(ix.S1.Name(), ix.S2.Name())]
	if !ok {
		log.Printf("rnaint: --diff-against: no baseline record for %s/%s", ix.S1.Name(), ix.S2.Name())
		return
	}
	diff, err := report.DiffAgainstBaseline(ix, baseline)
	if err != nil {
		log.Printf("rnaint: --diff-against: %s/%s: %v", ix.S1.Name(), ix.S2.Name(), err)
		return
	}
	if diff == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "--- diff %s/%s ---\n%s", ix.S1.Name(), ix.S2.Name(), diff)
}

func outputHandler(c *cli.Context) (predict.OutputHandler, error) {
	alg, err := hashAlgorithmFlag(c)
	if err != nil {
		return nil, err
	}
	if c.String("o") == "json" {
		h := report.NewJSONHandler(os.Stdout)
		h.Algorithm = alg
		return h, nil
	}
	return report.TextHandler{W: os.Stdout, Algorithm: alg}, nil
}

func predictCommand(c *cli.Context) error {
	store := interaction.NewSequenceStore()
	s1, s2, err := rnaio.ReadPair(store, c.String("seq1"), c.String("seq2"))
	if err != nil {
		return err
	}

	spec, err := seedFromFlags(c)
	if err != nil {
		return err
	}
	sc, err := spec.withLen2(s2.Len())
	if err != nil {
		return err
	}

	pair := driver.Pair{
		S1: s1, S2: s2,
		R1:   interaction.IndexRange{From: 0, To: interaction.LastPos},
		R2:   interaction.IndexRange{From: 0, To: interaction.LastPos},
		Seed: sc,
	}
	sink, err := outputHandler(c)
	if err != nil {
		return err
	}

	out := predict.OutputConstraint{ReportMax: 1, ReportOverlap: predict.OverlapBoth}
	result := driver.RunOne(c.Context, driver.DefaultOracle, pair, out, nil, nil, true)
	if result.Err != nil {
		return result.Err
	}

	if path := c.String("diff-against"); path != "" {
		baselines, err := loadBaselines(path)
		if err != nil {
			return err
		}
		reportDiff(baselines, result.Ix)
	}
	return sink.HandleInteraction(result.Ix)
}

func batchCommand(c *cli.Context) error {
	store := interaction.NewSequenceStore()
	seqs1, seqs2, err := rnaio.ReadBatch(store, c.String("seq1"), c.String("seq2"))
	if err != nil {
		return err
	}

	spec, err := seedFromFlags(c)
	if err != nil {
		return err
	}

	var pairs []driver.Pair
	for _, s1 := range seqs1 {
		for _, s2 := range seqs2 {
			sc, err := spec.withLen2(s2.Len())
			if err != nil {
				return err
			}
			pairs = append(pairs, driver.Pair{
				S1: s1, S2: s2,
				R1:   interaction.IndexRange{From: 0, To: interaction.LastPos},
				R2:   interaction.IndexRange{From: 0, To: interaction.LastPos},
				Seed: sc,
			})
		}
	}

	sink, err := outputHandler(c)
	if err != nil {
		return err
	}

	var baselines map[string]report.Record
	if path := c.String("diff-against"); path != "" {
		baselines, err = loadBaselines(path)
		if err != nil {
			return err
		}
	}

	out := predict.OutputConstraint{ReportMax: 1, ReportOverlap: predict.OverlapBoth}
	results := driver.RunBatch(context.Background(), driver.DefaultOracle, pairs, out, sink, nil, true, c.Int("workers"))

	for _, r := range results {
		if r.Err != nil {
			log.Printf("rnaint: %s/%s: %v", r.Pair.S1.Name(), r.Pair.S2.Name(), r.Err)
			continue
		}
		if baselines != nil {
			reportDiff(baselines, r.Ix)
		}
	}
	return nil
}
