/*
Package io reads the sequence pairs a prediction runs over, wrapping the
corpus's own FASTA parser rather than reinventing one.
*/
package io

import (
	"fmt"
	"strings"

	"github.com/rnaint/rnaint/checks"
	"github.com/rnaint/rnaint/io/fasta"
	"github.com/rnaint/rnaint/rnaint/interaction"
)

// ReadPair reads exactly one sequence from each of path1 and path2 and
// registers both in store, returning their handles. Each file must
// contain at least one FASTA record, and that record's sequence must be
// RNA (see checks.IsRNA); only the first record is used.
func ReadPair(store *interaction.SequenceStore, path1, path2 string) (s1, s2 interaction.SequenceHandle, err error) {
	r1, err := readFirst(path1)
	if err != nil {
		return s1, s2, fmt.Errorf("io: reading %s: %w", path1, err)
	}
	r2, err := readFirst(path2)
	if err != nil {
		return s1, s2, fmt.Errorf("io: reading %s: %w", path2, err)
	}
	s1 = store.Add(r1.Name, r1.Sequence)
	s2 = store.Add(r2.Name, r2.Sequence)
	return s1, s2, nil
}

func readFirst(path string) (fasta.Fasta, error) {
	records, err := fasta.Read(path)
	if err != nil {
		return fasta.Fasta{}, err
	}
	// fasta.Read yields a single record with no name and no sequence for
	// an empty file.
	if len(records) == 0 || (records[0].Name == "" && records[0].Sequence == "") {
		return fasta.Fasta{}, fmt.Errorf("io: %s contains no records", path)
	}
	return requireRNA(records[0])
}

// requireRNA upper-cases a record's sequence and rejects it unless every
// base is RNA, the boundary check the driver relies on before ever
// constructing an energy.Oracle over it.
func requireRNA(r fasta.Fasta) (fasta.Fasta, error) {
	r.Sequence = strings.ToUpper(r.Sequence)
	if !checks.IsRNA(r.Sequence) {
		if checks.IsDNA(r.Sequence) {
			return fasta.Fasta{}, fmt.Errorf("io: %q looks like a DNA sequence (contains T, not U); rnaint expects RNA", r.Name)
		}
		return fasta.Fasta{}, fmt.Errorf("io: %q is not an RNA sequence", r.Name)
	}
	return r, nil
}

// ReadBatch reads every record from path1 and path2 and registers them in
// store, returning the handles as parallel slices for an all-pairs batch
// run. The two files need not have the same number of records; callers
// decide the pairing policy. Every record's sequence must be RNA.
func ReadBatch(store *interaction.SequenceStore, path1, path2 string) (seqs1, seqs2 []interaction.SequenceHandle, err error) {
	records1, err := fasta.Read(path1)
	if err != nil {
		return nil, nil, fmt.Errorf("io: reading %s: %w", path1, err)
	}
	records2, err := fasta.Read(path2)
	if err != nil {
		return nil, nil, fmt.Errorf("io: reading %s: %w", path2, err)
	}
	for _, r := range records1 {
		r, err := requireRNA(r)
		if err != nil {
			return nil, nil, fmt.Errorf("io: %s: %w", path1, err)
		}
		seqs1 = append(seqs1, store.Add(r.Name, r.Sequence))
	}
	for _, r := range records2 {
		r, err := requireRNA(r)
		if err != nil {
			return nil, nil, fmt.Errorf("io: %s: %w", path2, err)
		}
		seqs2 = append(seqs2, store.Add(r.Name, r.Sequence))
	}
	return seqs1, seqs2, nil
}
