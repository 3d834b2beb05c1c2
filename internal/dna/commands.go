package dna

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// AnalyzeCmd runs the full sequence summary against the input sequence
func AnalyzeCmd(cmd *cobra.Command, args []string) {
	flags, c := parseCmdFlags(cmd, args)

	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	summary := Summarize(record.Seq, c)

	if flags.report {
		fmt.Print(Report(summary))
		return
	}
	if err := write(flags.out, summary); err != nil {
		stderr.Fatal(err)
	}
}

// ORFsCmd finds the open reading frames in the input sequence
func ORFsCmd(cmd *cobra.Command, args []string) {
	flags, c := parseCmdFlags(cmd, args)

	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	orfs := FindORFs(Clean(record.Seq), c.ORF.MinAminoAcids)
	if err := write(flags.out, orfs); err != nil {
		stderr.Fatal(err)
	}
}

// TranslateCmd translates the input sequence in all six reading frames
func TranslateCmd(cmd *cobra.Command, args []string) {
	flags, _ := parseCmdFlags(cmd, args)

	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	frames := TranslateAllFrames(Clean(record.Seq))
	if err := write(flags.out, frames); err != nil {
		stderr.Fatal(err)
	}
}

// EnzymesCmd lists the known enzymes, or scans the input sequence for
// their recognition sites when a sequence was passed
func EnzymesCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 && !cmd.Flags().Changed("in") {
		PrintEnzymes()
		return
	}

	flags, _ := parseCmdFlags(cmd, args)
	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	sites := ScanRestrictionSites(Clean(record.Seq))
	if err := write(flags.out, sites); err != nil {
		stderr.Fatal(err)
	}
}

// AlignCmd aligns two sequences, globally by default or locally with
// --local
func AlignCmd(cmd *cobra.Command, args []string) {
	seq1, seq2 := parsePair(args)
	out, _ := cmd.Flags().GetString("out")
	local, _ := cmd.Flags().GetBool("local")

	var alignment Alignment
	if local {
		alignment = SmithWaterman(seq1, seq2)
	} else {
		alignment = NeedlemanWunsch(seq1, seq2)
	}

	result := struct {
		Alignment
		Stats AlignmentStats `json:"stats"`
	}{alignment, alignment.Stats()}

	if err := write(out, result); err != nil {
		stderr.Fatal(err)
	}
}

// MutationsCmd diffs two sequences, reporting SNPs and indels
func MutationsCmd(cmd *cobra.Command, args []string) {
	ref, alt := parsePair(args)
	out, _ := cmd.Flags().GetString("out")

	if err := write(out, FindMutations(ref, alt)); err != nil {
		stderr.Fatal(err)
	}
}

// CrisprCmd scans the input sequence for CRISPR PAM sites
func CrisprCmd(cmd *cobra.Command, args []string) {
	flags, c := parseCmdFlags(cmd, args)

	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	result := FindPAMSites(Clean(record.Seq), c.CRISPR.PAM, c.CRISPR.GuideLength)
	if err := write(flags.out, result); err != nil {
		stderr.Fatal(err)
	}
}

// PrimersCmd designs a PCR primer pair against the input sequence
func PrimersCmd(cmd *cobra.Command, args []string) {
	flags, c := parseCmdFlags(cmd, args)

	record, err := flags.first()
	if err != nil {
		stderr.Fatal(err)
	}

	result := DesignPrimers(
		Clean(record.Seq),
		c.Primers.Length,
		c.Primers.ProductMin,
		c.Primers.ProductMax,
		c.Primers.PrimerConc,
		c.Primers.SaltConc,
	)
	if err := write(flags.out, result); err != nil {
		stderr.Fatal(err)
	}
}

// parsePair reads the two sequences of a pairwise command. Each
// argument is a sequence literal, or a file path when one exists at
// that location
func parsePair(args []string) (string, string) {
	if len(args) != 2 {
		stderr.Fatalf("expecting two sequences (or two sequence files). %d passed\n", len(args))
	}

	seqs := make([]string, 2)
	for i, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			records, err := read(arg)
			if err != nil {
				stderr.Fatal(err)
			}
			seqs[i] = Clean(records[0].Seq)
			continue
		}
		seqs[i] = Clean(arg)
	}

	return seqs[0], seqs[1]
}
