package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// analyzeCmd runs every analyzer against one sequence and writes the
// aggregate summary
var analyzeCmd = &cobra.Command{
	Use:                        "analyze [seq]",
	Short:                      "Analyze a sequence: composition, Tm, ORFs, codon usage, restriction sites",
	Run:                        dna.AnalyzeCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dna-analyzer analyze ATGGCTAGCTAACTGA\n  dna-analyzer analyze -i gene.fa -o gene.json",
	Long: `Clean the input sequence and run the full analysis suite against it:
nucleotide counts, GC/AT content, melting temperature, molecular weight,
reverse complement, open reading frames in all six reading frames, frame 1
codon usage, six-frame translation and restriction enzyme sites.

The sequence is read from the argument, from --in (raw text or FASTA), or
from the first fasta file in the working directory`,
	Aliases: []string{"summary"},
}

// set flags
func init() {
	analyzeCmd.Flags().StringP("in", "i", "", "Input file with the sequence <FASTA or raw text>")
	analyzeCmd.Flags().StringP("out", "o", "", "Output file name for the JSON summary (default stdout)")
	analyzeCmd.Flags().BoolP("report", "r", false, "Render a plain text report instead of JSON")

	RootCmd.AddCommand(analyzeCmd)
}
