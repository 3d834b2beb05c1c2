package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// translateCmd translates a sequence in all six reading frames
var translateCmd = &cobra.Command{
	Use:                        "translate [seq]",
	Short:                      "Translate a sequence in all six reading frames",
	Run:                        dna.TranslateCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Translate the sequence and its reverse complement at each of the three
frame offsets. Each translation truncates at the first stop codon`,
}

// set flags
func init() {
	translateCmd.Flags().StringP("in", "i", "", "Input file with the sequence <FASTA or raw text>")
	translateCmd.Flags().StringP("out", "o", "", "Output file name for the translations (default stdout)")

	RootCmd.AddCommand(translateCmd)
}
