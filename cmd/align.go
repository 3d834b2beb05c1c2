package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// alignCmd aligns two sequences pairwise
var alignCmd = &cobra.Command{
	Use:                        "align [seq1] [seq2]",
	Short:                      "Align two sequences (Needleman-Wunsch or Smith-Waterman)",
	Run:                        dna.AlignCmd,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.ExactArgs(2),
	Example:                    "  dna-analyzer align ATGGCTAGC ATGGCAAGC\n  dna-analyzer align ref.fa sample.fa --local",
	Long: `Globally align two sequences with Needleman-Wunsch (match 1, mismatch -1,
gap -2), or locally with Smith-Waterman (match 2, mismatch -1, gap -1) when
--local is passed. Each argument is a sequence literal or a file path.
Alignment statistics are reported alongside the aligned sequences`,
}

// set flags
func init() {
	alignCmd.Flags().StringP("out", "o", "", "Output file name for the alignment (default stdout)")
	alignCmd.Flags().BoolP("local", "l", false, "Use local (Smith-Waterman) alignment")

	RootCmd.AddCommand(alignCmd)
}
