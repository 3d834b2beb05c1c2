package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// mutationsCmd diffs a reference sequence against an alternate
var mutationsCmd = &cobra.Command{
	Use:                        "mutations [ref] [alt]",
	Short:                      "Find mutations between a reference and an alternate sequence",
	Run:                        dna.MutationsCmd,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.ExactArgs(2),
	Long: `Compare two sequences position by position. Single-base differences are
reported as SNPs and classified by their codon effect (Silent, Missense,
Nonsense); runs of extra or missing bases are reported as frameshift
insertions and deletions. Each argument is a sequence literal or a file path`,
	Aliases: []string{"snps"},
}

// set flags
func init() {
	mutationsCmd.Flags().StringP("out", "o", "", "Output file name for the mutation report (default stdout)")

	RootCmd.AddCommand(mutationsCmd)
}
