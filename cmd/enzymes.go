package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// enzymesCmd lists the restriction enzymes, or scans a sequence for
// their recognition sites
var enzymesCmd = &cobra.Command{
	Use:                        "enzymes [seq]",
	Short:                      "List restriction enzymes or scan a sequence for their sites",
	Run:                        dna.EnzymesCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Without an argument, lists every known enzyme by name along with its
recognition sequence:

	<Name>: <Recognition sequence>

With a sequence (argument or --in), reports each enzyme's cut positions in
the sequence, most sites first. Enzymes without hits are omitted`,
	Aliases: []string{"enzyme"},
}

// set flags
func init() {
	enzymesCmd.Flags().StringP("in", "i", "", "Input file with the sequence <FASTA or raw text>")
	enzymesCmd.Flags().StringP("out", "o", "", "Output file name for the site list (default stdout)")

	RootCmd.AddCommand(enzymesCmd)
}
