package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// primersCmd designs a PCR primer pair for a template sequence
var primersCmd = &cobra.Command{
	Use:                        "primers [seq]",
	Short:                      "Design a PCR primer pair for a template sequence",
	Run:                        dna.PrimersCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Pick the best forward primer near the template's 5' end and the best
compatible reverse primer within the product size window. Primers are scored
on length, nearest-neighbor Tm, GC content, GC clamp, nucleotide runs,
hairpin potential and 3' self-complementarity. The chosen pair is checked
for primer dimers and a PCR protocol is suggested`,
}

// set flags
func init() {
	primersCmd.Flags().StringP("in", "i", "", "Input file with the template sequence <FASTA or raw text>")
	primersCmd.Flags().StringP("out", "o", "", "Output file name for the primer pair (default stdout)")
	primersCmd.Flags().Int("length", 20, "Primer length in bp")
	primersCmd.Flags().Int("product-min", 200, "Minimum PCR product size in bp")
	primersCmd.Flags().Int("product-max", 500, "Maximum PCR product size in bp")
	viper.BindPFlag("primers.length", primersCmd.Flags().Lookup("length"))
	viper.BindPFlag("primers.product-min", primersCmd.Flags().Lookup("product-min"))
	viper.BindPFlag("primers.product-max", primersCmd.Flags().Lookup("product-max"))

	RootCmd.AddCommand(primersCmd)
}
