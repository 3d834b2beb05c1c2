package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// orfsCmd finds the open reading frames in a sequence
var orfsCmd = &cobra.Command{
	Use:                        "orfs [seq]",
	Short:                      "Find open reading frames across both strands and all three frames",
	Run:                        dna.ORFsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dna-analyzer orfs -i gene.fa --min-aa 25",
	Long: `Scan the sequence and its reverse complement in all three frame offsets
for ATG-anchored reading frames. Each ORF runs to its nearest in-frame stop
codon, or to the strand end when none is found (a partial ORF). ORFs
translating to fewer than the minimum amino acids are dropped. Results are
sorted longest first`,
}

// set flags
func init() {
	orfsCmd.Flags().StringP("in", "i", "", "Input file with the sequence <FASTA or raw text>")
	orfsCmd.Flags().StringP("out", "o", "", "Output file name for the ORF list (default stdout)")
	orfsCmd.Flags().Int("min-aa", 10, "Minimum translated length of a reported ORF in amino acids")
	viper.BindPFlag("orf.min-aa", orfsCmd.Flags().Lookup("min-aa"))

	RootCmd.AddCommand(orfsCmd)
}
