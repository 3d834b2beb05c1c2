package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// crisprCmd finds CRISPR PAM sites in a sequence
var crisprCmd = &cobra.Command{
	Use:                        "crispr [seq]",
	Short:                      "Find CRISPR PAM sites and their guide RNAs",
	Run:                        dna.CrisprCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dna-analyzer crispr -i gene.fa --pam NGG",
	Long: `Scan both strands for PAM sites (NGG for SpCas9 by default, N matching
any nucleotide). Each site is reported with the guide RNA region upstream of
the PAM, its flanking context and a target efficiency grade based on the
guide's GC content`,
}

// set flags
func init() {
	crisprCmd.Flags().StringP("in", "i", "", "Input file with the sequence <FASTA or raw text>")
	crisprCmd.Flags().StringP("out", "o", "", "Output file name for the site list (default stdout)")
	crisprCmd.Flags().String("pam", "NGG", "PAM pattern to search for (N matches any nucleotide)")
	crisprCmd.Flags().Int("guide-length", 20, "Guide RNA length upstream of the PAM")
	viper.BindPFlag("crispr.pam", crisprCmd.Flags().Lookup("pam"))
	viper.BindPFlag("crispr.guide-length", crisprCmd.Flags().Lookup("guide-length"))

	RootCmd.AddCommand(crisprCmd)
}
