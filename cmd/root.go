// Package cmd is for command line interactions with the dna-analyzer application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use: "dna-analyzer",
	Short: `Analyze DNA sequences: composition, melting temperature, ORFs,
codon usage, restriction sites, alignments, mutations, CRISPR sites and primers`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "Settings file with analysis parameters <YAML>")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}
