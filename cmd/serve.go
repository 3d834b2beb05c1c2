package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fyodor12344/DNA-ANALYZER/config"
	"github.com/fyodor12344/DNA-ANALYZER/internal/dna"
)

// serveCmd exposes the analyses over an HTTP JSON API
var serveCmd = &cobra.Command{
	Use:                        "serve",
	Short:                      "Serve the analyses over an HTTP JSON API",
	SuggestionsMinimumDistance: 2,
	Long: `Start an HTTP server with JSON endpoints for the analyses:

	POST /api/analyze    {"sequence"}
	POST /api/mutations  {"sequence1", "sequence2"}
	POST /api/align      {"sequence1", "sequence2", "algorithm"}
	POST /api/crispr     {"sequence", "pam"}
	POST /api/primers    {"sequence"}
	GET  /api/health

Requests are rate limited per client IP`,
	Run: func(cmd *cobra.Command, args []string) {
		server := dna.NewServer(config.New())
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	},
}

// set flags
func init() {
	serveCmd.Flags().StringP("addr", "a", ":8000", "Address to listen on")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	RootCmd.AddCommand(serveCmd)
}
