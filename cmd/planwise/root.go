// Command planwise computes retirement plans from profile files and serves
// them over HTTP.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSettings string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Retirement planning calculation engine",
	Long: "Compute retirement needs, savings projections, Monte Carlo outcomes,\n" +
		"withdrawal strategies, and readiness scoring from a profile file.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default ~/.config/planwise/settings.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine progress to stderr")
}
