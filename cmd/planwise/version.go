package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the planwise version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("planwise " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
