package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwise/retirement-engine/internal/config"
	"github.com/planwise/retirement-engine/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter profile to plan from",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	path := "profile.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}
	profile := config.NewInputParser().CreateExampleProfile()
	if err := output.SaveProfile(profile, path); err != nil {
		return err
	}
	fmt.Printf("starter profile written to %s\n", path)
	return nil
}
