package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwise/retirement-engine/internal/calculation"
	"github.com/planwise/retirement-engine/internal/config"
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/planwise/retirement-engine/internal/output"
)

var (
	flagInput  string
	flagFormat string
	flagOutput string
	flagTrials int
	flagSeed   int64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a retirement plan from a profile file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Profile file, YAML or JSON (required)")
	planCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Report format: console, console-lite, json, csv, detailed-csv, chart, all")
	planCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout")
	planCmd.Flags().IntVar(&flagTrials, "trials", 0, "Monte Carlo trial count (default from settings)")
	planCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Monte Carlo base seed (default from settings)")
	planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}

	opts := calculation.PlanOptions{
		Trials: settings.Engine.MonteCarloTrials,
		Seed:   settings.Engine.Seed,
	}
	if cmd.Flags().Changed("trials") {
		opts.Trials = flagTrials
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = flagSeed
	}

	format := flagFormat
	if format == "" {
		format = settings.Output.Format
	}
	outputPath := flagOutput
	if outputPath == "" {
		outputPath = settings.Output.Path
	}

	profile, err := config.NewInputParser().LoadFromFile(flagInput)
	if err != nil {
		return err
	}

	engine := calculation.NewPlanningEngine()
	if flagVerbose {
		engine.SetLogger(calculation.StderrLogger{Debug: true})
	}

	result, err := engine.ComputePlan(cmd.Context(), profile, opts)
	if err != nil {
		return err
	}

	return writeReport(result, format, outputPath)
}

// writeReport sends the formatted result to the requested destination: an
// explicit file, stdout for text formats, or a timestamped file for binary
// and composite formats.
func writeReport(result *domain.PlanResult, format, path string) error {
	if output.NormalizeFormatName(format) == "all" {
		if err := output.GenerateReport(result, "all"); err != nil {
			return err
		}
		fmt.Println("report files written to current directory")
		return nil
	}

	f, err := output.ResolveFormatter(format)
	if err != nil {
		return err
	}

	if path != "" {
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", path)
		return nil
	}

	// a PNG does not belong on a terminal
	if f.Name() == "chart" {
		name, err := output.WriteFormatted(f, result, output.DefaultExtension(format))
		if err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", name)
		return nil
	}

	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
