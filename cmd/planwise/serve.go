package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planwise/retirement-engine/internal/calculation"
	"github.com/planwise/retirement-engine/internal/config"
	"github.com/planwise/retirement-engine/internal/server"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP planning service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default from settings, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	listen := flagListen
	if listen == "" {
		listen = settings.Server.Listen
	}

	logger := calculation.StderrLogger{Debug: flagVerbose}
	engine := calculation.NewPlanningEngine()
	engine.SetLogger(logger)

	opts := calculation.PlanOptions{
		Trials: settings.Engine.MonteCarloTrials,
		Seed:   settings.Engine.Seed,
	}
	srv := server.New(engine, opts, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(listen) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Infof("received %s, shutting down", sig)
		return srv.Shutdown()
	}
}
