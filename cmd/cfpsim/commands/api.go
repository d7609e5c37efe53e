package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridironlabs/cfpsim/internal/api"
	"github.com/gridironlabs/cfpsim/internal/api/handlers"
	"github.com/gridironlabs/cfpsim/internal/scheduler"
	"github.com/gridironlabs/cfpsim/internal/scheduler/jobs"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server and the weekly refresh scheduler.

Endpoints:
  GET  /health                          - Health check
  GET  /api/seasons/{season}            - Season games, teams, rankings
  GET  /api/rankings/{season}/{week}    - Projected weekly ranking
  POST /api/simulate                    - Single-week scenario
  POST /api/simulate/weekly             - Multi-week iterative projection

Example:
  go run ./cmd/cfpsim api
  go run ./cmd/cfpsim api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort        string
	disableRefresh bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
	apiCmd.Flags().BoolVar(&disableRefresh, "no-refresh", false, "disable the scheduled rankings refresh")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if apiPort != "" {
		a.cfg.Port = apiPort
	}

	simHandler := handlers.NewSimulationHandler(a.repo, a.engine, a.logger)
	rankHandler := handlers.NewRankingsHandler(a.repo, a.engine, a.cache, a.logger)

	router := api.NewRouter(simHandler, rankHandler, a.logger)
	server := api.New(a.cfg, a.logger, router)

	var sched *scheduler.Scheduler
	if !disableRefresh {
		sched = scheduler.New(a.logger)
		refreshJob := jobs.NewRefreshRankingsJob(
			a.repo, a.engine, a.cache,
			a.cfg.Simulation.Season,
			a.cfg.Simulation.RefreshSchedule,
			a.logger,
		)
		if err := sched.AddJob(refreshJob); err != nil {
			return fmt.Errorf("register refresh job: %w", err)
		}
		sched.Start()
	}

	go func() {
		if err := server.Start(); err != nil {
			a.logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", a.cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Info("Server stopped")
	return nil
}
