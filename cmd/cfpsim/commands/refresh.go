package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gridironlabs/cfpsim/internal/scheduler/jobs"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored weekly projection once",
	Long: `Runs the rankings refresh immediately, outside its schedule:
recomputes the current week's projection for the configured season,
persists it and warms the cache.

Example:
  go run ./cmd/cfpsim refresh`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	job := jobs.NewRefreshRankingsJob(
		a.repo, a.engine, a.cache,
		a.cfg.Simulation.Season,
		a.cfg.Simulation.RefreshSchedule,
		a.logger,
	)

	return job.Run(context.Background())
}
