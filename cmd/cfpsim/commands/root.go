package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfpsim",
	Short: "College football playoff ranking projection engine",
	Long: `cfpsim projects weekly college football playoff rankings and
simulates what-if scenarios on top of them.

Usage:
  go run ./cmd/cfpsim [command]

Examples:
  go run ./cmd/cfpsim api
  go run ./cmd/cfpsim rankings --season 2024 --week 10
  go run ./cmd/cfpsim simulate --season 2024 --week 10 --outcome g123=Georgia
  go run ./cmd/cfpsim refresh`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
