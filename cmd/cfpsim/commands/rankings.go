package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/internal/simulation"
)

// rankingsCmd represents the rankings command
var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Print the projected ranking for a week",
	Long: `Projects and prints the ranking for one week of a season with no
outcome overrides. Omitting --week uses the latest week in the game
log.

Example:
  go run ./cmd/cfpsim rankings --season 2024 --week 10`,
	RunE: runRankings,
}

var (
	rankSeason int
	rankWeek   int
	rankTop    int
)

func init() {
	rootCmd.AddCommand(rankingsCmd)

	rankingsCmd.Flags().IntVar(&rankSeason, "season", 0, "season year (defaults to SEASON)")
	rankingsCmd.Flags().IntVar(&rankWeek, "week", 0, "week (defaults to the current week)")
	rankingsCmd.Flags().IntVar(&rankTop, "top", 25, "number of teams to print, 0 for all")
}

func runRankings(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	season := rankSeason
	if season == 0 {
		season = a.cfg.Simulation.Season
	}

	ctx := context.Background()

	games, err := a.repo.LoadGames(ctx, season)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	if len(games) == 0 {
		return fmt.Errorf("no games found for season %d", season)
	}
	teams, err := a.repo.LoadTeams(ctx, season)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	rankings, err := a.repo.LoadRankings(ctx, season)
	if err != nil {
		return fmt.Errorf("load rankings: %w", err)
	}
	champions, err := a.repo.LoadChampions(ctx, season)
	if err != nil {
		return fmt.Errorf("load champions: %w", err)
	}

	log := gamelog.New(games)
	week := rankWeek
	if week == 0 {
		week = log.CurrentWeek(season)
	}

	entries, err := a.engine.SimulateScenario(ctx, simulation.ScenarioRequest{
		Log:              log,
		Teams:            teams,
		Season:           season,
		TargetWeek:       week,
		Champions:        champions,
		PreviousRankings: rankings,
	})
	if err != nil {
		return fmt.Errorf("project week %d: %w", week, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no ranking produced for %d week %d", season, week)
	}

	if rankTop > 0 && len(entries) > rankTop {
		entries = entries[:rankTop]
	}

	printRankings(fmt.Sprintf("Projected ranking, %d week %d", season, week), entries)
	return nil
}

// printRankings writes a ranking as an aligned table.
func printRankings(title string, entries []contracts.RankingEntry) {
	fmt.Println(title)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTEAM\tSCORE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%.4f\n", e.Rank, e.Team, e.PredictedScore)
	}
	_ = w.Flush()
}
