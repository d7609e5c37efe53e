package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/internal/simulation"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a what-if scenario",
	Long: `Applies game outcome overrides and projects the ranking for one
week, printing the result next to the unmodified baseline.

Example:
  go run ./cmd/cfpsim simulate --season 2024 --week 10 \
      --outcome 401628456=Georgia --outcome 401628460=Oregon`,
	RunE: runSimulate,
}

var (
	simSeason   int
	simWeek     int
	simOutcomes []string
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&simSeason, "season", 0, "season year (defaults to SEASON)")
	simulateCmd.Flags().IntVar(&simWeek, "week", 0, "target week")
	simulateCmd.Flags().StringArrayVar(&simOutcomes, "outcome", nil, "game outcome override, game_id=winner (repeatable)")
	_ = simulateCmd.MarkFlagRequired("week")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	season := simSeason
	if season == 0 {
		season = a.cfg.Simulation.Season
	}

	outcomes, err := parseOutcomes(simOutcomes)
	if err != nil {
		return err
	}

	ctx := context.Background()

	games, err := a.repo.LoadGames(ctx, season)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
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

	req := simulation.ScenarioRequest{
		Log:              log,
		Teams:            teams,
		Season:           season,
		TargetWeek:       simWeek,
		Champions:        champions,
		PreviousRankings: rankings,
	}

	baseline, err := a.engine.SimulateScenario(ctx, req)
	if err != nil {
		return fmt.Errorf("baseline projection: %w", err)
	}

	if len(outcomes) == 0 {
		printRankings(fmt.Sprintf("Projected ranking, %d week %d", season, simWeek), baseline)
		return nil
	}

	req.Outcomes = outcomes
	scenario, err := a.engine.SimulateScenario(ctx, req)
	if err != nil {
		return fmt.Errorf("scenario projection: %w", err)
	}

	changes := simulation.CompareScenarios(baseline, scenario)

	fmt.Printf("Scenario vs baseline, %d week %d (%d overrides)\n\n", season, simWeek, len(outcomes))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTEAM\tBASELINE\tCHANGE")
	for _, c := range changes {
		if c.ScenarioRank == 0 {
			fmt.Fprintf(w, "-\t%s\t%d\tdropped\n", c.Team, c.BaselineRank)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%+d\n", c.ScenarioRank, c.Team, c.BaselineRank, c.Change)
	}
	return w.Flush()
}

// parseOutcomes parses repeated game_id=winner flags.
func parseOutcomes(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	outcomes := make(map[string]string, len(raw))
	for _, pair := range raw {
		gameID, winner, ok := strings.Cut(pair, "=")
		if !ok || gameID == "" || winner == "" {
			return nil, fmt.Errorf("invalid outcome %q, expected game_id=winner", pair)
		}
		outcomes[gameID] = winner
	}
	return outcomes, nil
}
