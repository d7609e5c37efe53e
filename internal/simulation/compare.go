package simulation

import (
	"sort"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// RankChange is one team's movement between a baseline and a scenario
// ranking. Positive Change means the team moved up under the
// scenario.
type RankChange struct {
	Team         string `json:"team"`
	BaselineRank int    `json:"baseline_rank"`
	ScenarioRank int    `json:"scenario_rank"`
	Change       int    `json:"rank_change"`
}

// CompareScenarios diffs two rankings team by team, ordered by
// scenario rank. Teams present in only one ranking get a zero rank on
// the missing side.
func CompareScenarios(baseline, scenario []contracts.RankingEntry) []RankChange {
	baseRanks := make(map[string]int, len(baseline))
	for _, e := range baseline {
		baseRanks[e.Team] = e.Rank
	}

	changes := make([]RankChange, 0, len(scenario))
	seen := make(map[string]bool, len(scenario))
	for _, e := range scenario {
		base := baseRanks[e.Team]
		change := 0
		if base > 0 {
			change = base - e.Rank
		}
		changes = append(changes, RankChange{
			Team:         e.Team,
			BaselineRank: base,
			ScenarioRank: e.Rank,
			Change:       change,
		})
		seen[e.Team] = true
	}

	for _, e := range baseline {
		if !seen[e.Team] {
			changes = append(changes, RankChange{
				Team:         e.Team,
				BaselineRank: e.Rank,
			})
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		// Teams dropped from the scenario sort last.
		if changes[i].ScenarioRank == 0 || changes[j].ScenarioRank == 0 {
			return changes[j].ScenarioRank == 0 && changes[i].ScenarioRank != 0
		}
		return changes[i].ScenarioRank < changes[j].ScenarioRank
	})

	return changes
}
