package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

func winPair(week int, winner, loser string) []contracts.Game {
	won, lost := true, false
	return []contracts.Game{
		{Season: 2024, Week: week, Team: winner, Opponent: loser, TeamWon: &won},
		{Season: 2024, Week: week, Team: loser, Opponent: winner, TeamWon: &lost},
	}
}

func entry(team string, score float64) contracts.RankingEntry {
	return contracts.RankingEntry{Team: team, PredictedScore: score}
}

func teamsInOrder(entries []contracts.RankingEntry) []string {
	teams := make([]string, len(entries))
	for i, e := range entries {
		teams[i] = e.Team
	}
	return teams
}

func TestApplyHeadToHeadSwapsAdjacentPair(t *testing.T) {
	// C beat B on the field; their scores are within the threshold, so
	// C moves above B. A is untouched.
	log := gamelog.New(winPair(5, "C", "B"))
	entries := []contracts.RankingEntry{
		entry("A", 0.2),
		entry("B", 0.2),
		entry("C", 0.25),
	}

	result := ApplyHeadToHead(entries, log, 2024, 10)

	assert.Equal(t, []string{"A", "C", "B"}, teamsInOrder(result))
	for i, e := range result {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestApplyHeadToHeadRespectsThreshold(t *testing.T) {
	log := gamelog.New(winPair(5, "B", "A"))
	entries := []contracts.RankingEntry{
		entry("A", 0.1),
		entry("B", 0.5),
	}

	result := ApplyHeadToHead(entries, log, 2024, 10)

	// The gap exceeds the comparability threshold; the score order
	// stands even against a head-to-head result.
	assert.Equal(t, []string{"A", "B"}, teamsInOrder(result))
}

func TestApplyHeadToHeadIgnoresNonAdjacentViolation(t *testing.T) {
	// C beat A, but B sits between them and no adjacent pair
	// contradicts a direct result, so nothing moves.
	log := gamelog.New(winPair(5, "C", "A"))
	entries := []contracts.RankingEntry{
		entry("A", 0.10),
		entry("B", 0.15),
		entry("C", 0.20),
	}

	result := ApplyHeadToHead(entries, log, 2024, 10)

	assert.Equal(t, []string{"A", "B", "C"}, teamsInOrder(result))
}

func TestApplyHeadToHeadSortsInputByScore(t *testing.T) {
	log := gamelog.New(nil)
	entries := []contracts.RankingEntry{
		entry("Second", 2.0),
		entry("First", 1.0),
	}

	result := ApplyHeadToHead(entries, log, 2024, 10)

	require.Len(t, result, 2)
	assert.Equal(t, []string{"First", "Second"}, teamsInOrder(result))
	assert.Equal(t, 1, result[0].Rank)
	assert.Equal(t, 2, result[1].Rank)

	// Caller's slice is left alone.
	assert.Equal(t, "Second", entries[0].Team)
	assert.Equal(t, 0, entries[0].Rank)
}

func TestApplyHeadToHeadIgnoresFutureGames(t *testing.T) {
	// The head-to-head win happens after the ranking week, so it
	// cannot influence this week's order.
	log := gamelog.New(winPair(12, "B", "A"))
	entries := []contracts.RankingEntry{
		entry("A", 0.2),
		entry("B", 0.25),
	}

	result := ApplyHeadToHead(entries, log, 2024, 10)

	assert.Equal(t, []string{"A", "B"}, teamsInOrder(result))
}

func TestApplyHeadToHeadEmptyInput(t *testing.T) {
	result := ApplyHeadToHead(nil, gamelog.New(nil), 2024, 10)
	assert.Empty(t, result)
}
