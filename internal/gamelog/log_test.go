package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

func decidedPair(gameID string, week int, team, opp string, teamScore, oppScore int) []contracts.Game {
	teamWon := teamScore > oppScore
	oppWon := !teamWon
	return []contracts.Game{
		{
			GameID:    gameID,
			Season:    2024,
			Week:      week,
			Team:      team,
			Opponent:  opp,
			TeamScore: intPtr(teamScore),
			OppScore:  intPtr(oppScore),
			TeamWon:   &teamWon,
		},
		{
			GameID:    gameID,
			Season:    2024,
			Week:      week,
			Team:      opp,
			Opponent:  team,
			TeamScore: intPtr(oppScore),
			OppScore:  intPtr(teamScore),
			TeamWon:   &oppWon,
		},
	}
}

func undecidedPair(gameID string, week int, team, opp string) []contracts.Game {
	return []contracts.Game{
		{GameID: gameID, Season: 2024, Week: week, Team: team, Opponent: opp},
		{GameID: gameID, Season: 2024, Week: week, Team: opp, Opponent: team},
	}
}

func TestApplyOutcomesUndecidedGame(t *testing.T) {
	log := New(undecidedPair("g1", 10, "Georgia", "Alabama"))

	updated := log.ApplyOutcomes(map[string]string{"g1": "Georgia"})

	games := updated.Games()
	require.Len(t, games, 2)

	// Georgia's row: won, leading by exactly one.
	g := games[0]
	require.NotNil(t, g.TeamWon)
	assert.True(t, *g.TeamWon)
	assert.Equal(t, 1, *g.TeamScore)
	assert.Equal(t, 0, *g.OppScore)

	// Alabama's row stays symmetric.
	g = games[1]
	require.NotNil(t, g.TeamWon)
	assert.False(t, *g.TeamWon)
	assert.Equal(t, 0, *g.TeamScore)
	assert.Equal(t, 1, *g.OppScore)
}

func TestApplyOutcomesFlipsDecidedGame(t *testing.T) {
	log := New(decidedPair("g1", 5, "Texas", "Oklahoma", 21, 17))

	updated := log.ApplyOutcomes(map[string]string{"g1": "Oklahoma"})

	games := updated.Games()
	require.Len(t, games, 2)

	// Texas now loses; the forced winner leads the pre-existing high
	// score by one on both rows.
	assert.False(t, *games[0].TeamWon)
	assert.Equal(t, 21, *games[0].TeamScore)
	assert.Equal(t, 22, *games[0].OppScore)

	assert.True(t, *games[1].TeamWon)
	assert.Equal(t, 22, *games[1].TeamScore)
	assert.Equal(t, 21, *games[1].OppScore)
}

func TestApplyOutcomesUnknownGameID(t *testing.T) {
	log := New(decidedPair("g1", 5, "Texas", "Oklahoma", 21, 17))

	updated := log.ApplyOutcomes(map[string]string{"missing": "Texas"})

	assert.Equal(t, log.Games(), updated.Games())
}

func TestApplyOutcomesLogWithoutGameIDs(t *testing.T) {
	games := decidedPair("", 5, "Texas", "Oklahoma", 21, 17)
	log := New(games)

	updated := log.ApplyOutcomes(map[string]string{"g1": "Oklahoma"})

	// Nothing can match, the copy is returned untouched.
	assert.Equal(t, log.Games(), updated.Games())
	assert.True(t, *updated.Games()[0].TeamWon)
}

func TestApplyOutcomesDoesNotMutateCaller(t *testing.T) {
	log := New(undecidedPair("g1", 10, "Georgia", "Alabama"))

	_ = log.ApplyOutcomes(map[string]string{"g1": "Georgia"})

	for _, g := range log.Games() {
		assert.Nil(t, g.TeamWon)
		assert.Nil(t, g.TeamScore)
		assert.Nil(t, g.OppScore)
	}
}

func TestTeamGamesCutoffAndOrder(t *testing.T) {
	var games []contracts.Game
	games = append(games, decidedPair("g3", 3, "Georgia", "Kentucky", 31, 13)...)
	games = append(games, decidedPair("g1", 1, "Georgia", "Clemson", 34, 3)...)
	games = append(games, undecidedPair("g5", 5, "Georgia", "Auburn")...)
	log := New(games)

	all := log.TeamGames("Georgia", 2024, 5, false)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{all[0].Week, all[1].Week, all[2].Week})

	decided := log.TeamGames("Georgia", 2024, 5, true)
	require.Len(t, decided, 2)

	cut := log.TeamGames("Georgia", 2024, 2, false)
	require.Len(t, cut, 1)
	assert.Equal(t, "Clemson", cut[0].Opponent)
}

func TestTeamsAndCurrentWeek(t *testing.T) {
	var games []contracts.Game
	games = append(games, decidedPair("g1", 1, "Georgia", "Clemson", 34, 3)...)
	games = append(games, decidedPair("g2", 4, "Texas", "Oklahoma", 34, 3)...)
	games = append(games, undecidedPair("g3", 9, "Texas", "Georgia")...)
	log := New(games)

	assert.Equal(t, []string{"Clemson", "Georgia", "Oklahoma", "Texas"}, log.Teams(2024))
	assert.Equal(t, 4, log.CurrentWeek(2024))

	empty := New(nil)
	assert.Equal(t, 1, empty.CurrentWeek(2024))
}
