package features

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/pkg/logger"
)

func newTestBuilder() *Builder {
	log := logger.NewNop()
	return NewBuilder(NewCalculator(log), log)
}

func TestBuildOneRowPerTeam(t *testing.T) {
	b := newTestBuilder()
	log := gamelog.New([]contracts.Game{
		game(1, "Georgia", "Alabama", true),
		game(1, "Alabama", "Georgia", false),
	})

	rows := b.Build(context.Background(), MatrixInput{
		Log:    log,
		Season: testSeason,
		Week:   1,
	})
	require.Len(t, rows, 2)

	byTeam := make(map[string]contracts.FeatureRow)
	for _, row := range rows {
		byTeam[row.Team] = row
	}

	georgia := byTeam["Georgia"]
	assert.Equal(t, 1.0, georgia.Value("wins"))
	assert.Equal(t, 0.0, georgia.Value("losses"))
	assert.Equal(t, 1.0, georgia.Value("win_pct"))

	alabama := byTeam["Alabama"]
	assert.Equal(t, 0.0, alabama.Value("wins"))
	assert.Equal(t, 1.0, alabama.Value("losses"))
}

func TestBuildUsesTeamsTableWhenPresent(t *testing.T) {
	b := newTestBuilder()
	log := gamelog.New([]contracts.Game{
		game(1, "Georgia", "Alabama", true),
	})

	rows := b.Build(context.Background(), MatrixInput{
		Log:    log,
		Season: testSeason,
		Week:   1,
		Teams: []contracts.Team{
			{TeamID: "Georgia", Season: testSeason, Conference: "SEC"},
			{TeamID: "Idle State", Season: testSeason, Conference: "MAC"},
			{TeamID: "Old Row", Season: 2020, Conference: "ACC"},
		},
	})
	require.Len(t, rows, 2)

	byTeam := make(map[string]contracts.FeatureRow)
	for _, row := range rows {
		byTeam[row.Team] = row
	}

	// A team with no games still gets a zero-valued row.
	idle, ok := byTeam["Idle State"]
	require.True(t, ok)
	assert.Equal(t, 0.0, idle.Value("games_played"))
	assert.Equal(t, "MAC", idle.Conference)

	_, ok = byTeam["Old Row"]
	assert.False(t, ok)
}

func TestBuildChampionGating(t *testing.T) {
	b := newTestBuilder()
	log := gamelog.New([]contracts.Game{
		game(14, "Georgia", "Alabama", true),
	})
	champions := []contracts.ConferenceChampion{
		{Season: testSeason, Conference: "SEC", TeamID: "Georgia"},
	}

	find := func(rows []contracts.FeatureRow, team string) contracts.FeatureRow {
		for _, row := range rows {
			if row.Team == team {
				return row
			}
		}
		t.Fatalf("team %s not in matrix", team)
		return contracts.FeatureRow{}
	}

	// Before the final ranking week the champion flag stays off.
	rows := b.Build(context.Background(), MatrixInput{
		Log:       log,
		Season:    testSeason,
		Week:      14,
		Champions: champions,
	})
	assert.Equal(t, 0.0, find(rows, "Georgia").Value("is_conference_champion"))

	rows = b.Build(context.Background(), MatrixInput{
		Log:       log,
		Season:    testSeason,
		Week:      FinalRankingWeek,
		Champions: champions,
	})
	assert.Equal(t, 1.0, find(rows, "Georgia").Value("is_conference_champion"))
}

func TestBuildEmptyLog(t *testing.T) {
	b := newTestBuilder()
	rows := b.Build(context.Background(), MatrixInput{
		Log:    gamelog.New(nil),
		Season: testSeason,
		Week:   1,
	})
	assert.Nil(t, rows)
}

func TestBuildStopsOnCancelledContext(t *testing.T) {
	b := newTestBuilder()
	log := gamelog.New([]contracts.Game{
		game(1, "Georgia", "Alabama", true),
		game(1, "Alabama", "Georgia", false),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := b.Build(ctx, MatrixInput{Log: log, Season: testSeason, Week: 1})
	assert.Empty(t, rows)
}
