package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// SeasonRepository loads a season's game log, teams, rankings and
// champions from PostgreSQL and persists projected rankings. It is
// the storage boundary of the engine; everything it returns is plain
// in-memory data the core operates on.
type SeasonRepository struct {
	pool *pgxpool.Pool
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(pool *pgxpool.Pool) *SeasonRepository {
	return &SeasonRepository{pool: pool}
}

// LoadGames returns every game row for a season.
func (r *SeasonRepository) LoadGames(ctx context.Context, season int) ([]contracts.Game, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT game_id, season, week, team, opponent,
		       team_score, opp_score, team_won,
		       is_conference_game, COALESCE(opp_conference, '')
		FROM cfb.games
		WHERE season = $1
		ORDER BY week, game_id, team
	`, season)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []contracts.Game
	for rows.Next() {
		var g contracts.Game
		err := rows.Scan(
			&g.GameID,
			&g.Season,
			&g.Week,
			&g.Team,
			&g.Opponent,
			&g.TeamScore,
			&g.OppScore,
			&g.TeamWon,
			&g.IsConferenceGame,
			&g.OppConference,
		)
		if err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// LoadTeams returns the team -> conference mapping for a season.
func (r *SeasonRepository) LoadTeams(ctx context.Context, season int) ([]contracts.Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_id, season, COALESCE(conference, '')
		FROM cfb.teams
		WHERE season = $1
		ORDER BY team_id
	`, season)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	var teams []contracts.Team
	for rows.Next() {
		var t contracts.Team
		if err := rows.Scan(&t.TeamID, &t.Season, &t.Conference); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// LoadRankings returns the stored ranking table for a season, used as
// the prior-week signal and as the weekly baseline.
func (r *SeasonRepository) LoadRankings(ctx context.Context, season int) (*contracts.RankingTable, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_id, season, week, rank
		FROM cfb.rankings
		WHERE season = $1
		ORDER BY week, rank
	`, season)
	if err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}
	defer rows.Close()

	var table []contracts.RankingRow
	for rows.Next() {
		var row contracts.RankingRow
		if err := rows.Scan(&row.TeamID, &row.Season, &row.Week, &row.Rank); err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(table) == 0 {
		return nil, nil
	}
	return contracts.NewRankingTable(table), nil
}

// LoadChampions returns the conference champions for a season.
func (r *SeasonRepository) LoadChampions(ctx context.Context, season int) ([]contracts.ConferenceChampion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT season, conference, champion_team_id
		FROM cfb.conference_champions
		WHERE season = $1
	`, season)
	if err != nil {
		return nil, fmt.Errorf("query champions: %w", err)
	}
	defer rows.Close()

	var champions []contracts.ConferenceChampion
	for rows.Next() {
		var ch contracts.ConferenceChampion
		if err := rows.Scan(&ch.Season, &ch.Conference, &ch.TeamID); err != nil {
			return nil, fmt.Errorf("scan champion row: %w", err)
		}
		champions = append(champions, ch)
	}

	return champions, rows.Err()
}

// SaveProjections upserts a projected ranking for (season, week).
func (r *SeasonRepository) SaveProjections(ctx context.Context, season, week int, entries []contracts.RankingEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO cfb.projected_rankings (season, week, team_id, rank, predicted_score, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (season, week, team_id)
			DO UPDATE SET rank = EXCLUDED.rank,
			              predicted_score = EXCLUDED.predicted_score,
			              updated_at = NOW()
		`, season, week, e.Team, e.Rank, e.PredictedScore)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("save projection: %w", err)
		}
	}

	return nil
}
