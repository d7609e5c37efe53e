package features

import (
	"context"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/pkg/logger"
)

// MatrixInput carries everything needed to build one week's feature
// matrix.
type MatrixInput struct {
	Log              *gamelog.Log
	Teams            []contracts.Team
	Season           int
	Week             int
	Champions        []contracts.ConferenceChampion
	PreviousRankings *contracts.RankingTable
}

// Builder assembles one feature row per team per week by invoking the
// calculator for every team.
type Builder struct {
	calc   *Calculator
	logger *logger.Logger
}

// NewBuilder creates a new feature matrix builder
func NewBuilder(calc *Calculator, log *logger.Logger) *Builder {
	return &Builder{calc: calc, logger: log}
}

// Build computes the feature matrix for (season, week). The record
// snapshot table is built once and shared across all per-team
// computations. Teams with empty schedules still get a row of
// zero-valued defaults.
func (b *Builder) Build(ctx context.Context, in MatrixInput) []contracts.FeatureRow {
	teams := teamIDs(in.Teams, in.Season)
	if len(teams) == 0 {
		teams = in.Log.Teams(in.Season)
	}
	if len(teams) == 0 {
		return nil
	}

	records := gamelog.BuildRecordTable(in.Log, in.Season, in.Week)
	comparison := in.PreviousRankings.TopTeams(in.Season, priorWeek(in.Week), maxComparisonTeams)
	finalWeek := in.Week >= FinalRankingWeek && len(in.Champions) > 0

	rows := make([]contracts.FeatureRow, 0, len(teams))
	for _, team := range teams {
		select {
		case <-ctx.Done():
			return rows
		default:
		}
		rows = append(rows, b.buildRow(in, team, records, comparison, finalWeek))
	}

	b.logger.WithFields(map[string]interface{}{
		"season": in.Season,
		"week":   in.Week,
		"teams":  len(rows),
	}).Debug("Feature matrix built")

	return rows
}

// buildRow flattens every feature group into one row's value map.
func (b *Builder) buildRow(
	in MatrixInput,
	team string,
	records *gamelog.RecordTable,
	comparison []string,
	finalWeek bool,
) contracts.FeatureRow {
	log := in.Log
	season, week := in.Season, in.Week

	record := b.calc.Record(log, team, season, week)
	sos := b.calc.ScheduleStrength(log, team, season, week, records, in.PreviousRankings)
	quality := b.calc.QualityWins(log, team, season, week, records, in.PreviousRankings)
	strength := b.calc.RecordStrength(log, team, season, week, records, in.PreviousRankings)
	conference := b.calc.Conference(in.Teams, team, season, in.Champions, finalWeek)
	momentum := b.calc.Momentum(log, team, season, week)
	h2h := b.calc.HeadToHead(log, team, season, week, in.PreviousRankings)
	common := b.calc.CommonOpponents(log, team, season, week, comparison)
	control := b.calc.GameControl(log, team, season, week)
	points := b.calc.PointStats(log, team, season, week)

	values := map[string]float64{
		"wins":                        record.Wins,
		"losses":                      record.Losses,
		"games_played":                record.GamesPlayed,
		"win_pct":                     record.WinPct,
		"conference_wins":             record.ConferenceWins,
		"conference_losses":           record.ConferenceLosses,
		"non_conference_wins":         record.NonConferenceWins,
		"non_conference_losses":       record.NonConferenceLosses,
		"sos_score":                   sos.SOSScore,
		"opponents_avg_wins":          sos.OpponentsAvgWins,
		"opponents_avg_win_pct":       sos.OpponentsAvgWinPct,
		"weighted_sos_score":          sos.WeightedSOSScore,
		"sos_of_sos":                  sos.SOSOfSOS,
		"wins_vs_winning_teams":       quality.WinsVsWinningTeams,
		"wins_vs_power5":              quality.WinsVsPower5,
		"wins_vs_top25":               quality.WinsVsTop25,
		"notable_wins":                quality.NotableWins,
		"bad_losses":                  quality.BadLosses,
		"losses_vs_top10":             quality.LossesVsTop10,
		"record_strength_score":       strength.Score,
		"record_strength_per_game":    strength.PerGame,
		"is_power5":                   boolFeature(conference.IsPower5),
		"is_conference_champion":      boolFeature(conference.IsConferenceChampion),
		"current_win_streak":          momentum.CurrentWinStreak,
		"last_game_result":            momentum.LastGameResult,
		"last_game_opponent_quality":  momentum.LastGameOpponentQuality,
		"head_to_head_wins_vs_ranked": h2h.WinsVsRanked,
		"head_to_head_wins_vs_top10":  h2h.WinsVsTop10,
		"head_to_head_wins_vs_top25":  h2h.WinsVsTop25,
		"common_opponents_count":      common.Count,
		"common_opponents_win_pct":    common.WinPct,
		"common_opponents_avg_margin": common.AvgMargin,
		"games_won_by_multiple_scores": control.WonByMultipleScores,
		"games_never_trailing":         control.NeverTrailing,
		"dominant_wins_pct":            control.DominantWinsPct,
		"points_per_game":              points.PointsPerGame,
		"points_allowed_per_game":      points.PointsAllowedPerGame,
		"point_differential":           points.PointDifferential,
		"elo_rating":                   b.calc.EloRating(log, team, season, week),
	}

	return contracts.FeatureRow{
		Team:       team,
		Season:     season,
		Week:       week,
		Conference: conference.Conference,
		Values:     values,
	}
}

func teamIDs(teams []contracts.Team, season int) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range teams {
		if t.Season != season || seen[t.TeamID] {
			continue
		}
		seen[t.TeamID] = true
		ids = append(ids, t.TeamID)
	}
	return ids
}

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
