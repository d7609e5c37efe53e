package jobs

import (
	"context"
	"fmt"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/internal/simulation"
	"github.com/gridironlabs/cfpsim/internal/store"
	"github.com/gridironlabs/cfpsim/pkg/logger"
	"github.com/gridironlabs/cfpsim/pkg/redis"
)

// RefreshRankingsJob recomputes the current week's projected ranking
// for the configured season, persists it and warms the cache. Runs on
// the configured cron schedule, typically early Monday morning after
// the weekend's games are in.
type RefreshRankingsJob struct {
	repo     *store.SeasonRepository
	engine   *simulation.Engine
	cache    *redis.Cache
	season   int
	schedule string
	logger   *logger.Logger
}

// NewRefreshRankingsJob creates a new rankings refresh job
func NewRefreshRankingsJob(repo *store.SeasonRepository, engine *simulation.Engine, cache *redis.Cache, season int, schedule string, log *logger.Logger) *RefreshRankingsJob {
	return &RefreshRankingsJob{
		repo:     repo,
		engine:   engine,
		cache:    cache,
		season:   season,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *RefreshRankingsJob) Name() string {
	return "refresh_rankings"
}

// Schedule returns the cron schedule expression
func (j *RefreshRankingsJob) Schedule() string {
	return j.schedule
}

// Run recomputes and stores the current week's projection.
func (j *RefreshRankingsJob) Run(ctx context.Context) error {
	games, err := j.repo.LoadGames(ctx, j.season)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	if len(games) == 0 {
		j.logger.WithField("season", j.season).Info("No games for season, skipping refresh")
		return nil
	}

	teams, err := j.repo.LoadTeams(ctx, j.season)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}

	rankings, err := j.repo.LoadRankings(ctx, j.season)
	if err != nil {
		return fmt.Errorf("load rankings: %w", err)
	}

	champions, err := j.repo.LoadChampions(ctx, j.season)
	if err != nil {
		return fmt.Errorf("load champions: %w", err)
	}

	log := gamelog.New(games)
	week := log.CurrentWeek(j.season)

	entries, err := j.engine.SimulateScenario(ctx, simulation.ScenarioRequest{
		Log:              log,
		Teams:            teams,
		Season:           j.season,
		TargetWeek:       week,
		Champions:        champions,
		PreviousRankings: rankings,
	})
	if err != nil {
		return fmt.Errorf("simulate week %d: %w", week, err)
	}
	if len(entries) == 0 {
		j.logger.WithFields(map[string]interface{}{
			"season": j.season,
			"week":   week,
		}).Info("Empty projection, nothing to store")
		return nil
	}

	if err := j.repo.SaveProjections(ctx, j.season, week, entries); err != nil {
		return fmt.Errorf("save projections: %w", err)
	}

	if err := j.cache.Set(ctx, redis.WeeklyRankingsKey(j.season, week), entries, redis.TTLRankings); err != nil {
		j.logger.WithError(err).Warn("Failed to warm rankings cache")
	}

	j.logger.WithFields(map[string]interface{}{
		"season": j.season,
		"week":   week,
		"teams":  len(entries),
		"top":    topTeam(entries),
	}).Info("Projected rankings refreshed")

	return nil
}

func topTeam(entries []contracts.RankingEntry) string {
	for _, e := range entries {
		if e.Rank == 1 {
			return e.Team
		}
	}
	return ""
}
