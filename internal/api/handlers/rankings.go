package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/simulation"
	"github.com/gridironlabs/cfpsim/pkg/logger"
	"github.com/gridironlabs/cfpsim/pkg/redis"
)

// RankingsHandler serves season data and projected weekly rankings.
type RankingsHandler struct {
	loader SeasonLoader
	engine *simulation.Engine
	cache  *redis.Cache
	logger *logger.Logger
}

// NewRankingsHandler creates a new rankings handler
func NewRankingsHandler(loader SeasonLoader, engine *simulation.Engine, cache *redis.Cache, log *logger.Logger) *RankingsHandler {
	return &RankingsHandler{
		loader: loader,
		engine: engine,
		cache:  cache,
		logger: log,
	}
}

// GetSeason returns a season's games, teams, stored rankings and
// champions along with the current week of the game log.
// GET /api/seasons/{season}
func (h *RankingsHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	season, ok := pathInt(w, r, "season")
	if !ok {
		return
	}

	data, ok := loadSeason(ctx, w, h.loader, h.logger, season)
	if !ok {
		return
	}
	if data.log.Len() == 0 {
		respondError(w, http.StatusNotFound, "season not found")
		return
	}

	var rankingRows []contracts.RankingRow
	if data.rankings != nil {
		rankingRows = data.rankings.Rows
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"season":       season,
			"current_week": data.log.CurrentWeek(season),
			"games":        data.log.Games(),
			"teams":        data.teams,
			"rankings":     rankingRows,
			"champions":    data.champions,
		},
	})
}

// GetWeeklyRankings returns the projected ranking for one week,
// computed with no outcome overrides. Results are cached.
// GET /api/rankings/{season}/{week}
func (h *RankingsHandler) GetWeeklyRankings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	season, ok := pathInt(w, r, "season")
	if !ok {
		return
	}
	week, ok := pathInt(w, r, "week")
	if !ok {
		return
	}

	cacheKey := redis.WeeklyRankingsKey(season, week)

	var cached []contracts.RankingEntry
	if hit, err := h.cache.Get(ctx, cacheKey, &cached); err != nil {
		h.logger.WithError(err).Warn("Rankings cache read failed")
	} else if hit {
		h.respondRankings(w, season, week, cached, true)
		return
	}

	data, ok := loadSeason(ctx, w, h.loader, h.logger, season)
	if !ok {
		return
	}

	entries, err := h.engine.SimulateScenario(ctx, simulation.ScenarioRequest{
		Log:              data.log,
		Teams:            data.teams,
		Season:           season,
		TargetWeek:       week,
		Champions:        data.champions,
		PreviousRankings: data.rankings,
	})
	if err != nil {
		respondSimulationError(w, h.logger, err)
		return
	}
	if len(entries) == 0 {
		respondError(w, http.StatusNotFound, "no rankings available for this week")
		return
	}

	if err := h.cache.Set(ctx, cacheKey, entries, redis.TTLRankings); err != nil {
		h.logger.WithError(err).Warn("Rankings cache write failed")
	}

	h.respondRankings(w, season, week, entries, false)
}

func (h *RankingsHandler) respondRankings(w http.ResponseWriter, season, week int, entries []contracts.RankingEntry, cached bool) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cached":  cached,
		"data": map[string]interface{}{
			"season":   season,
			"week":     week,
			"rankings": entries,
		},
	})
}

// pathInt parses an integer path variable, writing a 400 on failure.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || value <= 0 {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}
