package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/internal/model"
	"github.com/gridironlabs/cfpsim/internal/simulation"
	"github.com/gridironlabs/cfpsim/pkg/logger"
)

// SeasonLoader is the storage boundary the handlers depend on.
type SeasonLoader interface {
	LoadGames(ctx context.Context, season int) ([]contracts.Game, error)
	LoadTeams(ctx context.Context, season int) ([]contracts.Team, error)
	LoadRankings(ctx context.Context, season int) (*contracts.RankingTable, error)
	LoadChampions(ctx context.Context, season int) ([]contracts.ConferenceChampion, error)
}

// SimulationHandler handles what-if simulation endpoints
type SimulationHandler struct {
	loader SeasonLoader
	engine *simulation.Engine
	logger *logger.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(loader SeasonLoader, engine *simulation.Engine, log *logger.Logger) *SimulationHandler {
	return &SimulationHandler{
		loader: loader,
		engine: engine,
		logger: log,
	}
}

// simulateRequest is the POST /api/simulate body.
type simulateRequest struct {
	Season     int               `json:"season"`
	TargetWeek int               `json:"target_week"`
	Outcomes   map[string]string `json:"game_outcomes"`

	// Weekly range; used by /api/simulate/weekly.
	StartWeek int `json:"start_week"`
	EndWeek   int `json:"end_week"`
}

// Simulate runs a single-shot scenario projection.
// POST /api/simulate
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Season == 0 || req.TargetWeek == 0 {
		respondError(w, http.StatusBadRequest, "season and target_week are required")
		return
	}

	data, ok := loadSeason(ctx, w, h.loader, h.logger, req.Season)
	if !ok {
		return
	}

	entries, err := h.engine.SimulateScenario(ctx, simulation.ScenarioRequest{
		Log:              data.log,
		Teams:            data.teams,
		Outcomes:         req.Outcomes,
		Season:           req.Season,
		TargetWeek:       req.TargetWeek,
		Champions:        data.champions,
		PreviousRankings: data.rankings,
	})
	if err != nil {
		respondSimulationError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"season":   req.Season,
			"week":     req.TargetWeek,
			"rankings": entries,
		},
	})
}

// SimulateWeekly runs a multi-week iterative projection.
// POST /api/simulate/weekly
func (h *SimulationHandler) SimulateWeekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Season == 0 || req.StartWeek == 0 || req.EndWeek < req.StartWeek {
		respondError(w, http.StatusBadRequest, "season, start_week and end_week are required")
		return
	}

	data, ok := loadSeason(ctx, w, h.loader, h.logger, req.Season)
	if !ok {
		return
	}

	weekly, err := h.engine.SimulateWeeklyRankings(ctx, simulation.WeeklyRequest{
		Log:              data.log,
		Teams:            data.teams,
		Outcomes:         req.Outcomes,
		Season:           req.Season,
		StartWeek:        req.StartWeek,
		EndWeek:          req.EndWeek,
		Champions:        data.champions,
		BaselineRankings: data.rankings,
	})
	if err != nil {
		respondSimulationError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"season":          req.Season,
			"weekly_rankings": weekly,
		},
	})
}

type seasonData struct {
	log       *gamelog.Log
	teams     []contracts.Team
	rankings  *contracts.RankingTable
	champions []contracts.ConferenceChampion
}

func loadSeason(ctx context.Context, w http.ResponseWriter, loader SeasonLoader, log *logger.Logger, season int) (seasonData, bool) {
	games, err := loader.LoadGames(ctx, season)
	if err != nil {
		log.WithError(err).Error("Failed to load games")
		respondError(w, http.StatusInternalServerError, "failed to load season games")
		return seasonData{}, false
	}

	teams, err := loader.LoadTeams(ctx, season)
	if err != nil {
		log.WithError(err).Error("Failed to load teams")
		respondError(w, http.StatusInternalServerError, "failed to load season teams")
		return seasonData{}, false
	}

	rankings, err := loader.LoadRankings(ctx, season)
	if err != nil {
		log.WithError(err).Error("Failed to load rankings")
		respondError(w, http.StatusInternalServerError, "failed to load season rankings")
		return seasonData{}, false
	}

	champions, err := loader.LoadChampions(ctx, season)
	if err != nil {
		log.WithError(err).Error("Failed to load champions")
		respondError(w, http.StatusInternalServerError, "failed to load conference champions")
		return seasonData{}, false
	}

	return seasonData{
		log:       gamelog.New(games),
		teams:     teams,
		rankings:  rankings,
		champions: champions,
	}, true
}

func respondSimulationError(w http.ResponseWriter, log *logger.Logger, err error) {
	if errors.Is(err, model.ErrModelUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "scoring model not loaded")
		return
	}
	log.WithError(err).Error("Simulation failed")
	respondError(w, http.StatusInternalServerError, "simulation failed")
}
