package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/model"
	"github.com/gridironlabs/cfpsim/internal/simulation"
	"github.com/gridironlabs/cfpsim/pkg/config"
	"github.com/gridironlabs/cfpsim/pkg/logger"
	"github.com/gridironlabs/cfpsim/pkg/redis"
)

// stubLoader serves a fixed season from memory.
type stubLoader struct {
	games []contracts.Game
	err   error
}

func (s *stubLoader) LoadGames(ctx context.Context, season int) ([]contracts.Game, error) {
	return s.games, s.err
}

func (s *stubLoader) LoadTeams(ctx context.Context, season int) ([]contracts.Team, error) {
	return nil, s.err
}

func (s *stubLoader) LoadRankings(ctx context.Context, season int) (*contracts.RankingTable, error) {
	return nil, s.err
}

func (s *stubLoader) LoadChampions(ctx context.Context, season int) ([]contracts.ConferenceChampion, error) {
	return nil, s.err
}

func winsModel() model.Contract {
	return model.NewLinearModel([]string{"wins"}, map[string]float64{"wins": -1.0}, 0, nil)
}

func undecidedPair(gameID string, week int, team, opp string) []contracts.Game {
	return []contracts.Game{
		{GameID: gameID, Season: 2024, Week: week, Team: team, Opponent: opp},
		{GameID: gameID, Season: 2024, Week: week, Team: opp, Opponent: team},
	}
}

func noopCache(t *testing.T) *redis.Cache {
	t.Helper()
	client, err := redis.New(&config.Config{})
	require.NoError(t, err)
	return redis.NewCache(client, "test")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSimulateHandler(t *testing.T) {
	loader := &stubLoader{games: undecidedPair("g1", 1, "Georgia", "Alabama")}
	h := NewSimulationHandler(loader, simulation.New(winsModel(), logger.NewNop()), logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(
		`{"season": 2024, "target_week": 1, "game_outcomes": {"g1": "Georgia"}}`,
	))
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	rankings := data["rankings"].([]interface{})
	require.Len(t, rankings, 2)
	first := rankings[0].(map[string]interface{})
	assert.Equal(t, "Georgia", first["team"])
	assert.Equal(t, 1.0, first["rank"])
}

func TestSimulateHandlerBadRequests(t *testing.T) {
	h := NewSimulationHandler(&stubLoader{}, simulation.New(winsModel(), logger.NewNop()), logger.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing season", `{"target_week": 1}`},
		{"missing week", `{"season": 2024}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Simulate(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSimulateHandlerLoaderError(t *testing.T) {
	loader := &stubLoader{err: errors.New("db down")}
	h := NewSimulationHandler(loader, simulation.New(winsModel(), logger.NewNop()), logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(
		`{"season": 2024, "target_week": 1}`,
	))
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSimulateHandlerModelUnavailable(t *testing.T) {
	loader := &stubLoader{games: undecidedPair("g1", 1, "Georgia", "Alabama")}
	h := NewSimulationHandler(loader, simulation.New(nil, logger.NewNop()), logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(
		`{"season": 2024, "target_week": 1}`,
	))
	rec := httptest.NewRecorder()

	h.Simulate(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSimulateWeeklyHandler(t *testing.T) {
	loader := &stubLoader{games: undecidedPair("g1", 1, "Georgia", "Alabama")}
	h := NewSimulationHandler(loader, simulation.New(winsModel(), logger.NewNop()), logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate/weekly", strings.NewReader(
		`{"season": 2024, "start_week": 1, "end_week": 2, "game_outcomes": {"g1": "Georgia"}}`,
	))
	rec := httptest.NewRecorder()

	h.SimulateWeekly(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	weekly := data["weekly_rankings"].(map[string]interface{})
	assert.Contains(t, weekly, "1")
	assert.Contains(t, weekly, "2")
}

func TestGetSeasonHandler(t *testing.T) {
	loader := &stubLoader{games: undecidedPair("g1", 3, "Georgia", "Alabama")}
	h := NewRankingsHandler(loader, simulation.New(winsModel(), logger.NewNop()), noopCache(t), logger.NewNop())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/api/seasons/2024", nil),
		map[string]string{"season": "2024"},
	)
	rec := httptest.NewRecorder()

	h.GetSeason(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, 2024.0, data["season"])
	assert.Equal(t, 1.0, data["current_week"]) // nothing decided yet
	assert.Len(t, data["games"].([]interface{}), 2)
}

func TestGetSeasonHandlerNotFound(t *testing.T) {
	h := NewRankingsHandler(&stubLoader{}, simulation.New(winsModel(), logger.NewNop()), noopCache(t), logger.NewNop())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/api/seasons/1999", nil),
		map[string]string{"season": "1999"},
	)
	rec := httptest.NewRecorder()

	h.GetSeason(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWeeklyRankingsHandler(t *testing.T) {
	loader := &stubLoader{games: undecidedPair("g1", 1, "Georgia", "Alabama")}
	h := NewRankingsHandler(loader, simulation.New(winsModel(), logger.NewNop()), noopCache(t), logger.NewNop())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/api/rankings/2024/1", nil),
		map[string]string{"season": "2024", "week": "1"},
	)
	rec := httptest.NewRecorder()

	h.GetWeeklyRankings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["cached"])

	data := body["data"].(map[string]interface{})
	assert.Len(t, data["rankings"].([]interface{}), 2)
}

func TestGetWeeklyRankingsHandlerBadPath(t *testing.T) {
	h := NewRankingsHandler(&stubLoader{}, simulation.New(winsModel(), logger.NewNop()), noopCache(t), logger.NewNop())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/api/rankings/2024/zero", nil),
		map[string]string{"season": "2024", "week": "zero"},
	)
	rec := httptest.NewRecorder()

	h.GetWeeklyRankings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
