package simulation

import (
	"context"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/features"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/internal/model"
	"github.com/gridironlabs/cfpsim/internal/ranking"
	"github.com/gridironlabs/cfpsim/pkg/logger"
)

// Engine drives what-if projections: outcome overrides, single-week
// scenarios and multi-week iterative projections where each week's
// output ranking feeds the next week's opponent-quality weighting.
// The model value is owned by the engine, read-only, and safe to
// share across concurrent requests; every request works on its own
// defensive copy of the game log.
type Engine struct {
	model   model.Contract
	builder *features.Builder
	logger  *logger.Logger
}

// New creates a simulation engine around a loaded scoring model.
// A nil model is allowed at construction; every projection call will
// then fail with ErrModelUnavailable.
func New(m model.Contract, log *logger.Logger) *Engine {
	calc := features.NewCalculator(log)
	return &Engine{
		model:   m,
		builder: features.NewBuilder(calc, log),
		logger:  log,
	}
}

// ScenarioRequest describes a single-shot projection.
type ScenarioRequest struct {
	Log              *gamelog.Log
	Teams            []contracts.Team
	Outcomes         map[string]string // game_id -> winner
	Season           int
	TargetWeek       int
	Champions        []contracts.ConferenceChampion
	PreviousRankings *contracts.RankingTable
}

// SimulateScenario applies the outcome overrides once, computes
// features for every team at the target week, scores them and applies
// the head-to-head correction. The caller's log is never mutated.
func (e *Engine) SimulateScenario(ctx context.Context, req ScenarioRequest) ([]contracts.RankingEntry, error) {
	if e.model == nil {
		return nil, model.ErrModelUnavailable
	}

	updated := req.Log.ApplyOutcomes(req.Outcomes)

	rows := e.builder.Build(ctx, features.MatrixInput{
		Log:              updated,
		Teams:            req.Teams,
		Season:           req.Season,
		Week:             req.TargetWeek,
		Champions:        e.championsFor(req.Champions, req.TargetWeek),
		PreviousRankings: req.PreviousRankings,
	})
	if len(rows) == 0 {
		return nil, nil
	}

	entries, err := model.PredictRankings(rows, e.model)
	if err != nil {
		return nil, err
	}

	entries = ranking.ApplyHeadToHead(entries, updated, req.Season, req.TargetWeek)

	e.logger.WithFields(map[string]interface{}{
		"season":    req.Season,
		"week":      req.TargetWeek,
		"teams":     len(entries),
		"overrides": len(req.Outcomes),
	}).Info("Scenario simulated")

	return entries, nil
}

// WeeklyRequest describes a multi-week iterative projection.
type WeeklyRequest struct {
	Log       *gamelog.Log
	Teams     []contracts.Team
	Outcomes  map[string]string
	Season    int
	StartWeek int
	EndWeek   int
	Champions []contracts.ConferenceChampion

	// BaselineRankings seeds the opponent-quality feed at the start
	// week only; afterwards the engine's own output takes over.
	BaselineRankings *contracts.RankingTable
}

// SimulateWeeklyRankings iterates weeks start..end. For week w the
// prior-ranking feed into feature computation is the engine's own
// post-processed output from week w-1, re-labeled into the ranking
// schema -- not the caller baseline, which applies only at the start
// week. Weeks producing an empty feature matrix are skipped.
func (e *Engine) SimulateWeeklyRankings(ctx context.Context, req WeeklyRequest) (map[int][]contracts.RankingEntry, error) {
	if e.model == nil {
		return nil, model.ErrModelUnavailable
	}

	updated := req.Log.ApplyOutcomes(req.Outcomes)

	weekly := make(map[int][]contracts.RankingEntry)
	previous := req.BaselineRankings

	for week := req.StartWeek; week <= req.EndWeek; week++ {
		rows := e.builder.Build(ctx, features.MatrixInput{
			Log:              updated,
			Teams:            req.Teams,
			Season:           req.Season,
			Week:             week,
			Champions:        e.championsFor(req.Champions, week),
			PreviousRankings: previous,
		})
		if len(rows) == 0 {
			continue
		}

		entries, err := model.PredictRankings(rows, e.model)
		if err != nil {
			return nil, err
		}
		entries = ranking.ApplyHeadToHead(entries, updated, req.Season, week)

		weekly[week] = entries

		// Feedback: this week's output becomes next week's
		// opponent-quality signal.
		previous = contracts.FromEntries(entries, req.Season, week)
	}

	e.logger.WithFields(map[string]interface{}{
		"season":     req.Season,
		"start_week": req.StartWeek,
		"end_week":   req.EndWeek,
		"weeks":      len(weekly),
	}).Info("Weekly rankings simulated")

	return weekly, nil
}

// championsFor gates champion features to the final ranking weeks.
func (e *Engine) championsFor(champions []contracts.ConferenceChampion, week int) []contracts.ConferenceChampion {
	if week >= features.FinalRankingWeek {
		return champions
	}
	return nil
}
