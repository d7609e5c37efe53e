package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
	"github.com/gridironlabs/cfpsim/pkg/logger"
)

// FinalRankingWeek is the week at which conference-champion features
// become active.
const FinalRankingWeek = 15

// powerConferences is the fixed historical Power 5 set (pre-2024
// realignment), used as an opponent-quality proxy.
var powerConferences = map[string]bool{
	"SEC":     true,
	"Big Ten": true,
	"Big 12":  true,
	"ACC":     true,
	"Pac-12":  true,
}

// IsPowerConference reports membership in the Power 5 set.
func IsPowerConference(conference string) bool {
	return powerConferences[conference]
}

// Calculator computes a single team's resume feature groups as of a
// week cutoff. Every group is a pure function of the game log,
// optionally informed by a record snapshot table and the prior week's
// ranking; a team with no qualifying games gets zero-valued defaults,
// never an error.
type Calculator struct {
	logger *logger.Logger
}

// NewCalculator creates a new resume feature calculator
func NewCalculator(log *logger.Logger) *Calculator {
	return &Calculator{logger: log}
}

// priorWeek returns the week whose ranking serves as the
// opponent-quality signal: week-1, or week itself in week 1.
func priorWeek(week int) int {
	if week > 1 {
		return week - 1
	}
	return week
}

// opponentRecord resolves an opponent's cumulative record as of a
// week, from the snapshot table when present, otherwise recomputed
// from the log.
func opponentRecord(log *gamelog.Log, records *gamelog.RecordTable, opponent string, season, week int) (contracts.TeamRecord, bool) {
	if records != nil {
		return records.AsOf(opponent, week)
	}
	return gamelog.ComputeRecord(log, opponent, season, week)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
