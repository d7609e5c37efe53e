package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// GameControlFeatures hints at dominance without using raw margin of
// victory as a primary factor. With no play-by-play data available,
// a comfortable final margin (7+) stands in for "never trailing".
type GameControlFeatures struct {
	WonByMultipleScores float64 // wins by 14+ points
	NeverTrailing       float64 // proxy: wins by 7+ points
	DominantWinsPct     float64
}

// GameControl computes game-control features from decided games with
// recorded scores.
func (c *Calculator) GameControl(log *gamelog.Log, team string, season, week int) GameControlFeatures {
	var wins []contracts.Game
	scored := 0
	for _, g := range log.TeamGames(team, season, week, true) {
		if !g.HasScores() {
			continue
		}
		scored++
		if g.Won() {
			wins = append(wins, g)
		}
	}
	if scored == 0 {
		return GameControlFeatures{}
	}

	var f GameControlFeatures
	for _, g := range wins {
		margin := g.Margin()
		if margin >= 14 {
			f.WonByMultipleScores++
		}
		if margin >= 7 {
			f.NeverTrailing++
		}
	}
	if len(wins) > 0 {
		f.DominantWinsPct = f.WonByMultipleScores / float64(len(wins))
	}

	return f
}

// PointFeatures holds per-game scoring averages.
type PointFeatures struct {
	PointsPerGame        float64
	PointsAllowedPerGame float64
	PointDifferential    float64
}

// PointStats computes per-game point statistics from games with
// recorded scores.
func (c *Calculator) PointStats(log *gamelog.Log, team string, season, week int) PointFeatures {
	scored := 0
	pointsFor := 0
	pointsAgainst := 0
	for _, g := range log.TeamGames(team, season, week, false) {
		if !g.HasScores() {
			continue
		}
		scored++
		pointsFor += *g.TeamScore
		pointsAgainst += *g.OppScore
	}
	if scored == 0 {
		return PointFeatures{}
	}

	n := float64(scored)
	return PointFeatures{
		PointsPerGame:        float64(pointsFor) / n,
		PointsAllowedPerGame: float64(pointsAgainst) / n,
		PointDifferential:    float64(pointsFor-pointsAgainst) / n,
	}
}
