package features

import (
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// MomentumFeatures holds recency features: the current winning
// streak, the most recent result and a coarse quality score for that
// single opponent.
type MomentumFeatures struct {
	CurrentWinStreak        float64
	LastGameResult          float64 // 1 = win, 0 = loss
	LastGameOpponentQuality float64 // 1.0 Power 5, else 0.5
}

// Momentum computes recency features from the team's decided games in
// week order.
func (c *Calculator) Momentum(log *gamelog.Log, team string, season, week int) MomentumFeatures {
	games := log.TeamGames(team, season, week, true)
	if len(games) == 0 {
		return MomentumFeatures{}
	}

	// Winning streak counted backwards from the most recent game,
	// stopping at the first loss.
	streak := 0.0
	for i := len(games) - 1; i >= 0; i-- {
		if !games[i].Won() {
			break
		}
		streak++
	}

	last := games[len(games)-1]
	result := 0.0
	if last.Won() {
		result = 1.0
	}

	quality := 0.5
	if IsPowerConference(last.OppConference) {
		quality = 1.0
	}

	return MomentumFeatures{
		CurrentWinStreak:        streak,
		LastGameResult:          result,
		LastGameOpponentQuality: quality,
	}
}

const (
	initialElo = 1500.0
	eloKFactor = 32.0
)

// EloRating computes a simplified Elo rating through the cutoff week:
// a flat +-k/2 per decided game with no opponent adjustment. Kept as
// a coarse extra signal.
func (c *Calculator) EloRating(log *gamelog.Log, team string, season, week int) float64 {
	games := log.TeamGames(team, season, week, true)

	elo := initialElo
	for _, g := range games {
		if g.Won() {
			elo += eloKFactor * 0.5
		} else {
			elo -= eloKFactor * 0.5
		}
	}
	return elo
}
