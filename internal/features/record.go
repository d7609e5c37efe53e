package features

import (
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// RecordFeatures holds cumulative win-loss record features, overall
// and split by conference play. Only decided games count.
type RecordFeatures struct {
	Wins                 float64
	Losses               float64
	GamesPlayed          float64
	WinPct               float64
	ConferenceWins       float64
	ConferenceLosses     float64
	NonConferenceWins    float64
	NonConferenceLosses  float64
}

// Record computes basic win-loss record features for a team through
// the cutoff week.
func (c *Calculator) Record(log *gamelog.Log, team string, season, week int) RecordFeatures {
	games := log.TeamGames(team, season, week, true)
	if len(games) == 0 {
		return RecordFeatures{}
	}

	var f RecordFeatures
	for _, g := range games {
		won := g.Won()
		if won {
			f.Wins++
		} else {
			f.Losses++
		}
		if g.IsConferenceGame {
			if won {
				f.ConferenceWins++
			} else {
				f.ConferenceLosses++
			}
		} else {
			if won {
				f.NonConferenceWins++
			} else {
				f.NonConferenceLosses++
			}
		}
	}

	f.GamesPlayed = float64(len(games))
	f.WinPct = f.Wins / f.GamesPlayed
	return f
}
