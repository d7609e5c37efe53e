package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// QualityWins holds quality-win and bad-loss counts. Losses to prior
// top-10 teams are tracked separately and not penalized as bad.
type QualityWins struct {
	WinsVsWinningTeams float64
	WinsVsPower5       float64
	WinsVsTop25        float64
	NotableWins        float64 // wins over teams with 8+ wins
	BadLosses          float64 // losses to sub-.500 teams
	LossesVsTop10      float64
}

// QualityWins counts quality wins and bad losses for a team through
// the cutoff week. Opponent records are taken as of the week each
// game was played.
func (c *Calculator) QualityWins(
	log *gamelog.Log,
	team string,
	season, week int,
	records *gamelog.RecordTable,
	previous *contracts.RankingTable,
) QualityWins {
	games := log.TeamGames(team, season, week, true)
	if len(games) == 0 {
		return QualityWins{}
	}

	var f QualityWins
	prevWeek := priorWeek(week)

	for _, g := range games {
		if g.Won() {
			if IsPowerConference(g.OppConference) {
				f.WinsVsPower5++
			}
			if rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week); ok {
				if rec.WinPct > 0.5 {
					f.WinsVsWinningTeams++
				}
				if rec.Wins >= 8 {
					f.NotableWins++
				}
			}
			if rank, ok := previous.RankOf(g.Opponent, season, prevWeek); ok && rank <= 25 {
				f.WinsVsTop25++
			}
		} else {
			if rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week); ok && rec.WinPct < 0.5 {
				f.BadLosses++
			}
			if rank, ok := previous.RankOf(g.Opponent, season, prevWeek); ok && rank <= 10 {
				f.LossesVsTop10++
			}
		}
	}

	return f
}
