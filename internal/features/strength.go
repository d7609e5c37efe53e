package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// RecordStrength holds the signed record-strength point total over
// all decided games, plus its per-game normalization.
type RecordStrength struct {
	Score   float64
	PerGame float64
}

// RecordStrength computes the record-strength score: the dominant
// hand-crafted heuristic. Wins earn +3.0 against prior top-10
// opponents, +2.0 against prior top-25, +1.0 against winning teams
// when no ranking is available, else +0.5. Losses cost -0.5 against
// prior top-10, -3.0 against sub-.500 teams, else -1.0; without a
// ranking, losses to opponents above .700 also cost only -0.5.
// The total is a sum over an unordered multiset of games, so it is
// invariant to log ordering.
func (c *Calculator) RecordStrength(
	log *gamelog.Log,
	team string,
	season, week int,
	records *gamelog.RecordTable,
	previous *contracts.RankingTable,
) RecordStrength {
	games := log.TeamGames(team, season, week, true)
	if len(games) == 0 {
		return RecordStrength{}
	}

	prevWeek := priorWeek(week)
	score := 0.0

	for _, g := range games {
		if g.Won() {
			value := 0.5
			if previous != nil {
				if rank, ok := previous.RankOf(g.Opponent, season, prevWeek); ok {
					if rank <= 10 {
						value = 3.0
					} else if rank <= 25 {
						value = 2.0
					}
				}
			} else {
				if rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week); ok && rec.WinPct > 0.5 {
					value = 1.0
				}
			}
			score += value
			continue
		}

		value := -1.0
		if previous != nil {
			if rank, ok := previous.RankOf(g.Opponent, season, prevWeek); ok && rank <= 10 {
				value = -0.5
			} else if rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week); ok && rec.WinPct < 0.5 {
				value = -3.0
			}
		} else {
			if rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week); ok {
				if rec.WinPct < 0.5 {
					value = -3.0
				} else if rec.WinPct > 0.7 {
					value = -0.5
				}
			}
		}
		score += value
	}

	return RecordStrength{
		Score:   score,
		PerGame: score / float64(len(games)),
	}
}
