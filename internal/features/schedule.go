package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// ScheduleStrength holds strength-of-schedule metrics. Opponent
// records are taken as of the week each game was played.
type ScheduleStrength struct {
	SOSScore           float64
	OpponentsAvgWins   float64
	OpponentsAvgWinPct float64
	WeightedSOSScore   float64
	// SOSOfSOS is a documented placeholder equal to basic SOS; a true
	// second-order computation would change ranking outputs.
	SOSOfSOS float64
}

// ScheduleStrength computes SOS metrics for a team through the cutoff
// week. The weighted variant multiplies each opponent's win-pct by a
// tier weight from the prior-week ranking: 3.0 for top 10, 2.0 for
// 11-25, else 1.0. Without a prior ranking the weighted score falls
// back to basic SOS.
func (c *Calculator) ScheduleStrength(
	log *gamelog.Log,
	team string,
	season, week int,
	records *gamelog.RecordTable,
	previous *contracts.RankingTable,
) ScheduleStrength {
	games := log.TeamGames(team, season, week, false)
	if len(games) == 0 {
		return ScheduleStrength{}
	}

	// Opponent records at the time each game was played. Opponents
	// with no decided games yet are skipped.
	var winPcts, winCounts []float64
	firstWinPct := make(map[string]float64)
	for _, g := range games {
		rec, ok := opponentRecord(log, records, g.Opponent, season, g.Week)
		if !ok {
			continue
		}
		winPcts = append(winPcts, rec.WinPct)
		winCounts = append(winCounts, float64(rec.Wins))
		if _, seen := firstWinPct[g.Opponent]; !seen {
			firstWinPct[g.Opponent] = rec.WinPct
		}
	}

	if len(winPcts) == 0 {
		return ScheduleStrength{}
	}

	basic := mean(winPcts)
	prevWeek := priorWeek(week)

	var weighted []float64
	for _, g := range games {
		weight := 1.0
		if rank, ok := previous.RankOf(g.Opponent, season, prevWeek); ok {
			if rank <= 10 {
				weight = 3.0
			} else if rank <= 25 {
				weight = 2.0
			}
		}
		if wp, ok := firstWinPct[g.Opponent]; ok {
			weighted = append(weighted, wp*weight)
		}
	}

	weightedSOS := basic
	if len(weighted) > 0 {
		weightedSOS = mean(weighted)
	}

	return ScheduleStrength{
		SOSScore:           basic,
		OpponentsAvgWins:   mean(winCounts),
		OpponentsAvgWinPct: basic,
		WeightedSOSScore:   weightedSOS,
		SOSOfSOS:           basic,
	}
}
