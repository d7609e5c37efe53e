package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// HeadToHeadFeatures counts direct wins over teams from the
// prior-week ranking. Tiers are cumulative: a top-10 win increments
// all three counters, a top-25 win the lower two, any other ranked
// win only the ranked counter.
type HeadToHeadFeatures struct {
	WinsVsRanked float64
	WinsVsTop10  float64
	WinsVsTop25  float64
}

// HeadToHead computes head-to-head features for a team through the
// cutoff week. All zeros when no prior ranking is supplied.
func (c *Calculator) HeadToHead(
	log *gamelog.Log,
	team string,
	season, week int,
	previous *contracts.RankingTable,
) HeadToHeadFeatures {
	var f HeadToHeadFeatures
	if previous == nil {
		return f
	}

	prevWeek := priorWeek(week)
	for _, g := range log.TeamGames(team, season, week, true) {
		if !g.Won() {
			continue
		}
		rank, ok := previous.RankOf(g.Opponent, season, prevWeek)
		if !ok {
			continue
		}
		switch {
		case rank <= 10:
			f.WinsVsTop10++
			f.WinsVsTop25++
			f.WinsVsRanked++
		case rank <= 25:
			f.WinsVsTop25++
			f.WinsVsRanked++
		default:
			f.WinsVsRanked++
		}
	}

	return f
}

// CommonOpponentFeatures holds performance against the opponents this
// team shares with a comparison set.
type CommonOpponentFeatures struct {
	Count     float64
	WinPct    float64
	AvgMargin float64
}

// maxComparisonTeams caps the comparison list; common-opponent
// intersection is quadratic in the worst case.
const maxComparisonTeams = 25

// CommonOpponents computes performance against opponents shared with
// the first 25 comparison teams. All zeros when there is no
// comparison list or no overlap.
func (c *Calculator) CommonOpponents(
	log *gamelog.Log,
	team string,
	season, week int,
	comparisonTeams []string,
) CommonOpponentFeatures {
	games := log.TeamGames(team, season, week, true)
	if len(comparisonTeams) == 0 || len(games) == 0 {
		return CommonOpponentFeatures{}
	}

	opponents := make(map[string]bool)
	for _, g := range games {
		opponents[g.Opponent] = true
	}

	limit := len(comparisonTeams)
	if limit > maxComparisonTeams {
		limit = maxComparisonTeams
	}

	common := make(map[string]bool)
	for _, comp := range comparisonTeams[:limit] {
		if comp == team {
			continue
		}
		for _, g := range log.TeamGames(comp, season, week, false) {
			if opponents[g.Opponent] {
				common[g.Opponent] = true
			}
		}
	}

	if len(common) == 0 {
		return CommonOpponentFeatures{}
	}

	wins := 0.0
	played := 0.0
	var margins []float64
	for _, g := range games {
		if !common[g.Opponent] {
			continue
		}
		played++
		if g.Won() {
			wins++
		}
		if g.HasScores() {
			margins = append(margins, float64(g.Margin()))
		}
	}

	if played == 0 {
		return CommonOpponentFeatures{}
	}

	return CommonOpponentFeatures{
		Count:     float64(len(common)),
		WinPct:    wins / played,
		AvgMargin: mean(margins),
	}
}
