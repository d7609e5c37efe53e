package ranking

import (
	"math"
	"sort"

	"github.com/gridironlabs/cfpsim/internal/contracts"
	"github.com/gridironlabs/cfpsim/internal/gamelog"
)

// ComparabilityThreshold is the maximum score gap within which two
// adjacent-ranked teams count as resume-equivalent for head-to-head
// correction.
const ComparabilityThreshold = 0.1

// ApplyHeadToHead corrects a score-ordered ranking where it
// contradicts a direct result between adjacent teams. Entries are
// sorted ascending by score, then scanned once left to right: when a
// pair (A at i, B at i+1) is within the comparability threshold and B
// is a recorded season-to-date winner over A, the two are swapped.
// Ranks are reassigned densely 1..N from the post-swap order.
//
// This is deliberately a single adjacent-only pass, not a fixed-point
// or transitive-closure rule: it can fix an adjacent violation while
// leaving a non-adjacent one in place.
func ApplyHeadToHead(entries []contracts.RankingEntry, log *gamelog.Log, season, week int) []contracts.RankingEntry {
	if len(entries) == 0 {
		return entries
	}

	ranked := make([]contracts.RankingEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PredictedScore < ranked[j].PredictedScore
	})

	winnersOver := beatenByMap(log, season, week)

	for i := 0; i < len(ranked)-1; i++ {
		a, b := ranked[i], ranked[i+1]
		if math.Abs(a.PredictedScore-b.PredictedScore) > ComparabilityThreshold {
			continue
		}
		if winnersOver[a.Team][b.Team] {
			// B beat A on the field but sits below: swap.
			ranked[i], ranked[i+1] = b, a
		}
	}

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// beatenByMap indexes decided season-to-date results as
// loser -> set of winners.
func beatenByMap(log *gamelog.Log, season, week int) map[string]map[string]bool {
	winnersOver := make(map[string]map[string]bool)
	for _, g := range log.DecidedGames(season, week) {
		if !g.Won() {
			continue
		}
		if winnersOver[g.Opponent] == nil {
			winnersOver[g.Opponent] = make(map[string]bool)
		}
		winnersOver[g.Opponent][g.Team] = true
	}
	return winnersOver
}
