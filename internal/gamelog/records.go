package gamelog

import (
	"sort"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// RecordTable caches cumulative team records per (team, as_of_week),
// so opponent lookups during feature computation do not rescan the
// whole log. The table is optional everywhere it is consumed: a nil
// table falls back to on-the-fly computation.
type RecordTable struct {
	season  int
	byTeam  map[string][]contracts.TeamRecord // ascending as_of_week
}

// BuildRecordTable precomputes record snapshots for every team in the
// season at every week from 1 through maxWeek.
func BuildRecordTable(log *Log, season, maxWeek int) *RecordTable {
	t := &RecordTable{
		season: season,
		byTeam: make(map[string][]contracts.TeamRecord),
	}
	for _, team := range log.Teams(season) {
		snapshots := make([]contracts.TeamRecord, 0, maxWeek)
		for week := 1; week <= maxWeek; week++ {
			rec, ok := ComputeRecord(log, team, season, week)
			if !ok {
				continue
			}
			snapshots = append(snapshots, rec)
		}
		t.byTeam[team] = snapshots
	}
	return t
}

// AsOf returns the latest snapshot for a team with as_of_week <= week.
func (t *RecordTable) AsOf(team string, week int) (contracts.TeamRecord, bool) {
	if t == nil {
		return contracts.TeamRecord{}, false
	}
	snapshots := t.byTeam[team]
	idx := sort.Search(len(snapshots), func(i int) bool {
		return snapshots[i].AsOfWeek > week
	})
	if idx == 0 {
		return contracts.TeamRecord{}, false
	}
	return snapshots[idx-1], true
}

// ComputeRecord derives a team's cumulative record through the cutoff
// week directly from the log. Used both to build the table and as the
// fallback when no table is supplied.
func ComputeRecord(log *Log, team string, season, cutoffWeek int) (contracts.TeamRecord, bool) {
	games := log.TeamGames(team, season, cutoffWeek, true)
	if len(games) == 0 {
		return contracts.TeamRecord{}, false
	}
	wins := 0
	for _, g := range games {
		if g.Won() {
			wins++
		}
	}
	return contracts.TeamRecord{
		Team:        team,
		Season:      season,
		AsOfWeek:    cutoffWeek,
		Wins:        wins,
		GamesPlayed: len(games),
		WinPct:      float64(wins) / float64(len(games)),
	}, true
}

func sortByWeek(games []contracts.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Week < games[j].Week
	})
}

func sortStrings(s []string) {
	sort.Strings(s)
}
