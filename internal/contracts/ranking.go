package contracts

// RankingEntry is one line of a produced ranking. Ranks are a dense
// 1-based permutation; lower predicted score is better.
type RankingEntry struct {
	Team           string  `json:"team"`
	Rank           int     `json:"rank"`
	PredictedScore float64 `json:"predicted_score"`
}

// RankingRow is one line of a stored or fed-back ranking table.
type RankingRow struct {
	TeamID string `json:"team_id"`
	Season int    `json:"season"`
	Week   int    `json:"week"`
	Rank   int    `json:"rank"`
}

// RankingTable is a prior-ranking lookup used as an opponent-quality
// signal during feature computation.
type RankingTable struct {
	Rows []RankingRow
}

// NewRankingTable builds a table from rows.
func NewRankingTable(rows []RankingRow) *RankingTable {
	return &RankingTable{Rows: rows}
}

// FromEntries relabels a produced ranking into the ranking-table
// schema for the given season and week, so one week's output can feed
// the next week's computation.
func FromEntries(entries []RankingEntry, season, week int) *RankingTable {
	rows := make([]RankingRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RankingRow{
			TeamID: e.Team,
			Season: season,
			Week:   week,
			Rank:   e.Rank,
		})
	}
	return &RankingTable{Rows: rows}
}

// RankOf returns a team's rank at (season, week), if ranked.
func (t *RankingTable) RankOf(team string, season, week int) (int, bool) {
	if t == nil {
		return 0, false
	}
	for _, r := range t.Rows {
		if r.TeamID == team && r.Season == season && r.Week == week {
			return r.Rank, true
		}
	}
	return 0, false
}

// TopTeams returns teams ranked <= maxRank at (season, week), in rank
// order. maxRank <= 0 means no limit.
func (t *RankingTable) TopTeams(season, week, maxRank int) []string {
	if t == nil {
		return nil
	}
	byRank := make(map[int]string)
	highest := 0
	for _, r := range t.Rows {
		if r.Season != season || r.Week != week {
			continue
		}
		if maxRank > 0 && r.Rank > maxRank {
			continue
		}
		byRank[r.Rank] = r.TeamID
		if r.Rank > highest {
			highest = r.Rank
		}
	}
	teams := make([]string, 0, len(byRank))
	for rank := 1; rank <= highest; rank++ {
		if team, ok := byRank[rank]; ok {
			teams = append(teams, team)
		}
	}
	return teams
}
