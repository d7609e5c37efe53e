package contracts

// Team maps a team to its conference for a season.
type Team struct {
	TeamID     string `json:"team_id"`
	Season     int    `json:"season"`
	Conference string `json:"conference"`
}

// TeamRecord is a precomputed cumulative record snapshot for a team
// as of a given week. Keyed by (team, as_of_week) to avoid
// recomputing records per opponent lookup.
type TeamRecord struct {
	Team        string  `json:"team"`
	Season      int     `json:"season"`
	AsOfWeek    int     `json:"as_of_week"`
	Wins        int     `json:"wins"`
	GamesPlayed int     `json:"games_played"`
	WinPct      float64 `json:"win_pct"`
}

// ConferenceChampion records a season's champion for one conference.
// Consulted only at the final ranking week.
type ConferenceChampion struct {
	Season     int    `json:"season"`
	Conference string `json:"conference"`
	TeamID     string `json:"champion_team_id"`
}
