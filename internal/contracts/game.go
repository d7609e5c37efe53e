package contracts

// Game is one row of the game log. Every physical game appears twice,
// once from each participant's perspective, sharing the same GameID.
// Once the outcome is known, TeamWon on one row is the negation of
// TeamWon on the paired row.
type Game struct {
	GameID           string `json:"game_id"`
	Season           int    `json:"season"`
	Week             int    `json:"week"`
	Team             string `json:"team"`
	Opponent         string `json:"opponent"`
	TeamScore        *int   `json:"team_score"`
	OppScore         *int   `json:"opp_score"`
	TeamWon          *bool  `json:"team_won"`
	IsConferenceGame bool   `json:"is_conference_game"`
	OppConference    string `json:"opp_conference,omitempty"`
}

// Decided reports whether the game has a resolved outcome.
func (g Game) Decided() bool {
	return g.TeamWon != nil
}

// Won reports whether the row's team won. False for undecided games.
func (g Game) Won() bool {
	return g.TeamWon != nil && *g.TeamWon
}

// Lost reports whether the row's team lost. False for undecided games.
func (g Game) Lost() bool {
	return g.TeamWon != nil && !*g.TeamWon
}

// HasScores reports whether both scores are recorded.
func (g Game) HasScores() bool {
	return g.TeamScore != nil && g.OppScore != nil
}

// Margin returns team score minus opponent score. Zero when either
// score is missing.
func (g Game) Margin() int {
	if !g.HasScores() {
		return 0
	}
	return *g.TeamScore - *g.OppScore
}
