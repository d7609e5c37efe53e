package gamelog

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// Log is an in-memory game table. Simulations never mutate a caller's
// log: every mutating operation returns a new Log built from a copy,
// so the original stays valid across repeated simulations.
type Log struct {
	games []contracts.Game
}

// New builds a log from game rows. The slice is copied.
func New(games []contracts.Game) *Log {
	rows := make([]contracts.Game, len(games))
	copy(rows, games)
	return &Log{games: rows}
}

// Games returns the underlying rows. Callers must not modify them.
func (l *Log) Games() []contracts.Game {
	return l.games
}

// Len returns the number of rows.
func (l *Log) Len() int {
	return len(l.games)
}

// Copy returns a deep copy of the log.
func (l *Log) Copy() *Log {
	return New(l.games)
}

// hasGameIDs reports whether any row carries a game id. A log without
// ids cannot be matched against overrides at all.
func (l *Log) hasGameIDs() bool {
	for _, g := range l.games {
		if g.GameID != "" {
			return true
		}
	}
	return false
}

// ApplyOutcomes returns a new log with the given outcomes forced.
// outcomes maps game_id to the winning team name. For every row whose
// game_id is overridden, the winner's score is set to one point above
// the pre-existing higher of the two scores (missing scores treated
// as 0) and the loser's score to that higher value, so the winner
// leads by exactly 1 and both rows of the pair stay symmetric.
// Game ids not present in the log are silently ignored.
func (l *Log) ApplyOutcomes(outcomes map[string]string) *Log {
	updated := l.Copy()
	if len(outcomes) == 0 || !updated.hasGameIDs() {
		return updated
	}

	for i := range updated.games {
		g := &updated.games[i]
		if g.GameID == "" {
			continue
		}
		winner, ok := outcomes[g.GameID]
		if !ok {
			continue
		}

		high := 0
		if g.TeamScore != nil && *g.TeamScore > high {
			high = *g.TeamScore
		}
		if g.OppScore != nil && *g.OppScore > high {
			high = *g.OppScore
		}

		switch winner {
		case g.Team:
			g.TeamWon = boolPtr(true)
			g.TeamScore = intPtr(high + 1)
			g.OppScore = intPtr(high)
		case g.Opponent:
			g.TeamWon = boolPtr(false)
			g.OppScore = intPtr(high + 1)
			g.TeamScore = intPtr(high)
		}
	}

	return updated
}

// TeamGames returns a team's games for a season up to and including
// the cutoff week, in week order. decidedOnly restricts to games with
// a resolved outcome.
func (l *Log) TeamGames(team string, season, cutoffWeek int, decidedOnly bool) []contracts.Game {
	var out []contracts.Game
	for _, g := range l.games {
		if g.Team != team || g.Season != season || g.Week > cutoffWeek {
			continue
		}
		if decidedOnly && !g.Decided() {
			continue
		}
		out = append(out, g)
	}
	sortByWeek(out)
	return out
}

// DecidedGames returns all decided rows for a season up to the cutoff
// week.
func (l *Log) DecidedGames(season, cutoffWeek int) []contracts.Game {
	var out []contracts.Game
	for _, g := range l.games {
		if g.Season != season || g.Week > cutoffWeek || !g.Decided() {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Teams returns the distinct team names appearing in a season, sorted.
func (l *Log) Teams(season int) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, g := range l.games {
		if g.Season != season || g.Team == "" {
			continue
		}
		if !seen[g.Team] {
			seen[g.Team] = true
			teams = append(teams, g.Team)
		}
	}
	sortStrings(teams)
	return teams
}

// CurrentWeek returns the latest week with a decided game for the
// season, or 1 when nothing has been played.
func (l *Log) CurrentWeek(season int) int {
	week := 0
	for _, g := range l.games {
		if g.Season == season && g.Decided() && g.Week > week {
			week = g.Week
		}
	}
	if week == 0 {
		return 1
	}
	return week
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
