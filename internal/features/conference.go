package features

import (
	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// ConferenceFeatures holds conference membership and, at the final
// ranking week only, the conference-champion flag.
type ConferenceFeatures struct {
	Conference           string
	IsPower5             bool
	IsConferenceChampion bool
}

// Conference resolves a team's conference features from the teams
// table. Teams without a known conference get "Unknown". The champion
// flag is sourced from the champions table and only set when the
// cutoff is the final ranking week.
func (c *Calculator) Conference(
	teams []contracts.Team,
	team string,
	season int,
	champions []contracts.ConferenceChampion,
	finalWeek bool,
) ConferenceFeatures {
	conference := ""
	for _, t := range teams {
		if t.TeamID == team && t.Season == season {
			conference = t.Conference
			break
		}
	}
	if conference == "" {
		// Fall back to any season's row for the team.
		for _, t := range teams {
			if t.TeamID == team {
				conference = t.Conference
				break
			}
		}
	}
	if conference == "" {
		conference = "Unknown"
	}

	isChampion := false
	if finalWeek {
		for _, ch := range champions {
			if ch.Season == season && ch.TeamID == team {
				isChampion = true
				break
			}
		}
	}

	return ConferenceFeatures{
		Conference:           conference,
		IsPower5:             IsPowerConference(conference),
		IsConferenceChampion: isChampion,
	}
}
