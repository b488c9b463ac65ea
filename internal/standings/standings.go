package standings

import (
	"sort"

	"github.com/mauv0809/ornate-quaffle/internal/league"
)

// Standing is a team augmented with its computed ranking fields. It is derived
// on every read and never persisted.
type Standing struct {
	Team          league.Team `json:"team"`
	Played        int         `json:"played"`
	Points        int         `json:"points"`
	WinPercentage float64     `json:"win_percentage"`
}

// Calculate ranks the given teams into a league table. It is pure: one entry
// per input team, input untouched, no error path. Ranking is by points, then
// wins, then win percentage, all descending; residual ties keep input order.
func Calculate(teams []league.Team) []Standing {
	table := make([]Standing, 0, len(teams))
	for _, team := range teams {
		played := team.Wins + team.Losses + team.Draws
		var winPct float64
		if played > 0 {
			winPct = float64(team.Wins) / float64(played) * 100
		}
		table = append(table, Standing{
			Team:          team,
			Played:        played,
			Points:        team.Wins*3 + team.Draws,
			WinPercentage: winPct,
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].Team.Wins != table[j].Team.Wins {
			return table[i].Team.Wins > table[j].Team.Wins
		}
		return table[i].WinPercentage > table[j].WinPercentage
	})

	return table
}
