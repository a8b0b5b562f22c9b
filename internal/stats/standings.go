package stats

import (
	"math"
	"sort"
)

// TeamStandingEntry is one row of a category table.
type TeamStandingEntry struct {
	Rank              int     `json:"rank"`
	TeamID            uint    `json:"team_id"`
	TeamName          string  `json:"team_name"`
	GamesPlayed       int     `json:"games_played"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	PointsFor         int     `json:"points_for"`
	PointsAgainst     int     `json:"points_against"`
	PointDifferential int     `json:"point_differential"`
	WinPct            float64 `json:"win_pct"`
}

// Standings is the ranked table plus the matches each team had excluded.
type Standings struct {
	Entries  []TeamStandingEntry `json:"entries"`
	Excluded []Exclusion         `json:"excluded_matches,omitempty"`
}

// Position returns the rank of teamID, 0 when absent.
func (s Standings) Position(teamID uint) int {
	for _, e := range s.Entries {
		if e.TeamID == teamID {
			return e.Rank
		}
	}
	return 0
}

// ComputeStandings ranks every team in teams over its eligible finished
// matches. Teams without an eligible match still get a row.
func ComputeStandings(c Classifier, teams []TeamRef, matches []Match) Standings {
	var out Standings
	seen := make(map[uint]bool, len(teams))
	for _, t := range teams {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true

		entry := TeamStandingEntry{TeamID: t.ID, TeamName: t.Name}
		eligible, excluded := SelectMatches(c, matches, t.ID)
		out.Excluded = append(out.Excluded, excluded...)
		for _, m := range eligible {
			own, _ := m.Side(t.ID)
			opp, _ := m.Opponent(t.ID)
			entry.GamesPlayed++
			entry.PointsFor += own.Score
			entry.PointsAgainst += opp.Score
			switch {
			case own.Score > opp.Score:
				entry.Wins++
			case own.Score < opp.Score:
				entry.Losses++
			default:
				entry.Ties++
			}
		}
		entry.PointDifferential = entry.PointsFor - entry.PointsAgainst
		if entry.GamesPlayed > 0 {
			entry.WinPct = roundThousandth((float64(entry.Wins) + float64(entry.Ties)/2) / float64(entry.GamesPlayed))
		}
		out.Entries = append(out.Entries, entry)
	}

	sort.SliceStable(out.Entries, func(i, j int) bool {
		return standingLess(out.Entries[i], out.Entries[j])
	})
	for i := range out.Entries {
		out.Entries[i].Rank = i + 1
	}
	return out
}

// standingLess orders by wins, point differential and points for, all
// descending, then by name and ID ascending.
func standingLess(a, b TeamStandingEntry) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.PointDifferential != b.PointDifferential {
		return a.PointDifferential > b.PointDifferential
	}
	if a.PointsFor != b.PointsFor {
		return a.PointsFor > b.PointsFor
	}
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}

func roundThousandth(v float64) float64 {
	return math.Round(v*1000) / 1000
}
