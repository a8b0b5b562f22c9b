package stats

import "sort"

// ResultCode is a single-letter match outcome.
type ResultCode string

const (
	ResultWin  ResultCode = "W"
	ResultLoss ResultCode = "L"
	ResultTie  ResultCode = "T"
)

const streakLength = 5

// TeamCard is the season summary shown on a team's page.
type TeamCard struct {
	TeamID         uint         `json:"team_id"`
	TeamName       string       `json:"team_name"`
	GamesPlayed    int          `json:"games_played"`
	Won            int          `json:"won"`
	Lost           int          `json:"lost"`
	Tied           int          `json:"tied"`
	PointsFor      int          `json:"points_for"`
	PointsAgainst  int          `json:"points_against"`
	Touchdowns     int          `json:"touchdowns"`
	Interceptions  int          `json:"interceptions"`
	Sacks          int          `json:"sacks"`
	CompletionPct  float64      `json:"completion_pct"`
	LeaguePosition int          `json:"league_position"`
	LastFive       []ResultCode `json:"last_five"`
	Diagnostics    Diagnostics  `json:"diagnostics"`
}

// BuildTeamCard summarises team over its eligible finished matches. The
// league position is read from standings, which the caller computes over
// the team's category.
func BuildTeamCard(c Classifier, team TeamRef, matches []Match, rosters Rosters, standings Standings) TeamCard {
	card := TeamCard{TeamID: team.ID, TeamName: team.Name, LastFive: []ResultCode{}}

	acc, diag := TeamSeason(c, matches, team.ID, rosters)
	card.Diagnostics = diag

	eligible, _ := SelectMatches(c, matches, team.ID)
	for _, m := range eligible {
		own, _ := m.Side(team.ID)
		opp, _ := m.Opponent(team.ID)
		card.GamesPlayed++
		card.PointsFor += own.Score
		card.PointsAgainst += opp.Score
		switch outcome(own.Score, opp.Score) {
		case ResultWin:
			card.Won++
		case ResultLoss:
			card.Lost++
		default:
			card.Tied++
		}
	}

	totals := acc.TeamTotals(team.ID)
	card.Touchdowns = totals.Touchdowns
	card.Interceptions = totals.Interceptions
	card.Sacks = totals.Sacks
	card.CompletionPct = totals.CompletionPct
	card.LeaguePosition = standings.Position(team.ID)
	card.LastFive = lastResults(eligible, team.ID, streakLength)
	return card
}

func outcome(own, opp int) ResultCode {
	switch {
	case own > opp:
		return ResultWin
	case own < opp:
		return ResultLoss
	}
	return ResultTie
}

// lastResults returns up to n outcomes for teamID, most recent first.
func lastResults(matches []*Match, teamID uint, n int) []ResultCode {
	ordered := make([]*Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].ScheduledAt.Equal(ordered[j].ScheduledAt) {
			return ordered[i].ScheduledAt.After(ordered[j].ScheduledAt)
		}
		return ordered[i].ID > ordered[j].ID
	})
	out := []ResultCode{}
	for _, m := range ordered {
		if len(out) == n {
			break
		}
		own, _ := m.Side(teamID)
		opp, _ := m.Opponent(teamID)
		out = append(out, outcome(own.Score, opp.Score))
	}
	return out
}
