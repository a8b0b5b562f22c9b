package stats

import (
	"testing"

	"github.com/DhavalSuthar-24/flagstats/internal/assert"
)

func TestTagClassifier(t *testing.T) {
	c := NewTagClassifier("")
	tests := []struct {
		name  string
		match Match
		team  uint
		want  Verdict
	}{
		{
			name:  "Official Side",
			match: finishedMatch(1, official(teamX, 7), friendly(teamY, 0), 0),
			team:  teamX,
			want:  Verdict{Eligible: true},
		},
		{
			name:  "Friendly Side",
			match: finishedMatch(1, official(teamX, 7), friendly(teamY, 0), 0),
			team:  teamY,
			want:  Verdict{Reason: ReasonFriendly},
		},
		{
			name:  "Untagged Side Uses Default",
			match: finishedMatch(1, side(teamX, 7, ""), official(teamY, 0), 0),
			team:  teamX,
			want:  Verdict{Eligible: true},
		},
		{
			name:  "Unrecognised Tag",
			match: finishedMatch(1, side(teamX, 7, "exhibition"), official(teamY, 0), 0),
			team:  teamX,
			want:  Verdict{Reason: ReasonUnknownTag},
		},
		{
			name:  "Team Not Playing",
			match: finishedMatch(1, official(teamX, 7), official(teamY, 0), 0),
			team:  teamZ,
			want:  Verdict{Reason: ReasonNotParticipant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, c.Classify(&tt.match, tt.team), tt.want)
		})
	}
}

func TestFriendlyDefaultClassifier(t *testing.T) {
	m := finishedMatch(1, side(teamX, 7, ""), official(teamY, 0), 0)
	assert.Equal(t, NewTagClassifier(EligibilityFriendly).Classify(&m, teamX), Verdict{Reason: ReasonFriendly})
}

func TestSelectMatchesReportsExclusions(t *testing.T) {
	live := finishedMatch(3, official(teamX, 0), official(teamZ, 0), 2)
	live.State = StateInProgress
	matches := []Match{
		finishedMatch(1, official(teamX, 14), official(teamY, 7), 0),
		finishedMatch(2, friendly(teamX, 21), official(teamZ, 0), 1),
		live,
		finishedMatch(4, official(teamY, 6), official(teamZ, 0), 3),
	}

	eligible, excluded := SelectMatches(NewTagClassifier(""), matches, teamX)

	assert.Len(t, eligible, 1)
	assert.Equal(t, eligible[0].ID, uint(1))
	assert.Len(t, excluded, 2)
	assert.Equal(t, excluded[0], Exclusion{MatchID: 2, TeamID: teamX, Reason: ReasonFriendly})
	assert.Equal(t, excluded[1], Exclusion{MatchID: 3, TeamID: teamX, Reason: ReasonNotFinished})
}

func TestAsymmetricEligibility(t *testing.T) {
	m := finishedMatch(1, official(teamX, 13), friendly(teamY, 6), 0,
		completedPass(1, p1, p2, true),
		completedPass(2, y1, y2, true),
	)
	matches := []Match{m}
	c := NewTagClassifier("")

	standings := ComputeStandings(c, teamRefs(teamX, teamY), matches)
	assert.Equal(t, standings.Entries[0].TeamID, teamX)
	assert.Equal(t, standings.Entries[0].Wins, 1)
	assert.Equal(t, standings.Entries[1].TeamID, teamY)
	assert.Equal(t, standings.Entries[1].GamesPlayed, 0)

	acc, _ := TournamentSeason(c, matches, teamRefs(teamX, teamY), testRosters())
	_, ok := acc.Get(teamX, p2)
	assert.True(t, ok, "official side counted")
	_, ok = acc.Get(teamY, y2)
	assert.True(t, !ok, "friendly side not counted")
}
