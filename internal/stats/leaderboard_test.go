package stats

import (
	"testing"

	"github.com/DhavalSuthar-24/flagstats/internal/assert"
)

func leaderboardMatch() Match {
	return finishedMatch(1, official(teamX, 7), official(teamY, 0), 0,
		completedPass(1, p1, p2, true),
		conversion(2, PlayOnePointConversion, p1, uptr(p2), 1),
		Play{ID: 3, Sequence: 3, Type: PlayIncompletePass, Primary: p1},
		completedPass(4, y1, y2, false),
		Play{ID: 5, Sequence: 5, Type: PlayInterception, Primary: p3, Secondary: uptr(y1), Result: PlayResult{Interception: true}},
		Play{ID: 6, Sequence: 6, Type: PlaySack, Primary: y2, Secondary: uptr(p1), Result: PlayResult{Sack: true}},
		Play{ID: 7, Sequence: 7, Type: PlayTackle, Primary: p3},
	)
}

func TestLeaderboardsAreRankedAndPositive(t *testing.T) {
	acc, diag := TournamentSeason(NewTagClassifier(""), []Match{leaderboardMatch()}, teamRefs(teamX, teamY), testRosters())
	assert.True(t, diag.Empty(), "no diagnostics expected")

	boards := make(map[StatKind]Leaderboard, len(StatKinds))
	for _, k := range StatKinds {
		boards[k] = BuildLeaderboard(acc, k, LeaderboardOptions{Limit: 5, MinAttempts: 1})
	}

	for kind, board := range boards {
		assert.True(t, len(board.Entries) > 0, string(kind)+" has entries")
		for i, e := range board.Entries {
			assert.True(t, e.Value > 0, string(kind)+" value positive")
			assert.Equal(t, e.Rank, i+1)
			if i > 0 {
				assert.True(t, board.Entries[i-1].Value >= e.Value, string(kind)+" non-increasing")
			}
		}
	}

	qb := boards[KindQBRating]
	assert.Len(t, qb.Entries, 2)
	assert.Equal(t, qb.Entries[0].PlayerID, p1)
	assert.InDelta(t, qb.Entries[0].Value, 97.9, 0.001)
	assert.Equal(t, qb.Entries[0].Stats.Passing, PassingStats{Attempts: 3, Completions: 2, Touchdowns: 1})
	assert.Equal(t, qb.Entries[1].PlayerID, y1)
	assert.InDelta(t, qb.Entries[1].Value, 16.7, 0.001)

	assert.Equal(t, boards[KindReceptions].Entries[0].PlayerID, p2)
	assert.Equal(t, boards[KindSacks].Entries[0].PlayerID, y2)
	assert.Equal(t, boards[KindInterceptions].Entries[0].PlayerID, p3)
	assert.Equal(t, boards[KindTackles].Entries[0].PlayerID, p3)
}

func TestLeaderboardMinimumAttempts(t *testing.T) {
	acc, _ := TournamentSeason(NewTagClassifier(""), []Match{leaderboardMatch()}, teamRefs(teamX, teamY), testRosters())

	board := BuildLeaderboard(acc, KindQBRating, LeaderboardOptions{Limit: 5, MinAttempts: 5})

	assert.Len(t, board.Entries, 0)
	assert.Equal(t, board.Reason, ReasonNoQualifyingPlayers)
}

func TestLeaderboardLimitAndNames(t *testing.T) {
	acc, _ := TournamentSeason(NewTagClassifier(""), []Match{leaderboardMatch()}, teamRefs(teamX, teamY), testRosters())

	board := BuildLeaderboard(acc, KindReceptions, LeaderboardOptions{Limit: 1, TeamNames: map[uint]string{teamX: "Halcones"}})

	assert.Len(t, board.Entries, 1)
	assert.Equal(t, board.Entries[0].PlayerName, "Luis Soto")
	assert.Equal(t, board.Entries[0].JerseyNumber, 11)
	assert.Equal(t, board.Entries[0].TeamName, "Halcones")
}

func TestLeaderboardTieBreak(t *testing.T) {
	acc := NewAccumulator()
	short := acc.player(teamX, RosterEntry{PlayerID: p1, Name: "Ana Ruiz", JerseyNumber: 7})
	long := acc.player(teamY, RosterEntry{PlayerID: y1, Name: "Beto Lara", JerseyNumber: 12})
	short.apply(FieldPassAttempts, 5)
	short.apply(FieldCompletions, 5)
	long.apply(FieldPassAttempts, 10)
	long.apply(FieldCompletions, 10)
	assert.Equal(t, short.QBRating, long.QBRating)

	board := BuildLeaderboard(acc, KindQBRating, LeaderboardOptions{Limit: 5, MinAttempts: 1})

	assert.Len(t, board.Entries, 2)
	assert.Equal(t, board.Entries[0].PlayerID, y1)
	assert.Equal(t, board.Entries[1].PlayerID, p1)
}

func TestEmptyLeaderboard(t *testing.T) {
	board := BuildLeaderboard(NewAccumulator(), KindPoints, LeaderboardOptions{Limit: 5})

	assert.Len(t, board.Entries, 0)
	assert.Equal(t, board.Reason, ReasonNoEligibleMatches)
}

func TestLeaderboardWithMatchesButNoCredits(t *testing.T) {
	tests := []struct {
		name string
		play Play
	}{
		{name: "Only Timeouts", play: Play{ID: 1, Sequence: 1, Type: PlayTimeout, Primary: p1}},
		{name: "Only Opponent Plays", play: completedPass(1, y1, y2, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := finishedMatch(1, official(teamX, 0), official(teamY, 6), 0, tt.play)
			acc, _ := TeamSeason(NewTagClassifier(""), []Match{m}, teamX, testRosters())
			assert.Equal(t, acc.Matches(), 1)

			board := BuildLeaderboard(acc, KindPoints, LeaderboardOptions{Limit: 5})
			assert.Len(t, board.Entries, 0)
			assert.Equal(t, board.Reason, ReasonNoQualifyingPlayers)
		})
	}
}

func TestParseStatKind(t *testing.T) {
	k, err := ParseStatKind("QB-Rating")
	assert.NilError(t, err)
	assert.Equal(t, k, KindQBRating)

	_, err = ParseStatKind("yards")
	assert.ErrorIs(t, err, ErrUnknownStatKind)
}

func TestMatchSeasonIgnoresEligibility(t *testing.T) {
	m := finishedMatch(9, friendly(teamX, 7), friendly(teamY, 0), 0, completedPass(1, p1, p2, true))
	m.State = StateInProgress

	acc, _ := MatchSeason(&m, testRosters())
	board := BuildLeaderboard(acc, KindPoints, LeaderboardOptions{Limit: 3})

	assert.Len(t, board.Entries, 1)
	assert.Equal(t, board.Entries[0].PlayerID, p2)
}
