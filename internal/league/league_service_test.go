package league

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/flagstats/internal/assert"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

func TestGetStandings(t *testing.T) {
	svc := newTestService()

	report, err := svc.GetStandings(context.Background(), tournamentID, "Mixed Open")
	assert.NilError(t, err)
	assert.Equal(t, report.Category, "mixed-open")
	assert.Len(t, report.Entries, 3)

	first, second, third := report.Entries[0], report.Entries[1], report.Entries[2]
	assert.Equal(t, first.TeamID, uint(halcones))
	assert.Equal(t, first.Rank, 1)
	assert.Equal(t, first.PointDifferential, 7)

	assert.Equal(t, second.TeamID, uint(toros))
	assert.Equal(t, second.Wins, 1)
	assert.Equal(t, second.Losses, 1)
	assert.Equal(t, second.PointsFor, 21)
	assert.InDelta(t, second.WinPct, 0.5, 1e-9)

	// The friendly against Toros does not count for Lobos.
	assert.Equal(t, third.TeamID, uint(lobos))
	assert.Equal(t, third.GamesPlayed, 0)
	assert.Equal(t, third.Rank, 3)

	reasons := map[uint]stats.ExclusionReason{}
	for _, ex := range report.Excluded {
		if ex.TeamID == lobos || ex.MatchID == 13 {
			reasons[ex.MatchID] = ex.Reason
		}
	}
	assert.Equal(t, reasons[11], stats.ReasonFriendly)
	assert.Equal(t, reasons[12], stats.ReasonNotFinished)
	assert.Equal(t, reasons[13], stats.ReasonIncomplete)
}

func TestGetStandingsUnknownCategory(t *testing.T) {
	report, err := newTestService().GetStandings(context.Background(), tournamentID, "Women")
	assert.NilError(t, err)
	assert.Len(t, report.Entries, 0)
}

func TestGetTournamentLeaders(t *testing.T) {
	report, err := newTestService().GetTournamentLeaders(context.Background(), tournamentID, "mixed-open")
	assert.NilError(t, err)
	assert.Equal(t, len(report.Leaderboards), len(stats.StatKinds))

	points := report.Leaderboards[stats.KindPoints]
	assert.Len(t, points.Entries, 2)
	assert.Equal(t, points.Entries[0].PlayerID, uint(102))
	assert.Equal(t, points.Entries[0].Value, 7.0)
	assert.Equal(t, points.Entries[0].TeamName, "Halcones")
	assert.Equal(t, points.Entries[1].PlayerID, uint(201))

	// Three attempts is below the tournament minimum.
	qb := report.Leaderboards[stats.KindQBRating]
	assert.Len(t, qb.Entries, 0)
	assert.Equal(t, qb.Reason, stats.ReasonNoQualifyingPlayers)

	// The only tackle came in a friendly for Lobos.
	tackles := report.Leaderboards[stats.KindTackles]
	assert.Len(t, tackles.Entries, 0)

	assert.Equal(t, report.Leaderboards[stats.KindInterceptions].Entries[0].PlayerID, uint(202))
	assert.Equal(t, report.Leaderboards[stats.KindSacks].Entries[0].PlayerID, uint(201))
	assert.Equal(t, report.Leaderboards[stats.KindReceptions].Entries[0].Value, 2.0)

	assert.Len(t, report.Diagnostics.SkippedPlays, 1)
	assert.Equal(t, report.Diagnostics.SkippedPlays[0].Reason, stats.SkipUnknownParticipant)
}

func TestGetTeamLeaders(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	report, err := svc.GetTeamLeaders(ctx, tournamentID, halcones, stats.KindQBRating, 0)
	assert.NilError(t, err)
	assert.Equal(t, report.TeamName, "Halcones")
	assert.Len(t, report.Leaderboard.Entries, 1)
	assert.Equal(t, report.Leaderboard.Entries[0].PlayerID, uint(101))
	assert.Equal(t, report.Leaderboard.Entries[0].Value, 58.3)

	report, err = svc.GetTeamLeaders(ctx, tournamentID, lobos, stats.KindTackles, 0)
	assert.NilError(t, err)
	assert.Len(t, report.Leaderboard.Entries, 0)
	assert.Equal(t, report.Leaderboard.Reason, stats.ReasonNoEligibleMatches)

	_, err = svc.GetTeamLeaders(ctx, tournamentID, 42, stats.KindPoints, 0)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestTeamLimitClamp(t *testing.T) {
	svc := newTestService()
	tests := []struct{ in, want int }{{0, 5}, {1, 3}, {4, 4}, {10, 10}, {50, 10}}
	for _, tt := range tests {
		assert.Equal(t, svc.teamLimit(tt.in), tt.want)
	}
}

func TestGetMatchLeaders(t *testing.T) {
	svc := newTestService()

	// Match leaders ignore the friendly tag on Lobos' side.
	report, err := svc.GetMatchLeaders(context.Background(), 11)
	assert.NilError(t, err)
	assert.Equal(t, report.MatchID, uint(11))
	tackles := report.Leaderboards[stats.KindTackles]
	assert.Len(t, tackles.Entries, 1)
	assert.Equal(t, tackles.Entries[0].PlayerID, uint(301))
	assert.Equal(t, tackles.Entries[0].TeamName, "Lobos")

	_, err = svc.GetMatchLeaders(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestGetTeamCardSummary(t *testing.T) {
	card, err := newTestService().GetTeamCardSummary(context.Background(), tournamentID, halcones)
	assert.NilError(t, err)

	assert.Equal(t, card.TeamName, "Halcones")
	assert.Equal(t, card.GamesPlayed, 1)
	assert.Equal(t, card.Won, 1)
	assert.Equal(t, card.PointsFor, 21)
	assert.Equal(t, card.PointsAgainst, 14)
	assert.Equal(t, card.Touchdowns, 1)
	assert.InDelta(t, card.CompletionPct, 66.7, 1e-9)
	assert.Equal(t, card.LeaguePosition, 1)
	assert.SliceEqual(t, card.LastFive, []stats.ResultCode{stats.ResultWin})
	assert.Len(t, card.Diagnostics.ExcludedMatches, 2)
	for _, ex := range card.Diagnostics.ExcludedMatches {
		assert.Equal(t, ex.TeamID, uint(halcones))
	}
}

func TestTeamCardIgnoresOtherTeamsIncompleteMatches(t *testing.T) {
	card, err := newTestService().GetTeamCardSummary(context.Background(), tournamentID, toros)
	assert.NilError(t, err)

	assert.Equal(t, card.GamesPlayed, 2)
	assert.Len(t, card.Diagnostics.ExcludedMatches, 0)
}

func TestGetPlayerSeasonDebug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	trace, err := svc.GetPlayerSeasonDebug(ctx, tournamentID, halcones, 11)
	assert.NilError(t, err)
	assert.Equal(t, trace.PlayerID, uint(102))
	assert.Equal(t, trace.Name, "Luis Soto")
	assert.Len(t, trace.Matches, 2)

	byMatch := map[uint]stats.MatchTrace{}
	for _, mt := range trace.Matches {
		byMatch[mt.MatchID] = mt
	}
	assert.True(t, byMatch[10].Eligible, "match 10 counts")
	assert.Len(t, byMatch[10].Plays, 2)
	assert.Equal(t, byMatch[12].Reason, stats.ReasonNotFinished)
	assert.Equal(t, trace.Season.Points, 7)
	assert.Equal(t, trace.Season.Receiving.Receptions, 2)

	_, err = svc.GetPlayerSeasonDebug(ctx, tournamentID, halcones, 55)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestUnknownTournament(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.GetStandings(ctx, 9, "")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
	_, err = svc.GetTournamentLeaders(ctx, 9, "")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
	_, err = svc.GetTeamCardSummary(ctx, 9, halcones)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}
