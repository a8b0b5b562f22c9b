package stats

import (
	"testing"

	"github.com/DhavalSuthar-24/flagstats/internal/assert"
)

func TestTouchdownPassAndConversion(t *testing.T) {
	matches := []Match{exampleMatch()}

	acc, diag := TeamSeason(NewTagClassifier(""), matches, teamX, testRosters())
	assert.True(t, diag.Empty(), "no diagnostics expected")

	receiver, ok := acc.Get(teamX, p2)
	assert.True(t, ok, "receiver accumulated")
	assert.Equal(t, receiver.Points, 7)
	assert.Equal(t, receiver.Receiving.Receptions, 2)
	assert.Equal(t, receiver.Receiving.Touchdowns, 1)
	assert.Equal(t, receiver.Touchdowns, 1)
	assert.Equal(t, receiver.MatchesPlayed, 1)

	passer, ok := acc.Get(teamX, p1)
	assert.True(t, ok, "passer accumulated")
	assert.Equal(t, passer.Points, 0)
	assert.Equal(t, passer.Passing, PassingStats{Attempts: 2, Completions: 2, Touchdowns: 1})

	board := BuildLeaderboard(acc, KindPoints, LeaderboardOptions{Limit: 5})
	assert.Len(t, board.Entries, 1)
	assert.Equal(t, board.Entries[0].PlayerID, p2)
	assert.Equal(t, board.Entries[0].Value, 7.0)
}

func TestAttributionRules(t *testing.T) {
	tests := []struct {
		name  string
		play  Play
		team  uint
		check func(t *testing.T, acc *Accumulator)
	}{
		{
			name: "Incomplete Pass",
			play: Play{ID: 1, Sequence: 1, Type: PlayIncompletePass, Primary: p1, Secondary: uptr(p2)},
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				passer, _ := acc.Get(teamX, p1)
				assert.Equal(t, passer.Passing, PassingStats{Attempts: 1})
				target, _ := acc.Get(teamX, p2)
				assert.Equal(t, target.Receiving.Receptions, 0)
			},
		},
		{
			name: "Rushing Touchdown With Tackle",
			play: Play{ID: 1, Sequence: 1, Type: PlayRun, Primary: p3, Secondary: uptr(y2), Result: PlayResult{Touchdown: true}},
			team: 0,
			check: func(t *testing.T, acc *Accumulator) {
				runner, _ := acc.Get(teamX, p3)
				assert.Equal(t, runner.Points, 6)
				assert.Equal(t, runner.Touchdowns, 1)
				tackler, _ := acc.Get(teamY, y2)
				assert.Equal(t, tackler.Tackles, 1)
			},
		},
		{
			name: "Run Scored By Explicit Scorer",
			play: Play{ID: 1, Sequence: 1, Type: PlayRun, Primary: p3, Scorer: uptr(p2), Result: PlayResult{Touchdown: true}},
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				runner, _ := acc.Get(teamX, p3)
				assert.Equal(t, runner.Points, 0)
				scorer, _ := acc.Get(teamX, p2)
				assert.Equal(t, scorer.Points, 6)
			},
		},
		{
			name: "Pick Six Credits Both Sides",
			play: Play{ID: 1, Sequence: 1, Type: PlayInterception, Primary: p1, Secondary: uptr(y1), Result: PlayResult{Interception: true, Touchdown: true}},
			team: 0,
			check: func(t *testing.T, acc *Accumulator) {
				defender, _ := acc.Get(teamX, p1)
				assert.Equal(t, defender.Interceptions, 1)
				assert.Equal(t, defender.Points, 6)
				passer, _ := acc.Get(teamY, y1)
				assert.Equal(t, passer.Passing, PassingStats{Attempts: 1, Interceptions: 1})
			},
		},
		{
			name: "Sack Credits Primary Regardless Of Possession",
			play: Play{ID: 1, Sequence: 1, Type: PlaySack, PossessionTeamID: teamX, Primary: y2, Secondary: uptr(p1), Result: PlayResult{Sack: true}},
			team: teamY,
			check: func(t *testing.T, acc *Accumulator) {
				rusher, _ := acc.Get(teamY, y2)
				assert.Equal(t, rusher.Sacks, 1)
				_, credited := acc.Get(teamX, p1)
				assert.True(t, !credited, "other side is not accumulated")
			},
		},
		{
			name: "Tackle",
			play: Play{ID: 1, Sequence: 1, Type: PlayTackle, Primary: y1},
			team: teamY,
			check: func(t *testing.T, acc *Accumulator) {
				tackler, _ := acc.Get(teamY, y1)
				assert.Equal(t, tackler.Tackles, 1)
			},
		},
		{
			name: "Two Point Run In",
			play: conversion(1, PlayTwoPointConversion, p3, nil, 2),
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				runner, _ := acc.Get(teamX, p3)
				assert.Equal(t, runner.Points, 2)
				assert.Equal(t, runner.Passing.Attempts, 0)
			},
		},
		{
			name: "Failed Conversion Pass",
			play: conversion(1, PlayOnePointConversion, p1, uptr(p2), 0),
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				passer, _ := acc.Get(teamX, p1)
				assert.Equal(t, passer.Passing, PassingStats{Attempts: 1})
				receiver, _ := acc.Get(teamX, p2)
				assert.Equal(t, receiver.Receiving.Receptions, 0)
				assert.Equal(t, receiver.Points, 0)
			},
		},
		{
			name: "Safety",
			play: Play{ID: 1, Sequence: 1, Type: PlaySafety, Primary: y2},
			team: teamY,
			check: func(t *testing.T, acc *Accumulator) {
				defender, _ := acc.Get(teamY, y2)
				assert.Equal(t, defender.Points, 2)
			},
		},
		{
			name: "Standalone Touchdown",
			play: Play{ID: 1, Sequence: 1, Type: PlayTouchdown, Primary: p2},
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				scorer, _ := acc.Get(teamX, p2)
				assert.Equal(t, scorer.Points, 6)
				assert.Equal(t, scorer.Touchdowns, 1)
			},
		},
		{
			name: "Timeout Moves Nothing",
			play: Play{ID: 1, Sequence: 1, Type: PlayTimeout, Primary: p1},
			team: teamX,
			check: func(t *testing.T, acc *Accumulator) {
				captain, _ := acc.Get(teamX, p1)
				assert.Equal(t, captain.Points, 0)
				assert.Equal(t, captain.Passing.Attempts, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := finishedMatch(1, official(teamX, 0), official(teamY, 0), 0, tt.play)
			acc := NewAccumulator()
			var diag Diagnostics
			if tt.team == 0 {
				diag = AttributeMatch(acc, &m, testRosters())
			} else {
				diag = AttributeMatch(acc, &m, testRosters(), tt.team)
			}
			assert.Len(t, diag.SkippedPlays, 0)
			tt.check(t, acc)
		})
	}
}

func TestMalformedPlaysAreSkipped(t *testing.T) {
	tests := []struct {
		name   string
		play   Play
		reason SkipReason
	}{
		{
			name:   "Participant On Neither Roster",
			play:   completedPass(1, p1, 999, false),
			reason: SkipUnknownParticipant,
		},
		{
			name:   "Points Out Of Range",
			play:   Play{ID: 1, Sequence: 1, Type: PlayTouchdown, Primary: p2, Result: PlayResult{Points: 9}},
			reason: SkipInvalidPlay,
		},
		{
			name:   "Completed Pass Without Receiver",
			play:   Play{ID: 1, Sequence: 1, Type: PlayCompletedPass, Primary: p1},
			reason: SkipInvalidPlay,
		},
		{
			name:   "Unknown Play Type",
			play:   Play{ID: 1, Sequence: 1, Type: PlayType("kickoff"), Primary: p1},
			reason: SkipNoAttributionRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := finishedMatch(4, official(teamX, 6), official(teamY, 0), 0, tt.play, completedPass(2, p1, p2, false))
			acc := NewAccumulator()
			diag := AttributeMatch(acc, &m, testRosters(), teamX)

			assert.Len(t, diag.SkippedPlays, 1)
			assert.Equal(t, diag.SkippedPlays[0].Reason, tt.reason)
			assert.Equal(t, diag.SkippedPlays[0].MatchID, uint(4))

			passer, _ := acc.Get(teamX, p1)
			assert.Equal(t, passer.Passing.Attempts, 1)
		})
	}
}

// sharedRosters lists p3 on both X and Y, as after a transfer that kept the
// old membership.
func sharedRosters() Rosters {
	rs := testRosters()
	rs[teamY][p3] = RosterEntry{PlayerID: p3, Name: "Marta Gil", JerseyNumber: 5}
	return rs
}

func TestPlayerOnBothRosters(t *testing.T) {
	tests := []struct {
		name   string
		play   Play
		team   uint
		absent uint
		check  func(t *testing.T, got PlayerStats)
	}{
		{
			name:   "Receiver Follows Possession",
			play:   Play{ID: 1, Sequence: 1, Type: PlayCompletedPass, PossessionTeamID: teamY, Primary: y1, Secondary: uptr(p3), Result: PlayResult{Touchdown: true}},
			team:   teamY,
			absent: teamX,
			check: func(t *testing.T, got PlayerStats) {
				assert.Equal(t, got.Points, 6)
				assert.Equal(t, got.Receiving.Receptions, 1)
				assert.Equal(t, got.MatchesPlayed, 1)
			},
		},
		{
			name:   "Home Possession Keeps Home Side",
			play:   Play{ID: 1, Sequence: 1, Type: PlayCompletedPass, PossessionTeamID: teamX, Primary: p1, Secondary: uptr(p3)},
			team:   teamX,
			absent: teamY,
			check: func(t *testing.T, got PlayerStats) {
				assert.Equal(t, got.Receiving.Receptions, 1)
			},
		},
		{
			name:   "Defender Takes The Other Side",
			play:   Play{ID: 1, Sequence: 1, Type: PlayInterception, PossessionTeamID: teamX, Primary: p3, Secondary: uptr(p1), Result: PlayResult{Interception: true}},
			team:   teamY,
			absent: teamX,
			check: func(t *testing.T, got PlayerStats) {
				assert.Equal(t, got.Interceptions, 1)
			},
		},
		{
			name:   "Tackler On A Run",
			play:   Play{ID: 1, Sequence: 1, Type: PlayRun, PossessionTeamID: teamX, Primary: p1, Secondary: uptr(p3)},
			team:   teamY,
			absent: teamX,
			check: func(t *testing.T, got PlayerStats) {
				assert.Equal(t, got.Tackles, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := finishedMatch(1, official(teamX, 0), official(teamY, 0), 0, tt.play)
			acc := NewAccumulator()
			diag := AttributeMatch(acc, &m, sharedRosters())
			assert.Len(t, diag.SkippedPlays, 0)

			got, ok := acc.Get(tt.team, p3)
			assert.True(t, ok, "credited to the side the player played for")
			tt.check(t, got)
			_, wrong := acc.Get(tt.absent, p3)
			assert.True(t, !wrong, "not credited to the other side")

			own := NewAccumulator()
			AttributeMatch(own, &m, sharedRosters(), tt.team)
			_, ok = own.Get(tt.team, p3)
			assert.True(t, ok, "team-scoped view keeps the player")
		})
	}
}

func TestPlayerOnBothRostersWithoutPossessionIsSkipped(t *testing.T) {
	m := finishedMatch(1, official(teamX, 0), official(teamY, 0), 0,
		Play{ID: 1, Sequence: 1, Type: PlayCompletedPass, Primary: y1, Secondary: uptr(p3)},
		completedPass(2, y1, y2, false),
	)
	acc := NewAccumulator()
	diag := AttributeMatch(acc, &m, sharedRosters())

	assert.Len(t, diag.SkippedPlays, 1)
	assert.Equal(t, diag.SkippedPlays[0].Reason, SkipAmbiguousParticipant)
	passer, _ := acc.Get(teamY, y1)
	assert.Equal(t, passer.Passing.Attempts, 1)
}

func TestTransferredPlayerCountsForEachClub(t *testing.T) {
	matches := []Match{
		finishedMatch(1, official(teamX, 6), official(teamZ, 0), 0, completedPass(1, p1, p3, true)),
		finishedMatch(2, official(teamY, 6), official(teamZ, 0), 7, completedPass(1, y1, p3, true)),
	}

	forX, diag := TeamSeason(NewTagClassifier(""), matches, teamX, sharedRosters())
	assert.True(t, diag.Empty(), "no diagnostics expected")
	atX, _ := forX.Get(teamX, p3)
	assert.Equal(t, atX.MatchesPlayed, 1)
	assert.Equal(t, atX.Points, 6)

	forY, _ := TeamSeason(NewTagClassifier(""), matches, teamY, sharedRosters())
	atY, _ := forY.Get(teamY, p3)
	assert.Equal(t, atY.MatchesPlayed, 1)
	assert.Equal(t, atY.Receiving.Receptions, 1)
}

func TestPlaysAttributedInSequenceOrder(t *testing.T) {
	plays := []Play{
		completedPass(3, p1, p2, false),
		{ID: 1, Sequence: 1, Type: PlayIncompletePass, Primary: p1},
		completedPass(2, p1, p3, true),
	}
	m := finishedMatch(1, official(teamX, 6), official(teamY, 0), 0, plays...)

	var seen []int
	attributeMatch(NewAccumulator(), &m, testRosters(), nil, &Diagnostics{}, func(p Play, _ []Credit, _ map[uint]uint, _ *SkippedPlay) {
		seen = append(seen, p.Sequence)
	})

	assert.SliceEqual(t, seen, []int{1, 2, 3})
	assert.Equal(t, m.Plays[0].Sequence, 3)
}

func TestCreditsForRejectsUnknownType(t *testing.T) {
	_, err := CreditsFor(Play{Type: PlayType("field_goal"), Primary: p1})
	assert.ErrorIs(t, err, ErrNoAttributionRule)
}
