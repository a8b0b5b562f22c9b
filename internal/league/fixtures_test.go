package league

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/DhavalSuthar-24/flagstats/config"
	"github.com/DhavalSuthar-24/flagstats/internal/match"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
)

const (
	tournamentID = 1
	halcones     = 1
	toros        = 2
	lobos        = 3
)

var teamNamesByID = map[uint]string{halcones: "Halcones", toros: "Toros", lobos: "Lobos"}

// fakeStore serves both readers from memory.
type fakeStore struct {
	regs    []match.TournamentTeam
	matches []match.Match
	members map[uint][]team.TeamMember
}

func (f *fakeStore) GetTournamentByID(_ context.Context, id uint) (*match.Tournament, error) {
	if id != tournamentID {
		return nil, nil
	}
	t := &match.Tournament{Name: "Liga Norte"}
	t.ID = id
	return t, nil
}

func (f *fakeStore) GetTournamentTeam(_ context.Context, tid, teamID uint) (*match.TournamentTeam, error) {
	for i := range f.regs {
		if f.regs[i].TournamentID == tid && f.regs[i].TeamID == teamID {
			return &f.regs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetTournamentTeams(_ context.Context, tid uint, categorySlug string) ([]match.TournamentTeam, error) {
	var out []match.TournamentTeam
	for _, r := range f.regs {
		if r.TournamentID == tid && (categorySlug == "" || r.CategorySlug == categorySlug) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetMatchByID(_ context.Context, id uint) (*match.Match, error) {
	for i := range f.matches {
		if f.matches[i].ID == id {
			return &f.matches[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetTournamentMatches(_ context.Context, tid uint, categorySlug string) ([]match.Match, error) {
	var out []match.Match
	for _, m := range f.matches {
		if m.TournamentID == tid && (categorySlug == "" || m.CategorySlug == categorySlug) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) GetTeamMatches(_ context.Context, tid, teamID uint) ([]match.Match, error) {
	var out []match.Match
	for _, m := range f.matches {
		if m.TournamentID != tid {
			continue
		}
		for _, mt := range m.MatchTeams {
			if mt.TeamID == teamID {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) GetRosters(_ context.Context, teamIDs []uint) (stats.Rosters, error) {
	out := make(stats.Rosters, len(teamIDs))
	for _, id := range teamIDs {
		out[id] = team.ToRoster(f.members[id])
	}
	return out, nil
}

func (f *fakeStore) GetMemberByJersey(_ context.Context, teamID uint, jersey int) (*team.TeamMember, error) {
	for i, m := range f.members[teamID] {
		if m.JerseyNumber == jersey {
			return &f.members[teamID][i], nil
		}
	}
	return nil, nil
}

func member(teamID, playerID uint, jersey int, first, last string) team.TeamMember {
	m := team.TeamMember{TeamID: teamID, PlayerID: playerID, JerseyNumber: jersey, IsActive: true}
	m.Player.ID = playerID
	m.Player.FirstName, m.Player.LastName = first, last
	return m
}

func side(teamID uint, home bool, score int, e stats.Eligibility) match.MatchTeam {
	mt := match.MatchTeam{TeamID: teamID, IsHomeTeam: home, Score: score, Eligibility: e}
	mt.Team.ID = teamID
	mt.Team.Name = teamNamesByID[teamID]
	return mt
}

func play(seq int, t stats.PlayType, primary uint, secondary *uint) match.Play {
	return match.Play{Sequence: seq, Type: t, PrimaryPlayerID: primary, SecondaryPlayerID: secondary}
}

func uptr(v uint) *uint { return &v }

func stored(id uint, state stats.MatchState, day int, sides []match.MatchTeam, plays ...match.Play) match.Match {
	m := match.Match{
		TournamentID: tournamentID,
		Category:     "Mixed Open",
		CategorySlug: "mixed-open",
		Status:       state,
		ScheduledAt:  time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		MatchTeams:   sides,
		Plays:        plays,
	}
	m.ID = id
	for i := range m.Plays {
		m.Plays[i].ID = id*100 + uint(i) + 1
		m.Plays[i].MatchID = id
	}
	return m
}

// newStore builds a small season:
//
//	match 10: Halcones 21-14 Toros, finished, official for both
//	match 11: Toros 7-0 Lobos, finished, official for Toros, friendly for Lobos
//	match 12: Halcones vs Lobos, still scheduled
//	match 13: Halcones with no opponent stored
func newStore() *fakeStore {
	td := play(1, stats.PlayCompletedPass, 101, uptr(102))
	td.IsTouchdown, td.Points = true, 6
	pat := play(2, stats.PlayOnePointConversion, 101, uptr(102))
	pat.Points = 1
	run := play(1, stats.PlayRun, 201, nil)
	run.IsTouchdown = true

	s := &fakeStore{
		members: map[uint][]team.TeamMember{
			halcones: {member(halcones, 101, 7, "Ana", "Ruiz"), member(halcones, 102, 11, "Luis", "Soto")},
			toros:    {member(toros, 201, 12, "Beto", "Lara"), member(toros, 202, 88, "Caro", "Vega")},
			lobos:    {member(lobos, 301, 3, "Dani", "Paz")},
		},
		matches: []match.Match{
			stored(10, stats.StateFinished, 1,
				[]match.MatchTeam{side(halcones, true, 21, stats.EligibilityOfficial), side(toros, false, 14, stats.EligibilityOfficial)},
				td, pat,
				play(3, stats.PlayInterception, 202, uptr(101)),
				play(4, stats.PlaySack, 201, nil),
				play(5, stats.PlayTackle, 999, nil),
			),
			stored(11, stats.StateFinished, 8,
				[]match.MatchTeam{side(toros, true, 7, stats.EligibilityOfficial), side(lobos, false, 0, stats.EligibilityFriendly)},
				run,
				play(2, stats.PlayTackle, 301, nil),
			),
			stored(12, stats.StateScheduled, 15,
				[]match.MatchTeam{side(halcones, true, 0, stats.EligibilityOfficial), side(lobos, false, 0, stats.EligibilityOfficial)},
			),
			stored(13, stats.StateFinished, 2,
				[]match.MatchTeam{side(halcones, true, 3, stats.EligibilityOfficial)},
			),
		},
	}
	for _, id := range []uint{halcones, toros, lobos} {
		reg := match.TournamentTeam{TournamentID: tournamentID, TeamID: id, Category: "Mixed Open", CategorySlug: "mixed-open"}
		reg.Team.ID = id
		reg.Team.Name = teamNamesByID[id]
		s.regs = append(s.regs, reg)
	}
	return s
}

func testStatsConfig() config.StatsConfig {
	return config.StatsConfig{
		DefaultEligibility:      "official",
		QBMinAttemptsTournament: 5,
		QBMinAttemptsTeam:       1,
		MatchLeadersLimit:       3,
		TeamLeadersLimit:        5,
		TournamentLeadersLimit:  5,
	}
}

func newTestService() *Service {
	store := newStore()
	return NewService(store, store, testStatsConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}
