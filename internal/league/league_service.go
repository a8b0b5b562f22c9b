package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"

	"github.com/DhavalSuthar-24/flagstats/config"
	"github.com/DhavalSuthar-24/flagstats/internal/match"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
)

var (
	ErrTeamNotFound       = errors.New("team not found in tournament")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrPlayerNotFound     = errors.New("no player wears that jersey number")
)

const (
	minTeamLeadersLimit = 3
	maxTeamLeadersLimit = 10
	matchQBMinAttempts  = 1
)

// MatchReader is the read side of the match store.
type MatchReader interface {
	GetTournamentByID(ctx context.Context, id uint) (*match.Tournament, error)
	GetTournamentTeam(ctx context.Context, tournamentID, teamID uint) (*match.TournamentTeam, error)
	GetTournamentTeams(ctx context.Context, tournamentID uint, categorySlug string) ([]match.TournamentTeam, error)
	GetMatchByID(ctx context.Context, id uint) (*match.Match, error)
	GetTournamentMatches(ctx context.Context, tournamentID uint, categorySlug string) ([]match.Match, error)
	GetTeamMatches(ctx context.Context, tournamentID, teamID uint) ([]match.Match, error)
}

// RosterReader is the read side of the team store.
type RosterReader interface {
	GetRosters(ctx context.Context, teamIDs []uint) (stats.Rosters, error)
	GetMemberByJersey(ctx context.Context, teamID uint, jersey int) (*team.TeamMember, error)
}

// Service answers the read-only statistics queries. Every call loads its
// inputs and recomputes from the recorded plays.
type Service struct {
	matches    MatchReader
	rosters    RosterReader
	classifier stats.Classifier
	cfg        config.StatsConfig
	logger     *slog.Logger
}

func NewService(matches MatchReader, rosters RosterReader, cfg config.StatsConfig, logger *slog.Logger) *Service {
	return &Service{
		matches:    matches,
		rosters:    rosters,
		classifier: stats.NewTagClassifier(stats.Eligibility(cfg.DefaultEligibility)),
		cfg:        cfg,
		logger:     logger,
	}
}

// StandingsReport is the ranked table of one tournament category.
type StandingsReport struct {
	TournamentID uint                      `json:"tournament_id"`
	Category     string                    `json:"category,omitempty"`
	Entries      []stats.TeamStandingEntry `json:"entries"`
	Excluded     []stats.Exclusion         `json:"excluded_matches,omitempty"`
}

// TeamLeadersReport ranks one team's players by a single statistic.
type TeamLeadersReport struct {
	TournamentID uint              `json:"tournament_id"`
	TeamID       uint              `json:"team_id"`
	TeamName     string            `json:"team_name"`
	Leaderboard  stats.Leaderboard `json:"leaderboard"`
	Diagnostics  stats.Diagnostics `json:"diagnostics"`
}

// LeadersReport holds one leaderboard per stat kind.
type LeadersReport struct {
	TournamentID uint                                 `json:"tournament_id"`
	MatchID      uint                                 `json:"match_id,omitempty"`
	Category     string                               `json:"category,omitempty"`
	Leaderboards map[stats.StatKind]stats.Leaderboard `json:"leaderboards"`
	Diagnostics  stats.Diagnostics                    `json:"diagnostics"`
}

// GetStandings ranks the teams registered in a tournament category. An empty
// category covers the whole tournament.
func (s *Service) GetStandings(ctx context.Context, tournamentID uint, category string) (StandingsReport, error) {
	if err := s.requireTournament(ctx, tournamentID); err != nil {
		return StandingsReport{}, err
	}
	teams, snaps, diag, err := s.loadCategory(ctx, tournamentID, slugOf(category))
	if err != nil {
		return StandingsReport{}, err
	}

	table := stats.ComputeStandings(s.classifier, teams, snaps)
	diag.ExcludedMatches = append(diag.ExcludedMatches, table.Excluded...)
	s.logDiagnostics("standings", diag, slog.Uint64("tournament_id", uint64(tournamentID)))

	return StandingsReport{
		TournamentID: tournamentID,
		Category:     slugOf(category),
		Entries:      table.Entries,
		Excluded:     diag.ExcludedMatches,
	}, nil
}

// GetTeamLeaders ranks a team's players by kind over its eligible matches.
// limit 0 takes the configured default; other values are clamped to 3..10.
func (s *Service) GetTeamLeaders(ctx context.Context, tournamentID, teamID uint, kind stats.StatKind, limit int) (TeamLeadersReport, error) {
	reg, err := s.requireTeam(ctx, tournamentID, teamID)
	if err != nil {
		return TeamLeadersReport{}, err
	}
	snaps, rosters, diag, err := s.loadTeam(ctx, tournamentID, teamID)
	if err != nil {
		return TeamLeadersReport{}, err
	}

	acc, seasonDiag := stats.TeamSeason(s.classifier, snaps, teamID, rosters)
	diag.Merge(seasonDiag)
	s.logDiagnostics("team leaders", diag, slog.Uint64("tournament_id", uint64(tournamentID)), slog.Uint64("team_id", uint64(teamID)))

	board := stats.BuildLeaderboard(acc, kind, stats.LeaderboardOptions{
		Limit:       s.teamLimit(limit),
		MinAttempts: s.cfg.QBMinAttemptsTeam,
		TeamNames:   map[uint]string{teamID: reg.Team.Name},
	})
	return TeamLeadersReport{
		TournamentID: tournamentID,
		TeamID:       teamID,
		TeamName:     reg.Team.Name,
		Leaderboard:  board,
		Diagnostics:  diag,
	}, nil
}

// GetTournamentLeaders ranks every player of a category by each stat kind,
// each team contributing its own eligible matches.
func (s *Service) GetTournamentLeaders(ctx context.Context, tournamentID uint, category string) (LeadersReport, error) {
	if err := s.requireTournament(ctx, tournamentID); err != nil {
		return LeadersReport{}, err
	}
	teams, snaps, diag, err := s.loadCategory(ctx, tournamentID, slugOf(category))
	if err != nil {
		return LeadersReport{}, err
	}
	rosters, err := s.rosters.GetRosters(ctx, involvedTeams(snaps, teams))
	if err != nil {
		return LeadersReport{}, fmt.Errorf("load rosters: %w", err)
	}

	acc, seasonDiag := stats.TournamentSeason(s.classifier, snaps, teams, rosters)
	diag.Merge(seasonDiag)
	s.logDiagnostics("tournament leaders", diag, slog.Uint64("tournament_id", uint64(tournamentID)))

	boards, err := s.buildBoards(ctx, acc, stats.LeaderboardOptions{
		Limit:       s.cfg.TournamentLeadersLimit,
		MinAttempts: s.cfg.QBMinAttemptsTournament,
		TeamNames:   teamNames(teams),
	})
	if err != nil {
		return LeadersReport{}, err
	}
	return LeadersReport{
		TournamentID: tournamentID,
		Category:     slugOf(category),
		Leaderboards: boards,
		Diagnostics:  diag,
	}, nil
}

// GetMatchLeaders ranks the players of one match using that match's plays
// only, whatever its state or eligibility tags.
func (s *Service) GetMatchLeaders(ctx context.Context, matchID uint) (LeadersReport, error) {
	m, err := s.matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return LeadersReport{}, fmt.Errorf("load match: %w", err)
	}
	if m == nil {
		return LeadersReport{}, ErrMatchNotFound
	}
	snap, err := match.ToSnapshot(m)
	if err != nil {
		return LeadersReport{}, err
	}
	teams := []stats.TeamRef{
		{ID: snap.Home.TeamID, Name: snap.Home.TeamName},
		{ID: snap.Away.TeamID, Name: snap.Away.TeamName},
	}
	rosters, err := s.rosters.GetRosters(ctx, []uint{snap.Home.TeamID, snap.Away.TeamID})
	if err != nil {
		return LeadersReport{}, fmt.Errorf("load rosters: %w", err)
	}

	acc, diag := stats.MatchSeason(&snap, rosters)
	s.logDiagnostics("match leaders", diag, slog.Uint64("match_id", uint64(matchID)))

	boards, err := s.buildBoards(ctx, acc, stats.LeaderboardOptions{
		Limit:       s.cfg.MatchLeadersLimit,
		MinAttempts: matchQBMinAttempts,
		TeamNames:   teamNames(teams),
	})
	if err != nil {
		return LeadersReport{}, err
	}
	return LeadersReport{
		TournamentID: snap.TournamentID,
		MatchID:      matchID,
		Category:     snap.Category,
		Leaderboards: boards,
		Diagnostics:  diag,
	}, nil
}

// GetTeamCardSummary builds the season card of a team. The league position
// comes from the standings of the team's category.
func (s *Service) GetTeamCardSummary(ctx context.Context, tournamentID, teamID uint) (stats.TeamCard, error) {
	reg, err := s.requireTeam(ctx, tournamentID, teamID)
	if err != nil {
		return stats.TeamCard{}, err
	}
	teams, snaps, diag, err := s.loadCategory(ctx, tournamentID, reg.CategorySlug)
	if err != nil {
		return stats.TeamCard{}, err
	}
	rosters, err := s.rosters.GetRosters(ctx, involvedTeams(snaps, teams))
	if err != nil {
		return stats.TeamCard{}, fmt.Errorf("load rosters: %w", err)
	}

	table := stats.ComputeStandings(s.classifier, teams, snaps)
	card := stats.BuildTeamCard(s.classifier, stats.TeamRef{ID: teamID, Name: reg.Team.Name}, snaps, rosters, table)
	for _, ex := range diag.ExcludedMatches {
		if ex.TeamID == teamID {
			card.Diagnostics.ExcludedMatches = append(card.Diagnostics.ExcludedMatches, ex)
		}
	}
	s.logDiagnostics("team card", card.Diagnostics, slog.Uint64("tournament_id", uint64(tournamentID)), slog.Uint64("team_id", uint64(teamID)))
	return card, nil
}

// GetPlayerSeasonDebug traces, match by match, how the player wearing jersey
// on teamID earned their season totals.
func (s *Service) GetPlayerSeasonDebug(ctx context.Context, tournamentID, teamID uint, jersey int) (stats.PlayerSeasonTrace, error) {
	if _, err := s.requireTeam(ctx, tournamentID, teamID); err != nil {
		return stats.PlayerSeasonTrace{}, err
	}
	member, err := s.rosters.GetMemberByJersey(ctx, teamID, jersey)
	if err != nil {
		return stats.PlayerSeasonTrace{}, fmt.Errorf("load member: %w", err)
	}
	if member == nil {
		return stats.PlayerSeasonTrace{}, fmt.Errorf("%w: #%d", ErrPlayerNotFound, jersey)
	}
	snaps, rosters, diag, err := s.loadTeam(ctx, tournamentID, teamID)
	if err != nil {
		return stats.PlayerSeasonTrace{}, err
	}
	entry, ok := rosters[teamID][member.PlayerID]
	if !ok {
		entry = stats.RosterEntry{PlayerID: member.PlayerID, Name: member.Player.FullName(), JerseyNumber: member.JerseyNumber}
	}
	s.logDiagnostics("player debug", diag, slog.Uint64("team_id", uint64(teamID)), slog.Int("jersey", jersey))
	return stats.TracePlayerSeason(s.classifier, snaps, teamID, entry, rosters), nil
}

func (s *Service) requireTournament(ctx context.Context, tournamentID uint) error {
	t, err := s.matches.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("load tournament: %w", err)
	}
	if t == nil {
		return ErrTournamentNotFound
	}
	return nil
}

func (s *Service) requireTeam(ctx context.Context, tournamentID, teamID uint) (*match.TournamentTeam, error) {
	if err := s.requireTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	reg, err := s.matches.GetTournamentTeam(ctx, tournamentID, teamID)
	if err != nil {
		return nil, fmt.Errorf("load registration: %w", err)
	}
	if reg == nil {
		return nil, ErrTeamNotFound
	}
	return reg, nil
}

// loadCategory fetches the registered teams and the matches of a category
// concurrently.
func (s *Service) loadCategory(ctx context.Context, tournamentID uint, categorySlug string) ([]stats.TeamRef, []stats.Match, stats.Diagnostics, error) {
	var (
		regs    []match.TournamentTeam
		matches []match.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regs, err = s.matches.GetTournamentTeams(gctx, tournamentID, categorySlug)
		if err != nil {
			return fmt.Errorf("load teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matches.GetTournamentMatches(gctx, tournamentID, categorySlug)
		if err != nil {
			return fmt.Errorf("load matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, stats.Diagnostics{}, err
	}

	teams := make([]stats.TeamRef, 0, len(regs))
	for _, r := range regs {
		teams = append(teams, stats.TeamRef{ID: r.TeamID, Name: r.Team.Name})
	}
	snaps, diag := s.snapshots(matches)
	return teams, snaps, diag, nil
}

// loadTeam fetches a team's matches and the rosters of every team they involve.
func (s *Service) loadTeam(ctx context.Context, tournamentID, teamID uint) ([]stats.Match, stats.Rosters, stats.Diagnostics, error) {
	matches, err := s.matches.GetTeamMatches(ctx, tournamentID, teamID)
	if err != nil {
		return nil, nil, stats.Diagnostics{}, fmt.Errorf("load matches: %w", err)
	}
	snaps, diag := s.snapshots(matches)
	rosters, err := s.rosters.GetRosters(ctx, involvedTeams(snaps, []stats.TeamRef{{ID: teamID}}))
	if err != nil {
		return nil, nil, stats.Diagnostics{}, fmt.Errorf("load rosters: %w", err)
	}
	return snaps, rosters, diag, nil
}

// snapshots converts stored matches, excluding the ones that cannot be read
// instead of failing the whole aggregation.
// incompleteExclusions reports a malformed match once per side it still has,
// or once with no team when it has none.
func incompleteExclusions(m *match.Match) []stats.Exclusion {
	ids := m.TeamIDs()
	if len(ids) == 0 {
		return []stats.Exclusion{{MatchID: m.ID, Reason: stats.ReasonIncomplete}}
	}
	out := make([]stats.Exclusion, 0, len(ids))
	for _, id := range ids {
		out = append(out, stats.Exclusion{MatchID: m.ID, TeamID: id, Reason: stats.ReasonIncomplete})
	}
	return out
}

func (s *Service) snapshots(matches []match.Match) ([]stats.Match, stats.Diagnostics) {
	var diag stats.Diagnostics
	out := make([]stats.Match, 0, len(matches))
	for i := range matches {
		snap, err := match.ToSnapshot(&matches[i])
		if err != nil {
			s.logger.Warn("match left out of aggregation", slog.Uint64("match_id", uint64(matches[i].ID)), slog.Any("error", err))
			diag.ExcludedMatches = append(diag.ExcludedMatches, incompleteExclusions(&matches[i])...)
			continue
		}
		out = append(out, snap)
	}
	return out, diag
}

// buildBoards ranks acc by every stat kind in parallel. acc is only read.
func (s *Service) buildBoards(ctx context.Context, acc *stats.Accumulator, opts stats.LeaderboardOptions) (map[stats.StatKind]stats.Leaderboard, error) {
	boards := make([]stats.Leaderboard, len(stats.StatKinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range stats.StatKinds {
		i, kind := i, kind
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			boards[i] = stats.BuildLeaderboard(acc, kind, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[stats.StatKind]stats.Leaderboard, len(boards))
	for _, b := range boards {
		out[b.Kind] = b
	}
	return out, nil
}

func (s *Service) teamLimit(limit int) int {
	if limit == 0 {
		limit = s.cfg.TeamLeadersLimit
	}
	return min(max(limit, minTeamLeadersLimit), maxTeamLeadersLimit)
}

func (s *Service) logDiagnostics(op string, diag stats.Diagnostics, attrs ...any) {
	for _, ex := range diag.ExcludedMatches {
		s.logger.Info("match excluded",
			append(attrs, slog.String("op", op), slog.Uint64("match_id", uint64(ex.MatchID)),
				slog.Uint64("for_team", uint64(ex.TeamID)), slog.String("reason", string(ex.Reason)))...)
	}
	for _, sp := range diag.SkippedPlays {
		s.logger.Warn("play skipped",
			append(attrs, slog.String("op", op), slog.Uint64("match_id", uint64(sp.MatchID)),
				slog.Int("sequence", sp.Sequence), slog.String("reason", string(sp.Reason)), slog.String("detail", sp.Detail))...)
	}
}

func slugOf(category string) string {
	if category == "" {
		return ""
	}
	return slug.Make(category)
}

// involvedTeams lists the given teams plus every team appearing in matches.
func involvedTeams(matches []stats.Match, teams []stats.TeamRef) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, t := range teams {
		add(t.ID)
	}
	for _, m := range matches {
		add(m.Home.TeamID)
		add(m.Away.TeamID)
	}
	return ids
}

func teamNames(teams []stats.TeamRef) map[uint]string {
	names := make(map[uint]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}
