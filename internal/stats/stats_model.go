package stats

import (
	"errors"
	"fmt"
	"time"
)

// MatchState is the lifecycle state of a match.
type MatchState string

const (
	StateScheduled  MatchState = "scheduled"
	StateInProgress MatchState = "in_progress"
	StateHalftime   MatchState = "halftime"
	StateFinished   MatchState = "finished"
	StateSuspended  MatchState = "suspended"
	StateCancelled  MatchState = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s MatchState) Valid() bool {
	switch s {
	case StateScheduled, StateInProgress, StateHalftime, StateFinished, StateSuspended, StateCancelled:
		return true
	}
	return false
}

// Active reports whether plays may still be appended.
func (s MatchState) Active() bool {
	return s == StateInProgress || s == StateHalftime
}

// Eligibility is the per-side tag deciding whether a match counts for that team.
type Eligibility string

const (
	EligibilityOfficial Eligibility = "official"
	EligibilityFriendly Eligibility = "friendly"
)

// Side is one team's view of a match.
type Side struct {
	TeamID      uint        `json:"team_id"`
	TeamName    string      `json:"team_name"`
	Score       int         `json:"score"`
	Eligibility Eligibility `json:"eligibility"`
}

// Match is the in-memory snapshot the engine aggregates over.
type Match struct {
	ID           uint       `json:"id"`
	TournamentID uint       `json:"tournament_id"`
	Category     string     `json:"category"`
	State        MatchState `json:"state"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Home         Side       `json:"home"`
	Away         Side       `json:"away"`
	Plays        []Play     `json:"plays,omitempty"`
}

// Side returns the side played by teamID.
func (m *Match) Side(teamID uint) (*Side, bool) {
	switch teamID {
	case m.Home.TeamID:
		return &m.Home, true
	case m.Away.TeamID:
		return &m.Away, true
	}
	return nil, false
}

// Opponent returns the side facing teamID.
func (m *Match) Opponent(teamID uint) (*Side, bool) {
	switch teamID {
	case m.Home.TeamID:
		return &m.Away, true
	case m.Away.TeamID:
		return &m.Home, true
	}
	return nil, false
}

func (m *Match) HasTeam(teamID uint) bool {
	_, ok := m.Side(teamID)
	return ok
}

func (m *Match) Finished() bool {
	return m.State == StateFinished
}

// Winner returns the winning team. ok is false for ties and unfinished matches.
func (m *Match) Winner() (teamID uint, ok bool) {
	if !m.Finished() {
		return 0, false
	}
	switch {
	case m.Home.Score > m.Away.Score:
		return m.Home.TeamID, true
	case m.Away.Score > m.Home.Score:
		return m.Away.TeamID, true
	}
	return 0, false
}

// RosterEntry is a player's membership in one team.
type RosterEntry struct {
	PlayerID     uint   `json:"player_id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
}

// Roster maps player ID to membership for a single team.
type Roster map[uint]RosterEntry

func (r Roster) Has(playerID uint) bool {
	_, ok := r[playerID]
	return ok
}

// Rosters maps team ID to roster.
type Rosters map[uint]Roster

var (
	ErrUnlistedParticipant  = errors.New("player is on neither roster")
	ErrAmbiguousParticipant = errors.New("player is on both rosters")
)

// SideOf resolves which of home and away part played for. A player listed by
// one roster belongs to it. A player listed by both is placed by the play's
// possession team and the side of the ball the role sits on.
func (rs Rosters) SideOf(p Play, part Participant, home, away uint) (uint, error) {
	onHome, onAway := rs[home].Has(part.PlayerID), rs[away].Has(part.PlayerID)
	switch {
	case onHome && !onAway:
		return home, nil
	case onAway && !onHome:
		return away, nil
	case !onHome:
		return 0, fmt.Errorf("%w: player %d", ErrUnlistedParticipant, part.PlayerID)
	}

	var offense, defense uint
	switch p.PossessionTeamID {
	case home:
		offense, defense = home, away
	case away:
		offense, defense = away, home
	default:
		return 0, fmt.Errorf("%w: player %d and no possession team", ErrAmbiguousParticipant, part.PlayerID)
	}
	if p.OnOffense(part.Role) {
		return offense, nil
	}
	return defense, nil
}

// TeamRef identifies a team taking part in an aggregation.
type TeamRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
