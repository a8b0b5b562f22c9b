package stats

import (
	"errors"
	"fmt"
	"strings"
)

// PlayType is the closed set of play kinds a scorekeeper can record.
type PlayType string

const (
	PlayCompletedPass      PlayType = "completed_pass"
	PlayIncompletePass     PlayType = "incomplete_pass"
	PlayInterception       PlayType = "interception"
	PlayRun                PlayType = "run"
	PlaySack               PlayType = "sack"
	PlayTackle             PlayType = "tackle"
	PlayTouchdown          PlayType = "touchdown"
	PlayOnePointConversion PlayType = "one_point_conversion"
	PlayTwoPointConversion PlayType = "two_point_conversion"
	PlaySafety             PlayType = "safety"
	PlayTimeout            PlayType = "timeout"
)

// PlayTypes lists every recognised play type.
var PlayTypes = []PlayType{
	PlayCompletedPass, PlayIncompletePass, PlayInterception, PlayRun, PlaySack, PlayTackle,
	PlayTouchdown, PlayOnePointConversion, PlayTwoPointConversion, PlaySafety, PlayTimeout,
}

const (
	touchdownPoints = 6
	safetyPoints    = 2
	maxPlayPoints   = 6
)

var (
	ErrUnknownPlayType      = errors.New("unknown play type")
	ErrMissingPrimary       = errors.New("play has no primary participant")
	ErrMissingSecondary     = errors.New("play type requires a secondary participant")
	ErrDuplicateParticipant = errors.New("secondary participant repeats the primary")
	ErrPointsOutOfRange     = errors.New("play points out of range")
)

// ParsePlayType accepts the canonical tag and the hyphenated spelling.
func ParsePlayType(s string) (PlayType, error) {
	t := PlayType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlayType, s)
	}
	return t, nil
}

func (t PlayType) Valid() bool {
	for _, known := range PlayTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsConversion reports whether t is a post-touchdown try.
func (t PlayType) IsConversion() bool {
	return t == PlayOnePointConversion || t == PlayTwoPointConversion
}

// NominalPoints is the value a successful play of this type is worth on its own.
func (t PlayType) NominalPoints() int {
	switch t {
	case PlayOnePointConversion:
		return 1
	case PlayTwoPointConversion:
		return 2
	case PlaySafety:
		return safetyPoints
	case PlayTouchdown:
		return touchdownPoints
	}
	return 0
}

// Clock is the game clock at the snap.
type Clock struct {
	Period int `json:"period"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// PlayResult carries the outcome flags of a play.
type PlayResult struct {
	Touchdown    bool `json:"touchdown"`
	Interception bool `json:"interception"`
	Sack         bool `json:"sack"`
	Points       int  `json:"points"`
}

// Play is one recorded action within a match.
type Play struct {
	ID               uint       `json:"id"`
	Sequence         int        `json:"sequence"`
	Clock            Clock      `json:"clock"`
	PossessionTeamID uint       `json:"possession_team_id"`
	Type             PlayType   `json:"type"`
	Description      string     `json:"description,omitempty"`
	Primary          uint       `json:"primary_player_id"`
	Secondary        *uint      `json:"secondary_player_id,omitempty"`
	Scorer           *uint      `json:"scoring_player_id,omitempty"`
	Result           PlayResult `json:"result"`
}

// Validate checks the structural rules a play must satisfy before attribution.
func (p Play) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlayType, p.Type)
	}
	if p.Primary == 0 {
		return ErrMissingPrimary
	}
	if p.Secondary != nil && *p.Secondary == p.Primary {
		return ErrDuplicateParticipant
	}
	if p.Result.Points < 0 || p.Result.Points > maxPlayPoints {
		return fmt.Errorf("%w: %d", ErrPointsOutOfRange, p.Result.Points)
	}
	if p.Type == PlayCompletedPass && p.Secondary == nil {
		return ErrMissingSecondary
	}
	if p.Type.IsConversion() && p.Result.Points != 0 && p.Result.Points != p.Type.NominalPoints() {
		return fmt.Errorf("%w: %s worth %d, got %d", ErrPointsOutOfRange, p.Type, p.Type.NominalPoints(), p.Result.Points)
	}
	return nil
}

// Role is the part a participant played in a play.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleScorer    Role = "scorer"
)

// Participant pairs a player with the role they were recorded in.
type Participant struct {
	PlayerID uint `json:"player_id"`
	Role     Role `json:"role"`
}

// Participants lists every player referenced by the play.
func (p Play) Participants() []Participant {
	out := []Participant{{PlayerID: p.Primary, Role: RolePrimary}}
	if p.Secondary != nil {
		out = append(out, Participant{PlayerID: *p.Secondary, Role: RoleSecondary})
	}
	if p.Scorer != nil {
		out = append(out, Participant{PlayerID: *p.Scorer, Role: RoleScorer})
	}
	return out
}

// OnOffense reports whether role is held by the team in possession. The
// defender recorded as primary on interceptions, sacks, tackles and safeties
// faces the ball carrier or passer recorded as secondary; a run's secondary is
// the tackler.
func (p Play) OnOffense(role Role) bool {
	switch p.Type {
	case PlayInterception, PlaySack, PlayTackle, PlaySafety:
		return role == RoleSecondary
	case PlayRun:
		return role != RoleSecondary
	}
	return true
}

// RolesOf returns the roles playerID held in the play.
func (p Play) RolesOf(playerID uint) []Role {
	var roles []Role
	for _, part := range p.Participants() {
		if part.PlayerID == playerID {
			roles = append(roles, part.Role)
		}
	}
	return roles
}
