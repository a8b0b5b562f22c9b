package stats

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoAttributionRule is returned for a play type the engine cannot credit.
var ErrNoAttributionRule = errors.New("no attribution rule for play")

// SkipReason explains why a play contributed nothing.
type SkipReason string

const (
	SkipInvalidPlay          SkipReason = "invalid_play"
	SkipUnknownParticipant   SkipReason = "unknown_participant"
	SkipAmbiguousParticipant SkipReason = "ambiguous_participant"
	SkipNoAttributionRule    SkipReason = "no_attribution_rule"
)

// SkippedPlay is a malformed play left out of the totals.
type SkippedPlay struct {
	MatchID  uint       `json:"match_id"`
	PlayID   uint       `json:"play_id"`
	Sequence int        `json:"sequence"`
	Type     PlayType   `json:"type"`
	Reason   SkipReason `json:"reason"`
	Detail   string     `json:"detail,omitempty"`
}

// Diagnostics collects everything an aggregation left out.
type Diagnostics struct {
	SkippedPlays    []SkippedPlay `json:"skipped_plays,omitempty"`
	ExcludedMatches []Exclusion   `json:"excluded_matches,omitempty"`
}

func (d *Diagnostics) skip(s SkippedPlay) {
	for _, seen := range d.SkippedPlays {
		if seen.MatchID == s.MatchID && seen.PlayID == s.PlayID && seen.Sequence == s.Sequence {
			return
		}
	}
	d.SkippedPlays = append(d.SkippedPlays, s)
}

func (d *Diagnostics) exclude(ex ...Exclusion) {
	d.ExcludedMatches = append(d.ExcludedMatches, ex...)
}

// Merge appends other's entries, dropping duplicate skipped plays.
func (d *Diagnostics) Merge(other Diagnostics) {
	for _, s := range other.SkippedPlays {
		d.skip(s)
	}
	d.exclude(other.ExcludedMatches...)
}

// Empty reports whether nothing was left out.
func (d Diagnostics) Empty() bool {
	return len(d.SkippedPlays) == 0 && len(d.ExcludedMatches) == 0
}

// Credit is a single counter movement produced by a play.
type Credit struct {
	PlayerID uint      `json:"player_id"`
	Role     Role      `json:"role"`
	Field    StatField `json:"field"`
	Delta    int       `json:"delta"`
}

// CreditsFor maps a play to the counters it moves. It is the only place the
// attribution rules live; every scope and the season trace go through it.
func CreditsFor(p Play) ([]Credit, error) {
	var credits []Credit
	add := func(playerID uint, role Role, field StatField, delta int) {
		credits = append(credits, Credit{PlayerID: playerID, Role: role, Field: field, Delta: delta})
	}
	// scorer picks the explicit scoring participant over the default actor.
	scorer := func(fallback uint, fallbackRole Role) (uint, Role) {
		if p.Scorer != nil {
			return *p.Scorer, RoleScorer
		}
		return fallback, fallbackRole
	}
	touchdown := func(fallback uint, fallbackRole Role, points int) {
		id, role := scorer(fallback, fallbackRole)
		add(id, role, FieldPoints, points)
		add(id, role, FieldTouchdowns, 1)
	}

	switch p.Type {
	case PlayCompletedPass:
		if p.Secondary == nil {
			return nil, ErrMissingSecondary
		}
		receiver := *p.Secondary
		add(p.Primary, RolePrimary, FieldPassAttempts, 1)
		add(p.Primary, RolePrimary, FieldCompletions, 1)
		add(receiver, RoleSecondary, FieldReceptions, 1)
		if p.Result.Touchdown {
			add(p.Primary, RolePrimary, FieldPassingTouchdowns, 1)
			add(receiver, RoleSecondary, FieldReceivingTouchdowns, 1)
			touchdown(receiver, RoleSecondary, touchdownPoints)
		}

	case PlayIncompletePass:
		add(p.Primary, RolePrimary, FieldPassAttempts, 1)

	case PlayRun:
		if p.Result.Touchdown {
			touchdown(p.Primary, RolePrimary, touchdownPoints)
		}
		if p.Secondary != nil {
			add(*p.Secondary, RoleSecondary, FieldTackles, 1)
		}

	case PlayInterception:
		add(p.Primary, RolePrimary, FieldInterceptions, 1)
		if p.Result.Touchdown {
			touchdown(p.Primary, RolePrimary, touchdownPoints)
		}
		if p.Secondary != nil {
			add(*p.Secondary, RoleSecondary, FieldPassAttempts, 1)
			add(*p.Secondary, RoleSecondary, FieldInterceptionsThrown, 1)
		}

	case PlaySack:
		add(p.Primary, RolePrimary, FieldSacks, 1)

	case PlayTackle:
		add(p.Primary, RolePrimary, FieldTackles, 1)

	case PlayTouchdown:
		points := p.Result.Points
		if points == 0 {
			points = touchdownPoints
		}
		touchdown(p.Primary, RolePrimary, points)

	case PlayOnePointConversion, PlayTwoPointConversion:
		value := p.Result.Points
		var (
			receiver     uint
			receiverRole Role
		)
		switch {
		case p.Secondary != nil:
			receiver, receiverRole = *p.Secondary, RoleSecondary
		case p.Scorer != nil && *p.Scorer != p.Primary:
			receiver, receiverRole = *p.Scorer, RoleScorer
		}
		if receiver == 0 {
			// Carried in by the primary.
			if value > 0 {
				add(p.Primary, RolePrimary, FieldPoints, value)
			}
			break
		}
		add(p.Primary, RolePrimary, FieldPassAttempts, 1)
		if value > 0 {
			add(p.Primary, RolePrimary, FieldCompletions, 1)
			add(receiver, receiverRole, FieldReceptions, 1)
			id, role := scorer(receiver, receiverRole)
			add(id, role, FieldPoints, value)
		}

	case PlaySafety:
		points := p.Result.Points
		if points == 0 {
			points = safetyPoints
		}
		add(p.Primary, RolePrimary, FieldPoints, points)

	case PlayTimeout:

	default:
		return nil, fmt.Errorf("%w: %q", ErrNoAttributionRule, p.Type)
	}
	return credits, nil
}

// playObserver sees every play once it has been credited or skipped. teamOf
// maps each participant to the side it was placed on and is nil for skipped
// plays.
type playObserver func(p Play, credits []Credit, teamOf map[uint]uint, skipped *SkippedPlay)

// AttributeMatch folds one match into acc, crediting only members of teamIDs.
// With no teamIDs both sides are credited. The match is not modified.
func AttributeMatch(acc *Accumulator, m *Match, rosters Rosters, teamIDs ...uint) Diagnostics {
	var diag Diagnostics
	attributeMatch(acc, m, rosters, teamIDs, &diag, nil)
	return diag
}

func attributeMatch(acc *Accumulator, m *Match, rosters Rosters, teamIDs []uint, diag *Diagnostics, observe playObserver) {
	include := make(map[uint]bool, 2)
	if len(teamIDs) == 0 {
		teamIDs = []uint{m.Home.TeamID, m.Away.TeamID}
	}
	for _, id := range teamIDs {
		include[id] = true
	}
	acc.matches[m.ID] = struct{}{}

	for _, p := range orderedPlays(m.Plays) {
		skipped := func(reason SkipReason, err error) {
			s := SkippedPlay{MatchID: m.ID, PlayID: p.ID, Sequence: p.Sequence, Type: p.Type, Reason: reason, Detail: err.Error()}
			diag.skip(s)
			if observe != nil {
				observe(p, nil, nil, &s)
			}
		}

		if err := p.Validate(); err != nil {
			if errors.Is(err, ErrUnknownPlayType) {
				skipped(SkipNoAttributionRule, err)
			} else {
				skipped(SkipInvalidPlay, err)
			}
			continue
		}

		teamOf, err := participantTeams(rosters, m, p)
		if err != nil {
			if errors.Is(err, ErrAmbiguousParticipant) {
				skipped(SkipAmbiguousParticipant, err)
			} else {
				skipped(SkipUnknownParticipant, err)
			}
			continue
		}

		credits, err := CreditsFor(p)
		if err != nil {
			skipped(SkipNoAttributionRule, err)
			continue
		}

		for playerID, teamID := range teamOf {
			if include[teamID] {
				acc.player(teamID, rosters[teamID][playerID]).markMatch(m.ID)
			}
		}
		for _, c := range credits {
			teamID := teamOf[c.PlayerID]
			if !include[teamID] {
				continue
			}
			acc.player(teamID, rosters[teamID][c.PlayerID]).apply(c.Field, c.Delta)
		}
		if observe != nil {
			observe(p, credits, teamOf, nil)
		}
	}
}

// participantTeams places every participant of p on one side of m.
func participantTeams(rosters Rosters, m *Match, p Play) (map[uint]uint, error) {
	teamOf := make(map[uint]uint, 3)
	for _, part := range p.Participants() {
		teamID, err := rosters.SideOf(p, part, m.Home.TeamID, m.Away.TeamID)
		if err != nil {
			return nil, err
		}
		if prev, seen := teamOf[part.PlayerID]; seen && prev != teamID {
			return nil, fmt.Errorf("%w: player %d placed on both sides", ErrAmbiguousParticipant, part.PlayerID)
		}
		teamOf[part.PlayerID] = teamID
	}
	return teamOf, nil
}

// orderedPlays returns a copy of plays sorted by sequence.
func orderedPlays(plays []Play) []Play {
	out := make([]Play, len(plays))
	copy(out, plays)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sequence < out[j].Sequence
	})
	return out
}
