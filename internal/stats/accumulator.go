package stats

import "sort"

// PassingStats is a passer's line.
type PassingStats struct {
	Attempts      int `json:"attempts"`
	Completions   int `json:"completions"`
	Touchdowns    int `json:"touchdowns"`
	Interceptions int `json:"interceptions"`
}

// CompletionPct is completions over attempts as a percentage, 0 without attempts.
func (p PassingStats) CompletionPct() float64 {
	return percent(p.Completions, p.Attempts)
}

// ReceivingStats is a receiver's line.
type ReceivingStats struct {
	Receptions int `json:"total"`
	Touchdowns int `json:"touchdowns"`
}

// PlayerStats is the running total for one player on one team.
type PlayerStats struct {
	PlayerID      uint           `json:"player_id"`
	TeamID        uint           `json:"team_id"`
	Name          string         `json:"name"`
	JerseyNumber  int            `json:"jersey_number"`
	Passing       PassingStats   `json:"passing"`
	Receiving     ReceivingStats `json:"receiving"`
	Tackles       int            `json:"tackles"`
	Interceptions int            `json:"interceptions"`
	Sacks         int            `json:"sacks"`
	Points        int            `json:"points"`
	Touchdowns    int            `json:"touchdowns"`
	MatchesPlayed int            `json:"matches_played"`
	QBRating      float64        `json:"qb_rating"`

	matches map[uint]struct{}
}

// StatField names a single counter a play can move.
type StatField string

const (
	FieldPassAttempts        StatField = "pass_attempts"
	FieldCompletions         StatField = "completions"
	FieldPassingTouchdowns   StatField = "passing_touchdowns"
	FieldInterceptionsThrown StatField = "interceptions_thrown"
	FieldReceptions          StatField = "receptions"
	FieldReceivingTouchdowns StatField = "receiving_touchdowns"
	FieldTackles             StatField = "tackles"
	FieldInterceptions       StatField = "interceptions"
	FieldSacks               StatField = "sacks"
	FieldPoints              StatField = "points"
	FieldTouchdowns          StatField = "touchdowns"
)

func (ps *PlayerStats) apply(field StatField, delta int) {
	switch field {
	case FieldPassAttempts:
		ps.Passing.Attempts += delta
	case FieldCompletions:
		ps.Passing.Completions += delta
	case FieldPassingTouchdowns:
		ps.Passing.Touchdowns += delta
	case FieldInterceptionsThrown:
		ps.Passing.Interceptions += delta
	case FieldReceptions:
		ps.Receiving.Receptions += delta
	case FieldReceivingTouchdowns:
		ps.Receiving.Touchdowns += delta
	case FieldTackles:
		ps.Tackles += delta
	case FieldInterceptions:
		ps.Interceptions += delta
	case FieldSacks:
		ps.Sacks += delta
	case FieldPoints:
		ps.Points += delta
	case FieldTouchdowns:
		ps.Touchdowns += delta
	}
	ps.QBRating = QBRating(ps.Passing)
}

func (ps *PlayerStats) markMatch(matchID uint) {
	if ps.matches == nil {
		ps.matches = make(map[uint]struct{})
	}
	if _, seen := ps.matches[matchID]; !seen {
		ps.matches[matchID] = struct{}{}
		ps.MatchesPlayed = len(ps.matches)
	}
}

type playerKey struct {
	teamID   uint
	playerID uint
}

// Accumulator holds per-player totals for one request. It is not safe for
// concurrent writes; concurrent readers are fine once attribution is done.
type Accumulator struct {
	players map[playerKey]*PlayerStats
	matches map[uint]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{players: make(map[playerKey]*PlayerStats), matches: make(map[uint]struct{})}
}

func (a *Accumulator) player(teamID uint, entry RosterEntry) *PlayerStats {
	key := playerKey{teamID: teamID, playerID: entry.PlayerID}
	ps, ok := a.players[key]
	if !ok {
		ps = &PlayerStats{
			PlayerID:     entry.PlayerID,
			TeamID:       teamID,
			Name:         entry.Name,
			JerseyNumber: entry.JerseyNumber,
		}
		a.players[key] = ps
	}
	return ps
}

// Register makes sure a roster member appears even without any credited play.
func (a *Accumulator) Register(teamID uint, entry RosterEntry) {
	a.player(teamID, entry)
}

// Get returns a copy of one player's totals.
func (a *Accumulator) Get(teamID, playerID uint) (PlayerStats, bool) {
	ps, ok := a.players[playerKey{teamID: teamID, playerID: playerID}]
	if !ok {
		return PlayerStats{}, false
	}
	return ps.snapshot(), true
}

func (a *Accumulator) Len() int {
	return len(a.players)
}

// Matches is the number of distinct matches folded in, credited or not.
func (a *Accumulator) Matches() int {
	return len(a.matches)
}

// Players returns copies of every accumulated player ordered by team, jersey and ID.
func (a *Accumulator) Players() []PlayerStats {
	out := make([]PlayerStats, 0, len(a.players))
	for _, ps := range a.players {
		out = append(out, ps.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		if out[i].JerseyNumber != out[j].JerseyNumber {
			return out[i].JerseyNumber < out[j].JerseyNumber
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// TeamTotals sums the accumulated players of one team.
func (a *Accumulator) TeamTotals(teamID uint) TeamTotals {
	var t TeamTotals
	for key, ps := range a.players {
		if key.teamID != teamID {
			continue
		}
		t.Touchdowns += ps.Touchdowns
		t.Interceptions += ps.Interceptions
		t.Sacks += ps.Sacks
		t.Points += ps.Points
		t.PassAttempts += ps.Passing.Attempts
		t.Completions += ps.Passing.Completions
	}
	t.CompletionPct = percent(t.Completions, t.PassAttempts)
	return t
}

func (ps *PlayerStats) snapshot() PlayerStats {
	cp := *ps
	cp.matches = nil
	return cp
}

// TeamTotals is the team-level roll-up of its players.
type TeamTotals struct {
	Touchdowns    int     `json:"touchdowns"`
	Interceptions int     `json:"interceptions"`
	Sacks         int     `json:"sacks"`
	Points        int     `json:"points"`
	PassAttempts  int     `json:"pass_attempts"`
	Completions   int     `json:"completions"`
	CompletionPct float64 `json:"completion_pct"`
}
