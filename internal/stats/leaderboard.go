package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// StatKind is a statistic players can be ranked by.
type StatKind string

const (
	KindQBRating      StatKind = "qb_rating"
	KindPoints        StatKind = "points"
	KindReceptions    StatKind = "receptions"
	KindTackles       StatKind = "tackles"
	KindInterceptions StatKind = "interceptions"
	KindSacks         StatKind = "sacks"
)

// StatKinds lists every rankable statistic in display order.
var StatKinds = []StatKind{KindQBRating, KindPoints, KindReceptions, KindTackles, KindInterceptions, KindSacks}

var ErrUnknownStatKind = errors.New("unknown stat kind")

// ParseStatKind accepts "qb_rating" as well as "qb-rating".
func ParseStatKind(s string) (StatKind, error) {
	k := StatKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range StatKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatKind, s)
}

// Value is the ranked quantity for p.
func (k StatKind) Value(p PlayerStats) float64 {
	switch k {
	case KindQBRating:
		return p.QBRating
	case KindPoints:
		return float64(p.Points)
	case KindReceptions:
		return float64(p.Receiving.Receptions)
	case KindTackles:
		return float64(p.Tackles)
	case KindInterceptions:
		return float64(p.Interceptions)
	case KindSacks:
		return float64(p.Sacks)
	}
	return 0
}

// tieBreak is the secondary statistic used when values are equal.
func (k StatKind) tieBreak(p PlayerStats) int {
	switch k {
	case KindQBRating:
		return p.Passing.Completions
	case KindPoints:
		return p.Touchdowns
	case KindReceptions:
		return p.Receiving.Touchdowns
	case KindTackles:
		return p.Sacks
	case KindInterceptions:
		return p.Points
	case KindSacks:
		return p.Tackles
	}
	return 0
}

// EmptyReason explains an empty leaderboard.
type EmptyReason string

const (
	ReasonNoEligibleMatches   EmptyReason = "no_eligible_matches"
	ReasonNoQualifyingPlayers EmptyReason = "no_qualifying_players"
)

// LeaderboardOptions tunes a single leaderboard.
type LeaderboardOptions struct {
	// Limit caps the number of entries; 0 keeps everyone.
	Limit int
	// MinAttempts is the pass attempts a passer needs to be ranked by QB rating.
	MinAttempts int
	TeamNames   map[uint]string
}

// LeaderboardEntry is one ranked player with the totals behind the rank.
type LeaderboardEntry struct {
	Rank         int         `json:"rank"`
	PlayerID     uint        `json:"player_id"`
	PlayerName   string      `json:"player_name"`
	JerseyNumber int         `json:"jersey_number"`
	TeamID       uint        `json:"team_id"`
	TeamName     string      `json:"team_name,omitempty"`
	Value        float64     `json:"value"`
	Stats        PlayerStats `json:"stats"`
}

// Leaderboard is the ranked list for one stat kind.
type Leaderboard struct {
	Kind    StatKind           `json:"kind"`
	Entries []LeaderboardEntry `json:"entries"`
	Reason  EmptyReason        `json:"reason,omitempty"`
}

// BuildLeaderboard ranks the players in acc by kind. Players whose value is
// not positive are left out, as are passers under opts.MinAttempts when
// ranking by QB rating. An accumulator holding matches but no ranked player
// reports no_qualifying_players.
func BuildLeaderboard(acc *Accumulator, kind StatKind, opts LeaderboardOptions) Leaderboard {
	board := Leaderboard{Kind: kind, Entries: []LeaderboardEntry{}}
	if acc == nil || (acc.Matches() == 0 && acc.Len() == 0) {
		board.Reason = ReasonNoEligibleMatches
		return board
	}

	for _, p := range acc.Players() {
		v := kind.Value(p)
		if v <= 0 {
			continue
		}
		if kind == KindQBRating && p.Passing.Attempts < opts.MinAttempts {
			continue
		}
		board.Entries = append(board.Entries, LeaderboardEntry{
			PlayerID:     p.PlayerID,
			PlayerName:   p.Name,
			JerseyNumber: p.JerseyNumber,
			TeamID:       p.TeamID,
			TeamName:     opts.TeamNames[p.TeamID],
			Value:        v,
			Stats:        p,
		})
	}

	sort.SliceStable(board.Entries, func(i, j int) bool {
		a, b := board.Entries[i], board.Entries[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if ta, tb := kind.tieBreak(a.Stats), kind.tieBreak(b.Stats); ta != tb {
			return ta > tb
		}
		if a.JerseyNumber != b.JerseyNumber {
			return a.JerseyNumber < b.JerseyNumber
		}
		return a.PlayerID < b.PlayerID
	})

	if opts.Limit > 0 && len(board.Entries) > opts.Limit {
		board.Entries = board.Entries[:opts.Limit]
	}
	for i := range board.Entries {
		board.Entries[i].Rank = i + 1
	}
	if len(board.Entries) == 0 {
		board.Reason = ReasonNoQualifyingPlayers
	}
	return board
}
