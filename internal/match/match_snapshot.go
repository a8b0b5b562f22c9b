package match

import (
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

var ErrIncompleteMatch = errors.New("match does not have both sides")

// ToStats converts a stored play into the engine's representation.
func (p Play) ToStats() stats.Play {
	return stats.Play{
		ID:               p.ID,
		Sequence:         p.Sequence,
		Clock:            stats.Clock{Period: p.Period, Minute: p.Minute, Second: p.Second},
		PossessionTeamID: p.PossessionTeamID,
		Type:             p.Type,
		Description:      p.Description,
		Primary:          p.PrimaryPlayerID,
		Secondary:        p.SecondaryPlayerID,
		Scorer:           p.ScoringPlayerID,
		Result: stats.PlayResult{
			Touchdown:    p.IsTouchdown,
			Interception: p.IsInterception,
			Sack:         p.IsSack,
			Points:       p.Points,
		},
	}
}

func toSide(mt *MatchTeam) stats.Side {
	return stats.Side{
		TeamID:      mt.TeamID,
		TeamName:    mt.Team.Name,
		Score:       mt.Score,
		Eligibility: mt.Eligibility,
	}
}

// ToSnapshot builds the read-only view the aggregation engine works on.
// MatchTeams and Plays must be preloaded.
func ToSnapshot(m *Match) (stats.Match, error) {
	home, away := m.HomeTeam(), m.AwayTeam()
	if home == nil || away == nil {
		return stats.Match{}, fmt.Errorf("%w: match %d", ErrIncompleteMatch, m.ID)
	}
	snap := stats.Match{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Category:     m.CategorySlug,
		State:        m.Status,
		ScheduledAt:  m.ScheduledAt,
		Home:         toSide(home),
		Away:         toSide(away),
		Plays:        make([]stats.Play, 0, len(m.Plays)),
	}
	for _, p := range m.Plays {
		snap.Plays = append(snap.Plays, p.ToStats())
	}
	return snap, nil
}
