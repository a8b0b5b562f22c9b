package stats

import "time"

const (
	teamX uint = 1
	teamY uint = 2
	teamZ uint = 3

	p1 uint = 101
	p2 uint = 102
	p3 uint = 103
	y1 uint = 201
	y2 uint = 202
	z1 uint = 301
)

var kickoff = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

func uptr(v uint) *uint { return &v }

func testRosters() Rosters {
	return Rosters{
		teamX: {
			p1: {PlayerID: p1, Name: "Ana Ruiz", JerseyNumber: 7},
			p2: {PlayerID: p2, Name: "Luis Soto", JerseyNumber: 11},
			p3: {PlayerID: p3, Name: "Marta Gil", JerseyNumber: 23},
		},
		teamY: {
			y1: {PlayerID: y1, Name: "Beto Lara", JerseyNumber: 12},
			y2: {PlayerID: y2, Name: "Caro Vega", JerseyNumber: 88},
		},
		teamZ: {
			z1: {PlayerID: z1, Name: "Dani Paz", JerseyNumber: 3},
		},
	}
}

func teamName(id uint) string {
	switch id {
	case teamX:
		return "Halcones"
	case teamY:
		return "Toros"
	case teamZ:
		return "Lobos"
	}
	return "Unknown"
}

func teamRefs(ids ...uint) []TeamRef {
	out := make([]TeamRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, TeamRef{ID: id, Name: teamName(id)})
	}
	return out
}

func side(teamID uint, score int, e Eligibility) Side {
	return Side{TeamID: teamID, TeamName: teamName(teamID), Score: score, Eligibility: e}
}

func official(teamID uint, score int) Side { return side(teamID, score, EligibilityOfficial) }

func friendly(teamID uint, score int) Side { return side(teamID, score, EligibilityFriendly) }

func finishedMatch(id uint, home, away Side, day int, plays ...Play) Match {
	return Match{
		ID:           id,
		TournamentID: 1,
		Category:     "varonil",
		State:        StateFinished,
		ScheduledAt:  kickoff.AddDate(0, 0, day),
		Home:         home,
		Away:         away,
		Plays:        plays,
	}
}

func completedPass(seq int, passer, receiver uint, td bool) Play {
	return Play{
		ID:        uint(seq),
		Sequence:  seq,
		Type:      PlayCompletedPass,
		Primary:   passer,
		Secondary: uptr(receiver),
		Result:    PlayResult{Touchdown: td},
	}
}

func conversion(seq int, t PlayType, passer uint, receiver *uint, points int) Play {
	return Play{
		ID:        uint(seq),
		Sequence:  seq,
		Type:      t,
		Primary:   passer,
		Secondary: receiver,
		Result:    PlayResult{Points: points},
	}
}

// exampleMatch is X 21 - 14 Y with a touchdown pass and a one-point try, P1 to P2.
func exampleMatch() Match {
	return finishedMatch(1, official(teamX, 21), official(teamY, 14), 0,
		completedPass(1, p1, p2, true),
		conversion(2, PlayOnePointConversion, p1, uptr(p2), 1),
	)
}
