package stats

import "time"

// PlayTrace shows how one play touched the traced player.
type PlayTrace struct {
	PlayID      uint         `json:"play_id"`
	Sequence    int          `json:"sequence"`
	Clock       Clock        `json:"clock"`
	Type        PlayType     `json:"type"`
	Description string       `json:"description,omitempty"`
	Roles       []Role       `json:"roles"`
	Credits     []Credit     `json:"credits"`
	Skipped     *SkippedPlay `json:"skipped,omitempty"`
}

// MatchTrace is the traced player's view of one match.
type MatchTrace struct {
	MatchID     uint            `json:"match_id"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	State       MatchState      `json:"state"`
	OpponentID  uint            `json:"opponent_id"`
	Opponent    string          `json:"opponent"`
	Eligible    bool            `json:"eligible"`
	Reason      ExclusionReason `json:"reason,omitempty"`
	Plays       []PlayTrace     `json:"plays"`
	Totals      PlayerStats     `json:"totals"`
}

// PlayerSeasonTrace explains a player's season totals match by match.
type PlayerSeasonTrace struct {
	PlayerID     uint         `json:"player_id"`
	TeamID       uint         `json:"team_id"`
	Name         string       `json:"name"`
	JerseyNumber int          `json:"jersey_number"`
	Matches      []MatchTrace `json:"matches"`
	Season       PlayerStats  `json:"season"`
}

// TracePlayerSeason replays every match of teamID and records, for player,
// each play they took part in and the counters it moved. Excluded matches are
// listed with their reason and no plays.
func TracePlayerSeason(c Classifier, matches []Match, teamID uint, player RosterEntry, rosters Rosters) PlayerSeasonTrace {
	trace := PlayerSeasonTrace{
		PlayerID:     player.PlayerID,
		TeamID:       teamID,
		Name:         player.Name,
		JerseyNumber: player.JerseyNumber,
		Matches:      []MatchTrace{},
	}
	season := NewAccumulator()
	season.Register(teamID, player)

	for i := range matches {
		m := &matches[i]
		if !m.HasTeam(teamID) {
			continue
		}
		opp, _ := m.Opponent(teamID)
		mt := MatchTrace{
			MatchID:     m.ID,
			ScheduledAt: m.ScheduledAt,
			State:       m.State,
			OpponentID:  opp.TeamID,
			Opponent:    opp.TeamName,
			Plays:       []PlayTrace{},
		}
		v := c.Classify(m, teamID)
		switch {
		case !m.Finished():
			mt.Reason = ReasonNotFinished
		case !v.Eligible:
			mt.Reason = v.Reason
		default:
			mt.Eligible = true
		}
		if !mt.Eligible {
			trace.Matches = append(trace.Matches, mt)
			continue
		}

		perMatch := NewAccumulator()
		var diag Diagnostics
		observe := func(p Play, credits []Credit, teamOf map[uint]uint, skipped *SkippedPlay) {
			roles := p.RolesOf(player.PlayerID)
			if len(roles) == 0 {
				return
			}
			if teamOf != nil && teamOf[player.PlayerID] != teamID {
				return
			}
			pt := PlayTrace{
				PlayID:      p.ID,
				Sequence:    p.Sequence,
				Clock:       p.Clock,
				Type:        p.Type,
				Description: p.Description,
				Roles:       roles,
				Credits:     []Credit{},
				Skipped:     skipped,
			}
			for _, cr := range credits {
				if cr.PlayerID == player.PlayerID {
					pt.Credits = append(pt.Credits, cr)
				}
			}
			mt.Plays = append(mt.Plays, pt)
		}
		attributeMatch(perMatch, m, rosters, []uint{teamID}, &diag, observe)
		attributeMatch(season, m, rosters, []uint{teamID}, &Diagnostics{}, nil)

		if totals, ok := perMatch.Get(teamID, player.PlayerID); ok {
			mt.Totals = totals
		} else {
			mt.Totals = PlayerStats{PlayerID: player.PlayerID, TeamID: teamID, Name: player.Name, JerseyNumber: player.JerseyNumber}
		}
		trace.Matches = append(trace.Matches, mt)
	}

	trace.Season, _ = season.Get(teamID, player.PlayerID)
	return trace
}
