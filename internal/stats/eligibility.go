package stats

// ExclusionReason explains why a match does not count for a team.
type ExclusionReason string

const (
	ReasonNotParticipant ExclusionReason = "not_participant"
	ReasonFriendly       ExclusionReason = "friendly"
	ReasonUnknownTag     ExclusionReason = "unknown_eligibility"
	ReasonNotFinished    ExclusionReason = "not_finished"
	// ReasonIncomplete marks a stored match that could not be loaded, such as
	// one missing a side.
	ReasonIncomplete ExclusionReason = "incomplete_match"
)

// Verdict is the classifier's answer for one (match, team) pair.
type Verdict struct {
	Eligible bool            `json:"eligible"`
	Reason   ExclusionReason `json:"reason,omitempty"`
}

// Classifier decides whether a match counts toward a team's statistics.
// It is evaluated separately for each side, so a match may count for one
// team and not the other.
type Classifier interface {
	Classify(m *Match, teamID uint) Verdict
}

// TagClassifier reads the eligibility tag stored on the team's side.
// Sides without a tag take Default.
type TagClassifier struct {
	Default Eligibility
}

// NewTagClassifier returns a classifier falling back to def, or to official
// when def is empty.
func NewTagClassifier(def Eligibility) TagClassifier {
	if def == "" {
		def = EligibilityOfficial
	}
	return TagClassifier{Default: def}
}

func (c TagClassifier) Classify(m *Match, teamID uint) Verdict {
	side, ok := m.Side(teamID)
	if !ok {
		return Verdict{Reason: ReasonNotParticipant}
	}
	tag := side.Eligibility
	if tag == "" {
		tag = c.Default
	}
	switch tag {
	case EligibilityOfficial:
		return Verdict{Eligible: true}
	case EligibilityFriendly:
		return Verdict{Reason: ReasonFriendly}
	}
	return Verdict{Reason: ReasonUnknownTag}
}

// Exclusion records a match left out of a team's aggregation.
type Exclusion struct {
	MatchID uint            `json:"match_id"`
	TeamID  uint            `json:"team_id"`
	Reason  ExclusionReason `json:"reason"`
}

// SelectMatches returns the finished matches that count for teamID, plus the
// reasons every other match of that team was dropped. Matches the team did not
// play are ignored silently.
func SelectMatches(c Classifier, matches []Match, teamID uint) ([]*Match, []Exclusion) {
	var (
		eligible []*Match
		excluded []Exclusion
	)
	for i := range matches {
		m := &matches[i]
		if !m.HasTeam(teamID) {
			continue
		}
		if !m.Finished() {
			excluded = append(excluded, Exclusion{MatchID: m.ID, TeamID: teamID, Reason: ReasonNotFinished})
			continue
		}
		v := c.Classify(m, teamID)
		if !v.Eligible {
			excluded = append(excluded, Exclusion{MatchID: m.ID, TeamID: teamID, Reason: v.Reason})
			continue
		}
		eligible = append(eligible, m)
	}
	return eligible, excluded
}
