package stats

// TeamSeason attributes a team's eligible finished matches to its own players.
func TeamSeason(c Classifier, matches []Match, teamID uint, rosters Rosters) (*Accumulator, Diagnostics) {
	acc := NewAccumulator()
	var diag Diagnostics
	eligible, excluded := SelectMatches(c, matches, teamID)
	diag.exclude(excluded...)
	for _, m := range eligible {
		attributeMatch(acc, m, rosters, []uint{teamID}, &diag, nil)
	}
	return acc, diag
}

// TournamentSeason folds every listed team over its own eligible matches.
// A match between two listed teams is attributed once per side, each side
// filtered by its own classification.
func TournamentSeason(c Classifier, matches []Match, teams []TeamRef, rosters Rosters) (*Accumulator, Diagnostics) {
	acc := NewAccumulator()
	var diag Diagnostics
	seen := make(map[uint]bool, len(teams))
	for _, t := range teams {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		eligible, excluded := SelectMatches(c, matches, t.ID)
		diag.exclude(excluded...)
		for _, m := range eligible {
			attributeMatch(acc, m, rosters, []uint{t.ID}, &diag, nil)
		}
	}
	return acc, diag
}

// MatchSeason attributes a single match to both sides regardless of its
// eligibility tags or state.
func MatchSeason(m *Match, rosters Rosters) (*Accumulator, Diagnostics) {
	acc := NewAccumulator()
	diag := AttributeMatch(acc, m, rosters)
	return acc, diag
}
