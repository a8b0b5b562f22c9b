package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
)

type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentOngoing   TournamentStatus = "ongoing"
	TournamentCompleted TournamentStatus = "completed"
)

// Match outcome for one side, stored once the match is finished.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultTie  = "tie"
)

type Tournament struct {
	gorm.Model
	Name        string           `json:"name" gorm:"not null"`
	Season      string           `json:"season" gorm:"index"`
	Description string           `json:"description" gorm:"type:text"`
	Status      TournamentStatus `json:"status" gorm:"index;default:'upcoming'"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Teams       []TournamentTeam `json:"teams,omitempty" gorm:"foreignKey:TournamentID"`
}

// TournamentTeam registers a team in one category of a tournament.
type TournamentTeam struct {
	gorm.Model
	TournamentID uint      `json:"tournament_id" gorm:"index;not null;uniqueIndex:idx_tournament_team_unique"`
	TeamID       uint      `json:"team_id" gorm:"index;not null;uniqueIndex:idx_tournament_team_unique"`
	Team         team.Team `json:"team" gorm:"foreignKey:TeamID"`
	Category     string    `json:"category" gorm:"not null"`
	CategorySlug string    `json:"category_slug" gorm:"index;not null"`
}

// Match is a scheduled or played game between two teams.
type Match struct {
	gorm.Model
	TournamentID      uint             `json:"tournament_id" gorm:"index;not null"`
	Category          string           `json:"category"`
	CategorySlug      string           `json:"category_slug" gorm:"index"`
	LocationText      string           `json:"location_text,omitempty"`
	Status            stats.MatchState `json:"status" gorm:"type:varchar(20);index;default:'scheduled'"`
	ScheduledAt       time.Time        `json:"scheduled_at" gorm:"index"`
	StartedAt         *time.Time       `json:"started_at,omitempty"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	WinningTeamID     *uint            `json:"winning_team_id,omitempty" gorm:"index"`
	PointDifferential *int             `json:"point_differential,omitempty"`
	MatchTeams        []MatchTeam      `json:"match_teams,omitempty" gorm:"foreignKey:MatchID"`
	Plays             []Play           `json:"plays,omitempty" gorm:"foreignKey:MatchID"`
}

// MatchTeam is one side of a match. Eligibility is stored per side so a game
// can be official for one team and a friendly for the other.
type MatchTeam struct {
	gorm.Model
	MatchID      uint              `json:"match_id" gorm:"index;not null"`
	TeamID       uint              `json:"team_id" gorm:"index;not null"`
	Team         team.Team         `json:"team" gorm:"foreignKey:TeamID"`
	IsHomeTeam   bool              `json:"is_home_team" gorm:"default:false"`
	Score        int               `json:"score" gorm:"default:0"`
	Eligibility  stats.Eligibility `json:"eligibility" gorm:"type:varchar(20);default:'official'"`
	ResultStatus string            `json:"result_status,omitempty"`
}

// Play is a single recorded action, ordered by Sequence within its match.
type Play struct {
	gorm.Model
	MatchID           uint           `json:"match_id" gorm:"not null;uniqueIndex:idx_match_sequence"`
	Sequence          int            `json:"sequence" gorm:"not null;uniqueIndex:idx_match_sequence"`
	Period            int            `json:"period"`
	Minute            int            `json:"minute"`
	Second            int            `json:"second"`
	PossessionTeamID  uint           `json:"possession_team_id" gorm:"index"`
	Type              stats.PlayType `json:"type" gorm:"type:varchar(32);not null"`
	Description       string         `json:"description,omitempty" gorm:"type:text"`
	PrimaryPlayerID   uint           `json:"primary_player_id" gorm:"index;not null"`
	SecondaryPlayerID *uint          `json:"secondary_player_id,omitempty" gorm:"index"`
	ScoringPlayerID   *uint          `json:"scoring_player_id,omitempty" gorm:"index"`
	IsTouchdown       bool           `json:"is_touchdown"`
	IsInterception    bool           `json:"is_interception"`
	IsSack            bool           `json:"is_sack"`
	Points            int            `json:"points"`
	RecordedBy        string         `json:"recorded_by,omitempty"`
	CorrectedAt       *time.Time     `json:"corrected_at,omitempty"`
}

var transitions = map[stats.MatchState][]stats.MatchState{
	stats.StateScheduled:  {stats.StateInProgress, stats.StateSuspended, stats.StateCancelled},
	stats.StateInProgress: {stats.StateHalftime, stats.StateSuspended},
	stats.StateHalftime:   {stats.StateInProgress, stats.StateSuspended},
	stats.StateSuspended:  {stats.StateInProgress, stats.StateCancelled},
}

// CanTransition reports whether a match may move from one state to another
// through the status endpoint. Finishing goes through FinishMatch instead.
func CanTransition(from, to stats.MatchState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanFinish reports whether a final score may be recorded from state s.
func CanFinish(s stats.MatchState) bool {
	return s == stats.StateScheduled || s.Active()
}

func (m *Match) side(home bool) *MatchTeam {
	for i := range m.MatchTeams {
		if m.MatchTeams[i].IsHomeTeam == home {
			return &m.MatchTeams[i]
		}
	}
	return nil
}

// HomeTeam returns the home side, nil when missing.
func (m *Match) HomeTeam() *MatchTeam { return m.side(true) }

// AwayTeam returns the away side, nil when missing.
func (m *Match) AwayTeam() *MatchTeam { return m.side(false) }

// TeamIDs lists the teams playing the match.
func (m *Match) TeamIDs() []uint {
	ids := make([]uint, 0, len(m.MatchTeams))
	for _, mt := range m.MatchTeams {
		ids = append(ids, mt.TeamID)
	}
	return ids
}
