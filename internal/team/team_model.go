package team

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

// Team is a flag-football club.
type Team struct {
	gorm.Model
	Name      string       `json:"name" gorm:"not null;uniqueIndex"`
	ShortName string       `json:"short_name"`
	Logo      string       `json:"logo"`
	City      string       `json:"city"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// Player is a person who can be rostered by one or more teams.
type Player struct {
	gorm.Model
	FirstName string     `json:"first_name" gorm:"not null"`
	LastName  string     `json:"last_name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// TeamMember places a player on a team's roster under a jersey number.
type TeamMember struct {
	gorm.Model
	TeamID       uint      `json:"team_id" gorm:"index"`
	PlayerID     uint      `json:"player_id" gorm:"index"`
	Player       Player    `json:"player" gorm:"foreignKey:PlayerID"`
	JerseyNumber int       `json:"jersey_number"`
	Position     string    `json:"position"`
	JoinedAt     time.Time `json:"joined_at"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsCaptain    bool      `json:"is_captain" gorm:"default:false"`
}

// ToRoster converts memberships into the engine's roster. Inactive members
// stay listed so plays from before they left are still attributed.
func ToRoster(members []TeamMember) stats.Roster {
	roster := make(stats.Roster, len(members))
	for _, m := range members {
		roster[m.PlayerID] = stats.RosterEntry{
			PlayerID:     m.PlayerID,
			Name:         m.Player.FullName(),
			JerseyNumber: m.JerseyNumber,
		}
	}
	return roster
}
