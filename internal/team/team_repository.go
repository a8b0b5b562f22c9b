package team

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	// Team operations
	CreateTeam(ctx context.Context, team *Team) error
	GetTeamByID(ctx context.Context, id uint) (*Team, error)
	GetTeamByName(ctx context.Context, name string) (*Team, error)
	GetTeamsByIDs(ctx context.Context, ids []uint) ([]Team, error)

	// Player and roster operations
	CreatePlayer(ctx context.Context, player *Player) error
	GetPlayerByID(ctx context.Context, id uint) (*Player, error)
	AddTeamMember(ctx context.Context, member *TeamMember) error
	GetTeamMembers(ctx context.Context, teamID uint) ([]TeamMember, error)
	GetMemberByJersey(ctx context.Context, teamID uint, jersey int) (*TeamMember, error)
	GetRosters(ctx context.Context, teamIDs []uint) (stats.Rosters, error)

	WithTransaction(ctx context.Context, txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) WithTransaction(ctx context.Context, txFunc func(TeamRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&teamRepository{db: tx})
	})
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id uint) (*Team, error) {
	var team Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(ctx context.Context, name string) (*Team, error) {
	var team Team
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByIDs(ctx context.Context, ids []uint) ([]Team, error) {
	var teams []Team
	if len(ids) == 0 {
		return teams, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// --- Player and Roster Operations ---

func (r *teamRepository) CreatePlayer(ctx context.Context, player *Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *teamRepository) GetPlayerByID(ctx context.Context, id uint) (*Player, error) {
	var player Player
	if err := r.db.WithContext(ctx).First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *teamRepository) AddTeamMember(ctx context.Context, member *TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) GetTeamMembers(ctx context.Context, teamID uint) ([]TeamMember, error) {
	var members []TeamMember
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("team_id = ?", teamID).
		Order("jersey_number asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) GetMemberByJersey(ctx context.Context, teamID uint, jersey int) (*TeamMember, error) {
	var member TeamMember
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("team_id = ? AND jersey_number = ?", teamID, jersey).
		Order("is_active desc").
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// GetRosters loads the memberships of every team in teamIDs in one query.
// Teams without members map to an empty roster.
func (r *teamRepository) GetRosters(ctx context.Context, teamIDs []uint) (stats.Rosters, error) {
	rosters := make(stats.Rosters, len(teamIDs))
	for _, id := range teamIDs {
		rosters[id] = stats.Roster{}
	}
	if len(teamIDs) == 0 {
		return rosters, nil
	}

	var members []TeamMember
	if err := r.db.WithContext(ctx).Preload("Player").Where("team_id IN ?", teamIDs).Find(&members).Error; err != nil {
		return nil, err
	}
	byTeam := make(map[uint][]TeamMember, len(teamIDs))
	for _, m := range members {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], m)
	}
	for teamID, ms := range byTeam {
		rosters[teamID] = ToRoster(ms)
	}
	return rosters, nil
}
