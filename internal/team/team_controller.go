package team

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/flagstats/pkg/responses"
)

var (
	ErrJerseyTaken    = errors.New("jersey number already taken on this team")
	ErrPlayerNotFound = errors.New("player not found")
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo   TeamRepository
	logger *slog.Logger
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, logger *slog.Logger) *TeamController {
	return &TeamController{repo: repo, logger: logger}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	ShortName string `json:"short_name" binding:"max=10"`
	Logo      string `json:"logo" binding:"omitempty,url"`
	City      string `json:"city" binding:"max=100"`
}

// AddMemberRequest rosters an existing player, or creates one from the name
// fields when player_id is omitted.
type AddMemberRequest struct {
	PlayerID     uint   `json:"player_id"`
	FirstName    string `json:"first_name" binding:"required_without=PlayerID,max=60"`
	LastName     string `json:"last_name" binding:"max=60"`
	JerseyNumber *int   `json:"jersey_number" binding:"required,gte=0,lte=99"`
	Position     string `json:"position" binding:"max=30"`
	IsCaptain    bool   `json:"is_captain"`
}

func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 64)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID format")
		return 0, false
	}
	return uint(id), true
}

// @Summary Create a new team
// @Description Registers a flag-football team.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.Envelope{data=Team} "Team created successfully"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid input"
// @Failure 409 {object} responses.ErrorEnvelope "Team name already exists"
// @Security BearerAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	existing, err := tc.repo.GetTeamByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		tc.logger.Error("lookup team by name", slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team")
		return
	}
	if existing != nil {
		responses.ErrorResponse(c, http.StatusConflict, "Team name already exists")
		return
	}

	team := Team{
		Name:      strings.TrimSpace(req.Name),
		ShortName: req.ShortName,
		Logo:      req.Logo,
		City:      req.City,
	}
	if err := tc.repo.CreateTeam(ctx, &team); err != nil {
		tc.logger.Error("create team", slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team")
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Team created successfully", "team": team})
}

// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.Envelope{data=Team} "Team details"
// @Failure 404 {object} responses.ErrorEnvelope "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		tc.logger.Error("get team", slog.Uint64("team_id", uint64(teamID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, team)
}

// @Summary Add a player to a team's roster
// @Description Rosters an existing player or creates a new one, under a jersey number unique within the team.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param member body AddMemberRequest true "Roster entry"
// @Success 201 {object} responses.Envelope{data=TeamMember} "Player rostered"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid input"
// @Failure 404 {object} responses.ErrorEnvelope "Team or player not found"
// @Failure 409 {object} responses.ErrorEnvelope "Jersey number taken"
// @Security BearerAuth
// @Router /teams/{team_id}/members [post]
func (tc *TeamController) AddTeamMember(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	team, err := tc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		tc.logger.Error("get team", slog.Uint64("team_id", uint64(teamID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to add member")
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	member := TeamMember{
		TeamID:       teamID,
		JerseyNumber: *req.JerseyNumber,
		Position:     req.Position,
		IsCaptain:    req.IsCaptain,
		IsActive:     true,
		JoinedAt:     time.Now(),
	}
	err = tc.repo.WithTransaction(ctx, func(repo TeamRepository) error {
		taken, err := repo.GetMemberByJersey(ctx, teamID, member.JerseyNumber)
		if err != nil {
			return err
		}
		if taken != nil && taken.IsActive {
			return ErrJerseyTaken
		}

		if req.PlayerID != 0 {
			player, err := repo.GetPlayerByID(ctx, req.PlayerID)
			if err != nil {
				return err
			}
			if player == nil {
				return ErrPlayerNotFound
			}
			member.PlayerID = player.ID
			member.Player = *player
		} else {
			player := Player{FirstName: strings.TrimSpace(req.FirstName), LastName: strings.TrimSpace(req.LastName)}
			if err := repo.CreatePlayer(ctx, &player); err != nil {
				return err
			}
			member.PlayerID = player.ID
			member.Player = player
		}
		return repo.AddTeamMember(ctx, &member)
	})

	switch {
	case errors.Is(err, ErrJerseyTaken):
		responses.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPlayerNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, err.Error())
	case err != nil:
		tc.logger.Error("add team member", slog.Uint64("team_id", uint64(teamID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to add member")
	default:
		responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Player added to roster", "member": member})
	}
}

// @Summary List a team's roster
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.Envelope{data=[]TeamMember} "Roster"
// @Failure 404 {object} responses.ErrorEnvelope "Team not found"
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	team, err := tc.repo.GetTeamByID(ctx, teamID)
	if err == nil && team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}
	var members []TeamMember
	if err == nil {
		members, err = tc.repo.GetTeamMembers(ctx, teamID)
	}
	if err != nil {
		tc.logger.Error("list team members", slog.Uint64("team_id", uint64(teamID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve roster")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, members)
}
