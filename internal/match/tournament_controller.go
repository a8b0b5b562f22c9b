package match

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/DhavalSuthar-24/flagstats/pkg/responses"
)

type CreateTournamentRequest struct {
	Name        string     `json:"name" binding:"required,min=3,max=100"`
	Season      string     `json:"season" binding:"max=20"`
	Description string     `json:"description" binding:"max=1000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type RegisterTeamRequest struct {
	TeamID   uint   `json:"team_id" binding:"required"`
	Category string `json:"category" binding:"required,min=1,max=60"`
}

// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament data"
// @Success 201 {object} responses.Envelope{data=Tournament} "Tournament created"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid input"
// @Security BearerAuth
// @Router /tournaments [post]
func (mc *MatchController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		responses.ErrorResponse(c, http.StatusBadRequest, "End date must not be before start date")
		return
	}

	tournament := Tournament{
		Name:        strings.TrimSpace(req.Name),
		Season:      req.Season,
		Description: req.Description,
		Status:      TournamentUpcoming,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := mc.repo.CreateTournament(c.Request.Context(), &tournament); err != nil {
		mc.logger.Error("create tournament", slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create tournament")
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Tournament created successfully", "tournament": tournament})
}

// @Summary Get a tournament with its registered teams
// @Tags Tournaments
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Success 200 {object} responses.Envelope{data=Tournament} "Tournament details"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament not found"
// @Router /tournaments/{tournament_id} [get]
func (mc *MatchController) GetTournamentByID(c *gin.Context) {
	tournamentID, ok := parseIDParam(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	tournament, err := mc.repo.GetTournamentByID(c.Request.Context(), tournamentID)
	if err != nil {
		mc.logger.Error("get tournament", slog.Uint64("tournament_id", uint64(tournamentID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve tournament")
		return
	}
	if tournament == nil {
		responses.ErrorResponse(c, http.StatusNotFound, ErrTournamentNotFound.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, tournament)
}

// @Summary Register a team in a tournament category
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param registration body RegisterTeamRequest true "Team and category"
// @Success 201 {object} responses.Envelope{data=TournamentTeam} "Team registered"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament or team not found"
// @Failure 409 {object} responses.ErrorEnvelope "Team already registered"
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/teams [post]
func (mc *MatchController) RegisterTeam(c *gin.Context) {
	tournamentID, ok := parseIDParam(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	var req RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	tournament, err := mc.repo.GetTournamentByID(ctx, tournamentID)
	if err == nil && tournament == nil {
		responses.ErrorResponse(c, http.StatusNotFound, ErrTournamentNotFound.Error())
		return
	}
	if err != nil {
		mc.logger.Error("get tournament", slog.Uint64("tournament_id", uint64(tournamentID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to register team")
		return
	}
	t, err := mc.teamRepo.GetTeamByID(ctx, req.TeamID)
	if err != nil {
		mc.logger.Error("get team", slog.Uint64("team_id", uint64(req.TeamID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to register team")
		return
	}
	if t == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	category := strings.TrimSpace(req.Category)
	entry := TournamentTeam{
		TournamentID: tournamentID,
		TeamID:       req.TeamID,
		Team:         *t,
		Category:     category,
		CategorySlug: slug.Make(category),
	}
	if err := mc.repo.RegisterTeam(ctx, &entry); err != nil {
		mc.writeError(c, err, "Failed to register team", slog.Uint64("tournament_id", uint64(tournamentID)))
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Team registered", "registration": entry})
}
