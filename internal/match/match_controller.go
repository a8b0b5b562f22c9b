package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/DhavalSuthar-24/flagstats/internal/middleware"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
	"github.com/DhavalSuthar-24/flagstats/pkg/responses"
)

var (
	ErrTeamNotRegistered    = errors.New("team is not registered in the tournament")
	ErrCategoryMismatch     = errors.New("teams are registered in different categories")
	ErrParticipantUnlisted  = errors.New("participant is not on either team's roster")
	ErrParticipantAmbiguous = errors.New("participant side cannot be decided")
	ErrPossessionTeam       = errors.New("possession team is not playing this match")
)

// MatchController handles tournament, match and play requests
type MatchController struct {
	repo               MatchRepository
	teamRepo           team.TeamRepository
	defaultEligibility stats.Eligibility
	logger             *slog.Logger
}

// NewMatchController creates a new MatchController. Sides created without an
// explicit eligibility are stored with defaultEligibility.
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, defaultEligibility stats.Eligibility, logger *slog.Logger) *MatchController {
	if defaultEligibility == "" {
		defaultEligibility = stats.EligibilityOfficial
	}
	return &MatchController{
		repo:               repo,
		teamRepo:           teamRepo,
		defaultEligibility: defaultEligibility,
		logger:             logger,
	}
}

func parseIDParam(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID format")
		return 0, false
	}
	return uint(id), true
}

// --- Request DTOs ---

type CreateMatchRequest struct {
	TournamentID    uint      `json:"tournament_id" binding:"required"`
	Category        string    `json:"category" binding:"max=60"`
	HomeTeamID      uint      `json:"home_team_id" binding:"required"`
	AwayTeamID      uint      `json:"away_team_id" binding:"required,nefield=HomeTeamID"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	LocationText    string    `json:"location_text" binding:"max=200"`
	HomeEligibility string    `json:"home_eligibility" binding:"eligibility"`
	AwayEligibility string    `json:"away_eligibility" binding:"eligibility"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,matchstate"`
}

type FinishMatchRequest struct {
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}

// RecordPlayRequest is a single play as entered by the scorekeeper.
type RecordPlayRequest struct {
	Sequence          int    `json:"sequence" binding:"gte=0"`
	Period            int    `json:"period" binding:"gte=0,lte=10"`
	Minute            int    `json:"minute" binding:"gte=0,lte=90"`
	Second            int    `json:"second" binding:"gte=0,lte=59"`
	PossessionTeamID  uint   `json:"possession_team_id"`
	Type              string `json:"type" binding:"required,playtype"`
	Description       string `json:"description" binding:"max=500"`
	PrimaryPlayerID   uint   `json:"primary_player_id" binding:"required"`
	SecondaryPlayerID *uint  `json:"secondary_player_id"`
	ScoringPlayerID   *uint  `json:"scoring_player_id"`
	IsTouchdown       bool   `json:"is_touchdown"`
	IsInterception    bool   `json:"is_interception"`
	IsSack            bool   `json:"is_sack"`
	Points            int    `json:"points" binding:"gte=0,lte=6"`
}

func (req RecordPlayRequest) toPlay(matchID uint) Play {
	// The validator already accepted the tag, so the parse cannot fail.
	playType, _ := stats.ParsePlayType(req.Type)
	return Play{
		MatchID:           matchID,
		Sequence:          req.Sequence,
		Period:            req.Period,
		Minute:            req.Minute,
		Second:            req.Second,
		PossessionTeamID:  req.PossessionTeamID,
		Type:              playType,
		Description:       strings.TrimSpace(req.Description),
		PrimaryPlayerID:   req.PrimaryPlayerID,
		SecondaryPlayerID: req.SecondaryPlayerID,
		ScoringPlayerID:   req.ScoringPlayerID,
		IsTouchdown:       req.IsTouchdown,
		IsInterception:    req.IsInterception,
		IsSack:            req.IsSack,
		Points:            req.Points,
	}
}

func (mc *MatchController) eligibilityOr(tag string) stats.Eligibility {
	if tag == "" {
		return mc.defaultEligibility
	}
	return stats.Eligibility(tag)
}

// @Summary Schedule a match
// @Description Creates a match between two teams registered in the tournament. Eligibility is set per side.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} responses.Envelope{data=Match} "Match created"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid input"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament not found"
// @Failure 422 {object} responses.ErrorEnvelope "Team not registered or category mismatch"
// @Security BearerAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	tournament, err := mc.repo.GetTournamentByID(ctx, req.TournamentID)
	if err != nil {
		mc.logger.Error("get tournament", slog.Uint64("tournament_id", uint64(req.TournamentID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match")
		return
	}
	if tournament == nil {
		responses.ErrorResponse(c, http.StatusNotFound, ErrTournamentNotFound.Error())
		return
	}

	var match Match
	err = mc.repo.WithTransaction(ctx, func(repo MatchRepository) error {
		category, err := matchCategory(ctx, repo, req)
		if err != nil {
			return err
		}
		match = Match{
			TournamentID: req.TournamentID,
			Category:     category,
			CategorySlug: slug.Make(category),
			LocationText: req.LocationText,
			Status:       stats.StateScheduled,
			ScheduledAt:  req.ScheduledAt,
			MatchTeams: []MatchTeam{
				{TeamID: req.HomeTeamID, IsHomeTeam: true, Eligibility: mc.eligibilityOr(req.HomeEligibility)},
				{TeamID: req.AwayTeamID, IsHomeTeam: false, Eligibility: mc.eligibilityOr(req.AwayEligibility)},
			},
		}
		return repo.CreateMatch(ctx, &match)
	})
	switch {
	case errors.Is(err, ErrTeamNotRegistered), errors.Is(err, ErrCategoryMismatch):
		responses.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		mc.logger.Error("create match", slog.Uint64("tournament_id", uint64(req.TournamentID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match")
		return
	}
	mc.logger.Info("match scheduled",
		slog.Uint64("match_id", uint64(match.ID)),
		slog.Uint64("tournament_id", uint64(match.TournamentID)),
		slog.String("category", match.CategorySlug))
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Match created successfully", "match": match})
}

// matchCategory checks both teams are registered and returns the category the
// match is played in. An explicit category must match the registrations.
func matchCategory(ctx context.Context, repo MatchRepository, req CreateMatchRequest) (string, error) {
	var regs [2]*TournamentTeam
	for i, teamID := range []uint{req.HomeTeamID, req.AwayTeamID} {
		reg, err := repo.GetTournamentTeam(ctx, req.TournamentID, teamID)
		if err != nil {
			return "", err
		}
		if reg == nil {
			return "", fmt.Errorf("%w: team %d", ErrTeamNotRegistered, teamID)
		}
		regs[i] = reg
	}
	if regs[0].CategorySlug != regs[1].CategorySlug {
		return "", ErrCategoryMismatch
	}
	if req.Category != "" && slug.Make(req.Category) != regs[0].CategorySlug {
		return "", fmt.Errorf("%w: %q", ErrCategoryMismatch, req.Category)
	}
	return regs[0].Category, nil
}

// @Summary Get a match with its sides and plays
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.Envelope{data=Match} "Match details"
// @Failure 404 {object} responses.ErrorEnvelope "Match not found"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	matchID, ok := parseIDParam(c, "match_id", "match")
	if !ok {
		return
	}
	match, err := mc.repo.GetMatchByID(c.Request.Context(), matchID)
	if err != nil {
		mc.logger.Error("get match", slog.Uint64("match_id", uint64(matchID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve match")
		return
	}
	if match == nil {
		responses.ErrorResponse(c, http.StatusNotFound, ErrMatchNotFound.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, match)
}

// @Summary Change a match's status
// @Description Starts, pauses, resumes, suspends or cancels a match. Use the finish endpoint to record a result.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} responses.Envelope{data=Match} "Status updated"
// @Failure 404 {object} responses.ErrorEnvelope "Match not found"
// @Failure 409 {object} responses.ErrorEnvelope "Transition not allowed"
// @Security BearerAuth
// @Router /matches/{match_id}/status [post]
func (mc *MatchController) UpdateMatchStatus(c *gin.Context) {
	matchID, ok := parseIDParam(c, "match_id", "match")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	match, err := mc.repo.UpdateStatus(c.Request.Context(), matchID, stats.MatchState(req.Status))
	if err != nil {
		mc.writeError(c, err, "Failed to update match status", slog.Uint64("match_id", uint64(matchID)))
		return
	}
	mc.logger.Info("match status changed", slog.Uint64("match_id", uint64(matchID)), slog.String("status", req.Status))
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match status updated", "match": match})
}

// @Summary Finish a match
// @Description Records the final score. A match can be finished once.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param score body FinishMatchRequest true "Final score"
// @Success 200 {object} responses.Envelope{data=Match} "Match finished"
// @Failure 404 {object} responses.ErrorEnvelope "Match not found"
// @Failure 409 {object} responses.ErrorEnvelope "Match already finalized"
// @Security BearerAuth
// @Router /matches/{match_id}/finish [post]
func (mc *MatchController) FinishMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "match_id", "match")
	if !ok {
		return
	}
	var req FinishMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	match, err := mc.repo.FinishMatch(c.Request.Context(), matchID, FinalScore{HomeScore: *req.HomeScore, AwayScore: *req.AwayScore})
	if err != nil {
		mc.writeError(c, err, "Failed to finish match", slog.Uint64("match_id", uint64(matchID)))
		return
	}
	mc.logger.Info("match finished",
		slog.Uint64("match_id", uint64(matchID)),
		slog.Int("home_score", *req.HomeScore),
		slog.Int("away_score", *req.AwayScore))
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match finished", "match": match})
}

// @Summary Record a play
// @Description Appends a play to a match in progress. Every participant must be rostered by one of the two teams.
// @Tags Plays
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param play body RecordPlayRequest true "Play"
// @Success 201 {object} responses.Envelope{data=Play} "Play recorded"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid play"
// @Failure 404 {object} responses.ErrorEnvelope "Match not found"
// @Failure 409 {object} responses.ErrorEnvelope "Match not in progress or sequence out of order"
// @Security BearerAuth
// @Router /matches/{match_id}/plays [post]
func (mc *MatchController) RecordPlay(c *gin.Context) {
	matchID, ok := parseIDParam(c, "match_id", "match")
	if !ok {
		return
	}
	var req RecordPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	play := req.toPlay(matchID)
	play.RecordedBy = middleware.ScorekeeperFromContext(c)
	if !mc.checkPlay(c, matchID, play) {
		return
	}

	if err := mc.repo.AppendPlay(c.Request.Context(), &play); err != nil {
		mc.writeError(c, err, "Failed to record play", slog.Uint64("match_id", uint64(matchID)))
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Play recorded", "play": play})
}

// @Summary Correct a recorded play
// @Description Replaces the details of a play. Its sequence is kept. Corrections are accepted after the match has finished.
// @Tags Plays
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param play_id path uint true "Play ID"
// @Param play body RecordPlayRequest true "Corrected play"
// @Success 200 {object} responses.Envelope{data=Play} "Play corrected"
// @Failure 400 {object} responses.ErrorEnvelope "Invalid play"
// @Failure 404 {object} responses.ErrorEnvelope "Match or play not found"
// @Security BearerAuth
// @Router /matches/{match_id}/plays/{play_id} [put]
func (mc *MatchController) CorrectPlay(c *gin.Context) {
	matchID, ok := parseIDParam(c, "match_id", "match")
	if !ok {
		return
	}
	playID, ok := parseIDParam(c, "play_id", "play")
	if !ok {
		return
	}
	var req RecordPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	update := req.toPlay(matchID)
	update.RecordedBy = middleware.ScorekeeperFromContext(c)
	if !mc.checkPlay(c, matchID, update) {
		return
	}

	play, err := mc.repo.CorrectPlay(c.Request.Context(), matchID, playID, update)
	if err != nil {
		mc.writeError(c, err, "Failed to correct play", slog.Uint64("match_id", uint64(matchID)), slog.Uint64("play_id", uint64(playID)))
		return
	}
	mc.logger.Info("play corrected", slog.Uint64("match_id", uint64(matchID)), slog.Uint64("play_id", uint64(playID)))
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Play corrected", "play": play})
}

// checkPlay validates the play's structure and that every participant belongs
// to one of the two teams. It writes the error response and returns false on
// failure.
func (mc *MatchController) checkPlay(c *gin.Context, matchID uint, play Play) bool {
	sp := play.ToStats()
	if err := sp.Validate(); err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	ctx := c.Request.Context()

	match, err := mc.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		mc.logger.Error("get match", slog.Uint64("match_id", uint64(matchID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to record play")
		return false
	}
	if match == nil {
		responses.ErrorResponse(c, http.StatusNotFound, ErrMatchNotFound.Error())
		return false
	}
	teamIDs := match.TeamIDs()
	if play.PossessionTeamID != 0 && !slices.Contains(teamIDs, play.PossessionTeamID) {
		responses.ErrorResponse(c, http.StatusBadRequest, ErrPossessionTeam.Error())
		return false
	}

	rosters, err := mc.teamRepo.GetRosters(ctx, teamIDs)
	if err != nil {
		mc.logger.Error("load rosters", slog.Uint64("match_id", uint64(matchID)), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to record play")
		return false
	}
	var home, away uint
	if mt := match.HomeTeam(); mt != nil {
		home = mt.TeamID
	}
	if mt := match.AwayTeam(); mt != nil {
		away = mt.TeamID
	}
	for _, part := range sp.Participants() {
		_, err := rosters.SideOf(sp, part, home, away)
		switch {
		case errors.Is(err, stats.ErrAmbiguousParticipant):
			responses.ErrorResponse(c, http.StatusBadRequest,
				fmt.Sprintf("%s: %s player %d is on both rosters, possession_team_id is required", ErrParticipantAmbiguous, part.Role, part.PlayerID))
			return false
		case err != nil:
			responses.ErrorResponse(c, http.StatusBadRequest,
				fmt.Sprintf("%s: %s player %d", ErrParticipantUnlisted, part.Role, part.PlayerID))
			return false
		}
	}
	return true
}

// writeError maps repository errors onto HTTP statuses.
func (mc *MatchController) writeError(c *gin.Context, err error, fallback string, attrs ...any) {
	switch {
	case errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrPlayNotFound), errors.Is(err, ErrTournamentNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMatchNotActive),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrMatchAlreadyFinalized),
		errors.Is(err, ErrSequenceOutOfOrder),
		errors.Is(err, ErrTeamAlreadyRegistered):
		responses.ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		mc.logger.Error(fallback, append(attrs, slog.Any("error", err))...)
		responses.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}
