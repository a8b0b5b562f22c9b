package league

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/flagstats/internal/match"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/pkg/responses"
)

// LeagueController serves the statistics read endpoints
type LeagueController struct {
	service *Service
	logger  *slog.Logger
}

func NewLeagueController(service *Service, logger *slog.Logger) *LeagueController {
	return &LeagueController{service: service, logger: logger}
}

func parseID(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID format")
		return 0, false
	}
	return uint(id), true
}

func (lc *LeagueController) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrTournamentNotFound),
		errors.Is(err, ErrTeamNotFound),
		errors.Is(err, ErrMatchNotFound),
		errors.Is(err, ErrPlayerNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, match.ErrIncompleteMatch):
		responses.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		lc.logger.Error(msg, slog.String("path", c.FullPath()), slog.Any("error", err))
		responses.ErrorResponse(c, http.StatusInternalServerError, msg)
	}
}

// @Summary Category standings
// @Description Ranks teams by wins, point differential, points for, then name. Each team counts only its own eligible finished matches.
// @Tags Statistics
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param category query string false "Category name or slug"
// @Success 200 {object} responses.Envelope{data=StandingsReport} "Standings"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament not found"
// @Router /tournaments/{tournament_id}/standings [get]
func (lc *LeagueController) GetStandings(c *gin.Context) {
	tournamentID, ok := parseID(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	report, err := lc.service.GetStandings(c.Request.Context(), tournamentID, c.Query("category"))
	if err != nil {
		lc.fail(c, err, "Failed to compute standings")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, report)
}

// @Summary Team leaders for one statistic
// @Tags Statistics
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param team_id path uint true "Team ID"
// @Param stat query string true "qb_rating, points, receptions, tackles, interceptions or sacks"
// @Param limit query int false "Entries to return, 3 to 10"
// @Success 200 {object} responses.Envelope{data=TeamLeadersReport} "Leaderboard"
// @Failure 400 {object} responses.ErrorEnvelope "Unknown stat"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament or team not found"
// @Router /tournaments/{tournament_id}/teams/{team_id}/leaders [get]
func (lc *LeagueController) GetTeamLeaders(c *gin.Context) {
	tournamentID, ok := parseID(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "team_id", "team")
	if !ok {
		return
	}
	kind, err := stats.ParseStatKind(c.Query("stat"))
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 1 {
			responses.ErrorResponse(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	report, err := lc.service.GetTeamLeaders(c.Request.Context(), tournamentID, teamID, kind, limit)
	if err != nil {
		lc.fail(c, err, "Failed to compute team leaders")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, report)
}

// @Summary Tournament leaders for every statistic
// @Tags Statistics
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param category query string false "Category name or slug"
// @Success 200 {object} responses.Envelope{data=LeadersReport} "Leaderboards"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament not found"
// @Router /tournaments/{tournament_id}/leaders [get]
func (lc *LeagueController) GetTournamentLeaders(c *gin.Context) {
	tournamentID, ok := parseID(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	report, err := lc.service.GetTournamentLeaders(c.Request.Context(), tournamentID, c.Query("category"))
	if err != nil {
		lc.fail(c, err, "Failed to compute tournament leaders")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, report)
}

// @Summary Match leaders for every statistic
// @Description Uses the match's own plays for both sides, whatever the eligibility tags.
// @Tags Statistics
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.Envelope{data=LeadersReport} "Leaderboards"
// @Failure 404 {object} responses.ErrorEnvelope "Match not found"
// @Router /matches/{match_id}/leaders [get]
func (lc *LeagueController) GetMatchLeaders(c *gin.Context) {
	matchID, ok := parseID(c, "match_id", "match")
	if !ok {
		return
	}
	report, err := lc.service.GetMatchLeaders(c.Request.Context(), matchID)
	if err != nil {
		lc.fail(c, err, "Failed to compute match leaders")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, report)
}

// @Summary Team season card
// @Tags Statistics
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.Envelope{data=stats.TeamCard} "Team card"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament or team not found"
// @Router /tournaments/{tournament_id}/teams/{team_id}/card [get]
func (lc *LeagueController) GetTeamCard(c *gin.Context) {
	tournamentID, ok := parseID(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "team_id", "team")
	if !ok {
		return
	}
	card, err := lc.service.GetTeamCardSummary(c.Request.Context(), tournamentID, teamID)
	if err != nil {
		lc.fail(c, err, "Failed to build team card")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, card)
}

// @Summary Player season attribution trace
// @Description Lists, match by match, every play the player took part in and the counters it moved.
// @Tags Statistics
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param team_id path uint true "Team ID"
// @Param jersey path int true "Jersey number"
// @Success 200 {object} responses.Envelope{data=stats.PlayerSeasonTrace} "Trace"
// @Failure 404 {object} responses.ErrorEnvelope "Tournament, team or player not found"
// @Router /tournaments/{tournament_id}/teams/{team_id}/players/{jersey}/debug [get]
func (lc *LeagueController) GetPlayerSeasonDebug(c *gin.Context) {
	tournamentID, ok := parseID(c, "tournament_id", "tournament")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "team_id", "team")
	if !ok {
		return
	}
	jersey, err := strconv.Atoi(c.Param("jersey"))
	if err != nil || jersey < 0 || jersey > 99 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid jersey number")
		return
	}
	trace, err := lc.service.GetPlayerSeasonDebug(c.Request.Context(), tournamentID, teamID, jersey)
	if err != nil {
		lc.fail(c, err, "Failed to trace player season")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, trace)
}
