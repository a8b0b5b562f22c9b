package league

import "github.com/gin-gonic/gin"

// LeagueRoutes registers the read-only statistics endpoints.
func LeagueRoutes(router *gin.RouterGroup, controller *LeagueController) {
	tournaments := router.Group("/tournaments/:tournament_id")
	{
		tournaments.GET("/standings", controller.GetStandings)
		tournaments.GET("/leaders", controller.GetTournamentLeaders)
		tournaments.GET("/teams/:team_id/leaders", controller.GetTeamLeaders)
		tournaments.GET("/teams/:team_id/card", controller.GetTeamCard)
		tournaments.GET("/teams/:team_id/players/:jersey/debug", controller.GetPlayerSeasonDebug)
	}
	router.GET("/matches/:match_id/leaders", controller.GetMatchLeaders)
}
