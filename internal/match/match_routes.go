package match

import (
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up tournament, match and play routes. write guards the
// mutating ones.
func MatchRoutes(router *gin.RouterGroup, controller *MatchController, write gin.HandlerFunc) {
	router.GET("/tournaments/:tournament_id", controller.GetTournamentByID)
	router.GET("/matches/:match_id", controller.GetMatchByID)

	writeRoutes := router.Group("/")
	writeRoutes.Use(write)
	{
		writeRoutes.POST("/tournaments", controller.CreateTournament)
		writeRoutes.POST("/tournaments/:tournament_id/teams", controller.RegisterTeam)

		writeRoutes.POST("/matches", controller.CreateMatch)
		writeRoutes.POST("/matches/:match_id/status", controller.UpdateMatchStatus)
		writeRoutes.POST("/matches/:match_id/finish", controller.FinishMatch)
		writeRoutes.POST("/matches/:match_id/plays", controller.RecordPlay)
		writeRoutes.PUT("/matches/:match_id/plays/:play_id", controller.CorrectPlay)
	}
}
