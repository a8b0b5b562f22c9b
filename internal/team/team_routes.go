package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team-related routes. write guards the mutating ones.
func TeamRoutes(router *gin.RouterGroup, controller *TeamController, write gin.HandlerFunc) {
	router.GET("/teams/:team_id", controller.GetTeamByID)
	router.GET("/teams/:team_id/members", controller.GetTeamMembers)

	writeRoutes := router.Group("/")
	writeRoutes.Use(write)
	{
		writeRoutes.POST("/teams", controller.CreateTeam)
		writeRoutes.POST("/teams/:team_id/members", controller.AddTeamMember)
	}
}
