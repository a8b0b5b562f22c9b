package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/flagstats/config"
	"github.com/DhavalSuthar-24/flagstats/internal/league"
	"github.com/DhavalSuthar-24/flagstats/internal/match"
	"github.com/DhavalSuthar-24/flagstats/internal/middleware"
	"github.com/DhavalSuthar-24/flagstats/internal/stats"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Run(context.Background(), middleware.SweepInterval)
		r.Use(limiter.Middleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	teamRepo := team.NewTeamRepository(db)
	matchRepo := match.NewGormMatchRepository(db)
	write := middleware.ScorekeeperAuth(cfg.JWT.ScorekeeperSecret)

	// API routes
	api := r.Group("/api")
	team.TeamRoutes(api, team.NewTeamController(teamRepo, logger), write)
	match.MatchRoutes(api, match.NewMatchController(matchRepo, teamRepo, stats.Eligibility(cfg.Stats.DefaultEligibility), logger), write)

	leagueService := league.NewService(matchRepo, teamRepo, cfg.Stats, logger)
	league.LeagueRoutes(api, league.NewLeagueController(leagueService, logger))

	return r
}
