package main

import (
	"log/slog"
	"os"

	"github.com/DhavalSuthar-24/flagstats/config"
	_ "github.com/DhavalSuthar-24/flagstats/docs"
	"github.com/DhavalSuthar-24/flagstats/internal/match"
	"github.com/DhavalSuthar-24/flagstats/internal/team"
	"github.com/DhavalSuthar-24/flagstats/pkg/validator"
	"github.com/DhavalSuthar-24/flagstats/routes"
)

// @title Flag Football Stats API
// @version 1.0
// @description Records flag-football matches play by play and serves standings, leaderboards, team cards and attribution traces.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	level := slog.LevelInfo
	if os.Getenv("APP_ENV") == "" || os.Getenv("APP_ENV") == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Initialize(); err != nil {
		logger.Error("failed to initialize application", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&team.Team{}, &team.Player{}, &team.TeamMember{},
		&match.Tournament{}, &match.TournamentTeam{},
		&match.Match{}, &match.MatchTeam{}, &match.Play{},
	)
	if err != nil {
		logger.Error("automigrate failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("automigrate successful")

	if err := validator.Register(); err != nil {
		logger.Error("register validators", slog.Any("error", err))
		os.Exit(1)
	}

	r := routes.SetupRoutes(cfg, config.DB, logger)

	logger.Info("starting server", slog.String("port", cfg.App.Port), slog.String("env", cfg.App.Env))
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
