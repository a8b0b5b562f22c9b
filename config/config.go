package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env            string   `env:"APP_ENV" envDefault:"development"`
		Port           string   `env:"PORT"    envDefault:"8088"`
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"flagstats_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`
	}
	JWT struct {
		// ScorekeeperSecret signs the bearer tokens accepted on write routes.
		// Write routes are open when it is empty.
		ScorekeeperSecret string `env:"SCOREKEEPER_JWT_SECRET"`
		ExpiryMinutes     int    `env:"SCOREKEEPER_JWT_EXPIRY_MINUTES" envDefault:"720"`
	}
	Stats     StatsConfig
	RateLimit struct {
		Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
		RPS     float64 `env:"RATE_LIMIT_RPS"     envDefault:"10"`
		Burst   int     `env:"RATE_LIMIT_BURST"   envDefault:"20"`
	}
}

// StatsConfig holds the aggregation knobs.
type StatsConfig struct {
	DefaultEligibility      string `env:"STATS_DEFAULT_ELIGIBILITY"        envDefault:"official"`
	QBMinAttemptsTournament int    `env:"STATS_QB_MIN_ATTEMPTS_TOURNAMENT" envDefault:"5"`
	QBMinAttemptsTeam       int    `env:"STATS_QB_MIN_ATTEMPTS_TEAM"       envDefault:"1"`
	MatchLeadersLimit       int    `env:"STATS_MATCH_LEADERS_LIMIT"        envDefault:"3"`
	TeamLeadersLimit        int    `env:"STATS_TEAM_LEADERS_LIMIT"         envDefault:"5"`
	TournamentLeadersLimit  int    `env:"STATS_TOURNAMENT_LEADERS_LIMIT"   envDefault:"5"`
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// A missing .env is fine when the environment is set directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "flagstats_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", "UTC")

	// --- JWT Configuration ---
	cfg.JWT.ScorekeeperSecret = getEnv("SCOREKEEPER_JWT_SECRET", "")

	var err error
	if cfg.JWT.ExpiryMinutes, err = getEnvAsInt("SCOREKEEPER_JWT_EXPIRY_MINUTES", 720); err != nil {
		return nil, err
	}

	// --- Stats Configuration ---
	cfg.Stats.DefaultEligibility = getEnv("STATS_DEFAULT_ELIGIBILITY", "official")
	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"STATS_QB_MIN_ATTEMPTS_TOURNAMENT", 5, &cfg.Stats.QBMinAttemptsTournament},
		{"STATS_QB_MIN_ATTEMPTS_TEAM", 1, &cfg.Stats.QBMinAttemptsTeam},
		{"STATS_MATCH_LEADERS_LIMIT", 3, &cfg.Stats.MatchLeadersLimit},
		{"STATS_TEAM_LEADERS_LIMIT", 5, &cfg.Stats.TeamLeadersLimit},
		{"STATS_TOURNAMENT_LEADERS_LIMIT", 5, &cfg.Stats.TournamentLeadersLimit},
		{"RATE_LIMIT_BURST", 20, &cfg.RateLimit.Burst},
	}
	for _, v := range ints {
		if *v.dst, err = getEnvAsInt(v.key, v.fallback); err != nil {
			return nil, err
		}
	}
	switch cfg.Stats.DefaultEligibility {
	case "official", "friendly":
	default:
		return nil, fmt.Errorf("invalid STATS_DEFAULT_ELIGIBILITY %q: expected official or friendly", cfg.Stats.DefaultEligibility)
	}

	// --- Rate Limit Configuration ---
	if cfg.RateLimit.Enabled, err = getEnvAsBool("RATE_LIMIT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RPS, err = getEnvAsFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}

	if cfg.JWT.ScorekeeperSecret == "" {
		slog.Warn("SCOREKEEPER_JWT_SECRET is not set, write routes accept unauthenticated requests")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		slog.Warn("using default DB password in production, set DB_PASSWORD")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
		dbCfg.DB.TimeZone,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	slog.Info("connected to database", "host", dbCfg.DB.Host, "name", dbCfg.DB.Name)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded: call config.Initialize() first")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected number, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, valueStr)
	}
	return value, nil
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
