package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	BSERAPIKey     string
	BSERBaseURL    string
	NewsBaseURL    string
	ServerPort     string
	LogLevel       string
	ImageDir       string
	AllowedOrigins []string

	EternityRankCutoff int
	DemigodRankCutoff  int

	EnrichConcurrency        int
	CharacterRefreshInterval time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		BSERAPIKey:     getEnv("BSER_API_KEY", ""),
		BSERBaseURL:    getEnv("BSER_API_BASE_URL", "https://open-api.bser.io"),
		NewsBaseURL:    getEnv("NEWS_API_BASE_URL", "https://playeternalreturn.com/api/v1/posts"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ImageDir:       getEnv("IMAGE_DIR", "./images"),
		AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},

		EternityRankCutoff: getEnvAsInt("ETERNITY_RANK_CUTOFF", 30),
		DemigodRankCutoff:  getEnvAsInt("DEMIGOD_RANK_CUTOFF", 1000),

		EnrichConcurrency:        getEnvAsInt("ENRICH_CONCURRENCY", 8),
		CharacterRefreshInterval: getEnvAsDuration("CHARACTER_REFRESH_INTERVAL", 0),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("bser_base_url", cfg.BSERBaseURL).
		Str("news_base_url", cfg.NewsBaseURL).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("image_dir", cfg.ImageDir).
		Int("eternity_rank_cutoff", cfg.EternityRankCutoff).
		Int("demigod_rank_cutoff", cfg.DemigodRankCutoff).
		Int("enrich_concurrency", cfg.EnrichConcurrency).
		Dur("character_refresh_interval", cfg.CharacterRefreshInterval).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BSERAPIKey == "" {
		return fmt.Errorf("BSER_API_KEY is required")
	}
	if c.EternityRankCutoff < 1 {
		return fmt.Errorf("ETERNITY_RANK_CUTOFF must be at least 1, got %d", c.EternityRankCutoff)
	}
	if c.DemigodRankCutoff <= c.EternityRankCutoff {
		return fmt.Errorf("DEMIGOD_RANK_CUTOFF (%d) must be greater than ETERNITY_RANK_CUTOFF (%d)", c.DemigodRankCutoff, c.EternityRankCutoff)
	}
	if c.EnrichConcurrency < 1 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be at least 1, got %d", c.EnrichConcurrency)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
