// Package config reads the process settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	TeamConfigPath string
	RegistryPath   string
	// DatabaseURL switches the member registry and team config to Postgres.
	DatabaseURL string
	SlackToken  string
	LogLevel    slog.Level
	// RandomSeed makes reviewer draws reproducible when set.
	RandomSeed *uint64
}

// Load reads a .env file when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		TeamConfigPath: getEnv("TEAM_CONFIG_PATH", "team_config.json"),
		RegistryPath:   getEnv("REGISTRY_PATH", "members.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SlackToken:     os.Getenv("SLACK_TOKEN"),
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if raw := os.Getenv("RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RANDOM_SEED %q: %w", raw, err)
		}
		cfg.RandomSeed = &seed
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
