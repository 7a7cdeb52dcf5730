package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/placarlive/scoreboard/internal/models"
)

// Config is the yaml-file shape. Env vars override the file; the file is
// optional.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		Backend string `yaml:"backend"` // "postgres" or "memory"
		Slot    string `yaml:"slot"`
	} `yaml:"storage"`
	NATS struct {
		URL           string `yaml:"url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`
	Match struct {
		DurationSec int `yaml:"duration_sec"`
	} `yaml:"match"`
}

func defaultConfig() *Config {
	var cfg Config
	cfg.Server.Port = "8080"
	cfg.Storage.Backend = "postgres"
	cfg.Match.DurationSec = models.DefaultDurationSec
	return &cfg
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Env overrides.
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Storage.Backend = getEnv("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.Slot = getEnv("SNAPSHOT_SLOT", cfg.Storage.Slot)
	cfg.NATS.URL = getEnv("NATS_URL", cfg.NATS.URL)
	cfg.Match.DurationSec = getEnvAsInt("MATCH_DURATION_SEC", cfg.Match.DurationSec)

	if cfg.Match.DurationSec <= 0 {
		cfg.Match.DurationSec = models.DefaultDurationSec
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
