package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the engine, loaded from the
// environment and config.yaml.
type AppConfig struct {
	Port         string
	RedisAddr    string
	GeminiAPIKey string
	Engine       EngineConfig
}

// EngineConfig is the YAML-backed portion of the configuration.
type EngineConfig struct {
	Cache struct {
		Enabled    bool   `yaml:"enabled"`
		Prefix     string `yaml:"prefix"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`

	Enhancer struct {
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"enhancer"`

	SelfTestIntervalMinutes int `yaml:"self_test_interval_minutes"`
}

// CacheTTL returns the configured cache TTL as a duration.
func (e EngineConfig) CacheTTL() time.Duration {
	return time.Duration(e.Cache.TTLSeconds) * time.Second
}

// EnhancerTimeout returns the configured enhancement timeout as a duration.
func (e EngineConfig) EnhancerTimeout() time.Duration {
	return time.Duration(e.Enhancer.TimeoutSeconds) * time.Second
}

// SelfTestInterval returns how often the background self-test loop runs.
func (e EngineConfig) SelfTestInterval() time.Duration {
	return time.Duration(e.SelfTestIntervalMinutes) * time.Minute
}

// LoadConfig loads configuration from a .env file, environment variables, and
// config.yaml.
func LoadConfig() (*AppConfig, error) {
	// Only attempt to load a .env file outside release mode. In containers,
	// configuration arrives directly as environment variables.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Port:         os.Getenv("PORT"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "5003"
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable is not set")
	}

	engineConfigFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	if err := yaml.Unmarshal(engineConfigFile, &cfg.Engine); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	// Defaults for optional knobs.
	if cfg.Engine.Cache.Prefix == "" {
		cfg.Engine.Cache.Prefix = "mediacache"
	}
	if cfg.Engine.Cache.TTLSeconds == 0 {
		cfg.Engine.Cache.TTLSeconds = 3600
	}
	if cfg.Engine.Enhancer.Model == "" {
		cfg.Engine.Enhancer.Model = "gemini-1.5-flash"
	}
	if cfg.Engine.Enhancer.TimeoutSeconds == 0 {
		cfg.Engine.Enhancer.TimeoutSeconds = 10
	}
	if cfg.Engine.SelfTestIntervalMinutes == 0 {
		cfg.Engine.SelfTestIntervalMinutes = 5
	}

	return cfg, nil
}
