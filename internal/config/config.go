package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mmynk/fivehundred/pkg/logging"
)

// Config represents the server configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Auth      AuthConfig      `toml:"auth"`
	Log       LogConfig       `toml:"log"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Games     GamesConfig     `toml:"games"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Port            int    `toml:"port"`
	ShutdownTimeout string `toml:"shutdown_timeout"` // e.g. "10s"
	MetricsPath     string `toml:"metrics_path"`     // empty disables /metrics
}

// DatabaseConfig selects the game store.
type DatabaseConfig struct {
	Driver string `toml:"driver"` // "sqlite" or "memory"
	Path   string `toml:"path"`   // SQLite file
}

// AuthConfig contains token settings.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"` // e.g. "24h"
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// RateLimitConfig bounds RPCs per client address. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

// GamesConfig controls how long a game stays in memory after its last
// request. Evicted games are reloaded from the store on demand.
type GamesConfig struct {
	IdleTimeout string `toml:"idle_timeout"` // e.g. "30m"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: "10s",
			MetricsPath:     "/metrics",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "./data/fivehundred.db",
		},
		Auth: AuthConfig{
			JWTSecret: "",
			TokenTTL:  "24h",
		},
		Log: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
		Games: GamesConfig{
			IdleTimeout: "30m",
		},
	}
}

// Load reads the TOML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimit.RPS = rps
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimit.Burst = burst
	}

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Path = getEnv("DB_PATH", c.Database.Path)
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenTTL = getEnv("TOKEN_TTL", c.Auth.TokenTTL)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Games.IdleTimeout = getEnv("GAME_IDLE_TIMEOUT", c.Games.IdleTimeout)
	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown timeout %q: %w", c.Server.ShutdownTimeout, err)
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("database path is required for the sqlite driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("jwt secret is required (set JWT_SECRET)")
	}
	if ttl, err := time.ParseDuration(c.Auth.TokenTTL); err != nil {
		return fmt.Errorf("invalid token TTL %q: %w", c.Auth.TokenTTL, err)
	} else if ttl <= 0 {
		return fmt.Errorf("token TTL must be positive: %s", c.Auth.TokenTTL)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate limit cannot be negative: %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive: %d", c.RateLimit.Burst)
	}

	if idle, err := time.ParseDuration(c.Games.IdleTimeout); err != nil {
		return fmt.Errorf("invalid game idle timeout %q: %w", c.Games.IdleTimeout, err)
	} else if idle <= 0 {
		return fmt.Errorf("game idle timeout must be positive: %s", c.Games.IdleTimeout)
	}
	return nil
}

// GetTokenTTL returns the token lifetime as a duration.
func (c *Config) GetTokenTTL() (time.Duration, error) {
	return time.ParseDuration(c.Auth.TokenTTL)
}

// GetShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.ShutdownTimeout)
}

// GetGameIdleTimeout returns how long an unused game stays in memory.
func (c *Config) GetGameIdleTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Games.IdleTimeout)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
