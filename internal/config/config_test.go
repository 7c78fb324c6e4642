package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := DefaultConfig()
	if cfg.Server.Port != want.Server.Port || cfg.Database.Path != want.Database.Path {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9090

[database]
driver = "memory"

[auth]
jwt_secret = "from-file"
token_ttl = "2h"

[rate_limit]
rps = 5.5
burst = 11

[games]
idle_timeout = "5m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != "10s" {
		t.Errorf("unset keys should keep defaults, got %q", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Driver != "memory" || cfg.RateLimit.RPS != 5.5 || cfg.RateLimit.Burst != 11 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	ttl, err := cfg.GetTokenTTL()
	if err != nil || ttl != 2*time.Hour {
		t.Errorf("GetTokenTTL = %v, %v", ttl, err)
	}
	idle, err := cfg.GetGameIdleTimeout()
	if err != nil || idle != 5*time.Minute {
		t.Errorf("GetGameIdleTimeout = %v, %v", idle, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 9090\n")
	t.Setenv("PORT", "7000")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_PATH", "/tmp/x.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Auth.JWTSecret != "from-env" || cfg.Log.Level != "debug" || cfg.Database.Path != "/tmp/x.db" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Addr() != ":7000" {
		t.Errorf("Addr = %s", cfg.Addr())
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "[server\nport=")); err == nil {
			t.Error("expected parse error")
		}
	})
	t.Run("bad PORT", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		if _, err := Load(""); err == nil {
			t.Error("expected error for non-numeric PORT")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with secret", func(*Config) {}, false},
		{"memory driver without path", func(c *Config) { c.Database.Driver = "memory"; c.Database.Path = "" }, false},
		{"rate limit disabled", func(c *Config) { c.RateLimit.RPS = 0; c.RateLimit.Burst = 0 }, false},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = " " }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"bad ttl", func(c *Config) { c.Auth.TokenTTL = "forever" }, true},
		{"negative ttl", func(c *Config) { c.Auth.TokenTTL = "-1h" }, true},
		{"bad shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = "soon" }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, true},
		{"sqlite without path", func(c *Config) { c.Database.Path = "" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"warning log level", func(c *Config) { c.Log.Level = "warning" }, false},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, false},
		{"bad idle timeout", func(c *Config) { c.Games.IdleTimeout = "later" }, true},
		{"zero idle timeout", func(c *Config) { c.Games.IdleTimeout = "0s" }, true},
		{"negative rps", func(c *Config) { c.RateLimit.RPS = -1 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
