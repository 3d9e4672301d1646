package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9000")
	t.Setenv("ACCESS_TOKEN_TTL", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("USAGE_LIMIT_SCRIPT_REFINEMENT", "")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":9000" {
		t.Fatalf("Addr: %q", cfg.Addr())
	}
	if cfg.AccessTokenTTL != time.Minute {
		t.Fatalf("AccessTokenTTL: %s", cfg.AccessTokenTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Usage.ScriptRefinementLimit != 10 {
		t.Fatalf("ScriptRefinementLimit default: %d", cfg.Usage.ScriptRefinementLimit)
	}
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
port: "7000"
db:
  driver: sqlite
  sqlite_path: /tmp/planner.db
access_token_ttl: 2h
redis:
  addr: localhost:6379
usage:
  default_limit: 3
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "7000" || cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "/tmp/planner.db" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.AccessTokenTTL != 2*time.Hour {
		t.Fatalf("AccessTokenTTL: %s", cfg.AccessTokenTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Usage.DefaultLimit != 3 {
		t.Fatalf("nested overlay: %+v", cfg)
	}
	if cfg.JWTSecretKey != "from-env" || cfg.Usage.ScriptRefinementLimit != 10 {
		t.Fatalf("absent keys should keep env values: %+v", cfg)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := LoadConfig(nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
