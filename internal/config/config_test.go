package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
port: "3000"
mongoURI: "mongodb://localhost:27017"
mongoDatabase: "jobboard"
jwtSecret: "test-secret"
jwtExpiry: "2h"
bcryptCost: 10
uploadDir: "uploads"
`

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("bcryptCost = %d", cfg.BcryptCost)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, validConfig)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Fatalf("jwtSecret = %q, want env override", cfg.JWTSecret)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Fatalf("mongoURI = %q, want env override", cfg.MongoURI)
	}
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, `
port: "3000"
mongoURI: "mongodb://localhost:27017"
mongoDatabase: "jobboard"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected missing jwtSecret to fail validation")
	}
}

func TestLoadRejectsBadBcryptCost(t *testing.T) {
	path := writeConfig(t, `
port: "3000"
mongoURI: "mongodb://localhost:27017"
mongoDatabase: "jobboard"
jwtSecret: "test-secret"
bcryptCost: 99
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected out-of-range bcryptCost to fail validation")
	}
}

func TestParseJWTExpiry(t *testing.T) {
	if d, err := ParseJWTExpiry(""); err != nil || d != time.Hour {
		t.Fatalf("default expiry = %v err=%v, want 1h", d, err)
	}
	if d, err := ParseJWTExpiry("30m"); err != nil || d != 30*time.Minute {
		t.Fatalf("expiry = %v err=%v, want 30m", d, err)
	}
	if _, err := ParseJWTExpiry("nope"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseJWTExpiry("-5m"); err == nil {
		t.Fatal("expected negative duration to fail")
	}
}
