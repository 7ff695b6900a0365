package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "60s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"
  max_upload_bytes: 10485760

mongo:
  uri: "mongodb://localhost:27017"
  database: "storyforge_test"
  connect_timeout: "5s"
  max_pool_size: 20

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  access_token_ttl: "10m"
  refresh_token_ttl: "240h"
  bcrypt_cost: 4

graphql:
  playground_enabled: true
  introspection_enabled: true
  complexity_limit: 200

media:
  dir: "./testmedia"
  base_url: "/media/assets"

ai:
  hf_token: "hf_testtoken"
  image_model: "stabilityai/stable-diffusion-2-1"
  tts_language: "en"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxUploadBytes != 10485760 {
		t.Errorf("server.max_upload_bytes = %d, want 10485760", cfg.Server.MaxUploadBytes)
	}

	// Mongo
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("mongo.uri = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "storyforge_test" {
		t.Errorf("mongo.database = %q, want storyforge_test", cfg.Mongo.Database)
	}
	if cfg.Mongo.MaxPoolSize != 20 {
		t.Errorf("mongo.max_pool_size = %d, want 20", cfg.Mongo.MaxPoolSize)
	}

	// Auth
	if cfg.Auth.AccessTokenTTL != 10*time.Minute {
		t.Errorf("auth.access_token_ttl = %v, want 10m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Errorf("auth.bcrypt_cost = %d, want 4", cfg.Auth.BcryptCost)
	}

	// GraphQL
	if !cfg.GraphQL.PlaygroundEnabled {
		t.Error("graphql.playground_enabled should be true")
	}
	if cfg.GraphQL.ComplexityLimit != 200 {
		t.Errorf("graphql.complexity_limit = %d, want 200", cfg.GraphQL.ComplexityLimit)
	}

	// Media
	if cfg.Media.Dir != "./testmedia" {
		t.Errorf("media.dir = %q, want ./testmedia", cfg.Media.Dir)
	}

	// AI
	if cfg.AI.HFToken != "hf_testtoken" {
		t.Errorf("ai.hf_token = %q", cfg.AI.HFToken)
	}
	if cfg.AI.ImageModel != "stabilityai/stable-diffusion-2-1" {
		t.Errorf("ai.image_model = %q", cfg.AI.ImageModel)
	}
	if !cfg.AI.ImageConfigured() {
		t.Error("ai.ImageConfigured should be true with token set")
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "storyforge" {
		t.Errorf("mongo.database = %q, want storyforge (default)", cfg.Mongo.Database)
	}
	if cfg.AI.ImageConfigured() {
		t.Error("ai.ImageConfigured should be false without a token")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidate_JWTSecretEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty JWT secret")
	}
}

func TestValidate_RefreshTTLNotLonger(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.RefreshTokenTTL = cfg.Auth.AccessTokenTTL

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when refresh TTL does not exceed access TTL")
	}
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.BcryptCost = 99

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bcrypt cost out of range")
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidate_BadLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestValidate_MaxUploadBytesZero(t *testing.T) {
	cfg := validConfig()
	cfg.Server.MaxUploadBytes = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for max_upload_bytes = 0")
	}
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Server.RateLimitPerMinute = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative rate limit")
	}
}

func TestValidate_EmptyMediaDir(t *testing.T) {
	cfg := validConfig()
	cfg.Media.Dir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty media dir")
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server: ServerConfig{
			MaxUploadBytes: 52428800,
		},
		Auth: AuthConfig{
			JWTSecret:       "this-is-a-very-long-jwt-secret-for-testing-32+",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
			BcryptCost:      10,
		},
		Media: MediaConfig{
			Dir: "./media/assets",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
