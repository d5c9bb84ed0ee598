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
	t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/novels?parseTime=true")
}

// chdirTemp moves the test into an empty directory so no stray .env or
// config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 3001},
		Database: DatabaseConfig{
			Driver:       DriverMySQL,
			DSN:          "user:pass@tcp(localhost:3306)/novels",
			MaxOpenConns: 10,
		},
		Search: SearchConfig{
			MaxQueryLength:    100,
			DefaultLimit:      20,
			MaxLimit:          100,
			DescriptionLength: 200,
			SuggestionLimit:   10,
		},
		Log:       LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 10, Burst: 20},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  driver: "postgres"
  dsn: "postgres://u:p@localhost:5432/novels"
  max_open_conns: 20
  max_idle_conns: 4
  auto_migrate: true

search:
  max_query_length: 80
  default_limit: 10
  max_limit: 50
  description_length: 150
  suggestion_limit: 5

log:
  level: "debug"
  format: "text"

rate_limit:
  enabled: true
  requests_per_second: 2.5
  burst: 5
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := chdirTemp(t)
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

	// Database
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("database.driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Database.MaxOpenConns != 20 {
		t.Errorf("database.max_open_conns = %d, want 20", cfg.Database.MaxOpenConns)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be true")
	}

	// Search
	if cfg.Search.MaxQueryLength != 80 {
		t.Errorf("search.max_query_length = %d, want 80", cfg.Search.MaxQueryLength)
	}
	if cfg.Search.DefaultLimit != 10 {
		t.Errorf("search.default_limit = %d, want 10", cfg.Search.DefaultLimit)
	}
	if cfg.Search.SuggestionLimit != 5 {
		t.Errorf("search.suggestion_limit = %d, want 5", cfg.Search.SuggestionLimit)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerSecond != 2.5 {
		t.Errorf("rate_limit.requests_per_second = %v, want 2.5", cfg.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := chdirTemp(t)
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
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("server.port = %d, want 3001 (default)", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("database.driver = %q, want mysql (default)", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("database.max_open_conns = %d, want 10 (default)", cfg.Database.MaxOpenConns)
	}
	if cfg.Search.MaxQueryLength != 100 {
		t.Errorf("search.max_query_length = %d, want 100 (default)", cfg.Search.MaxQueryLength)
	}
	if cfg.Search.DescriptionLength != 200 {
		t.Errorf("search.description_length = %d, want 200 (default)", cfg.Search.DescriptionLength)
	}
	if cfg.CORS.AllowedOrigins != "http://localhost:3000" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	os.Unsetenv("DATABASE_DSN")
	t.Setenv("SEARCH_SUGGESTION_LIMIT", "")
	os.Unsetenv("SEARCH_SUGGESTION_LIMIT")

	env := "DATABASE_DSN=user:pass@tcp(db:3306)/novels\nSEARCH_SUGGESTION_LIMIT=7\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DSN")
		os.Unsetenv("SEARCH_SUGGESTION_LIMIT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "user:pass@tcp(db:3306)/novels" {
		t.Errorf("database.dsn = %q, want value from .env", cfg.Database.DSN)
	}
	if cfg.Search.SuggestionLimit != 7 {
		t.Errorf("search.suggestion_limit = %d, want 7 from .env", cfg.Search.SuggestionLimit)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_DefaultPathInWorkingDir(t *testing.T) {
	dir := chdirTemp(t)
	writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090 from %s", cfg.Server.Port, DefaultPath)
	}
}

func TestLoadFile_EmptyPathUsesENV(t *testing.T) {
	validEnv(t)
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "4000")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("server.port = %d, want 4000", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DriverNormalized(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "  PostgreS "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "sqlite"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestValidate_MaxOpenConnsZero(t *testing.T) {
	cfg := validConfig()
	cfg.Database.MaxOpenConns = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxOpenConns = 0")
	}
}

func TestValidate_Search(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchConfig)
	}{
		{"max query length zero", func(s *SearchConfig) { s.MaxQueryLength = 0 }},
		{"default limit zero", func(s *SearchConfig) { s.DefaultLimit = 0 }},
		{"max limit below default", func(s *SearchConfig) { s.MaxLimit = 5 }},
		{"description length zero", func(s *SearchConfig) { s.DescriptionLength = 0 }},
		{"description length above wire bound", func(s *SearchConfig) { s.DescriptionLength = 201 }},
		{"suggestion limit negative", func(s *SearchConfig) { s.SuggestionLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Search)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.RequestsPerSecond = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero requests_per_second")
	}

	cfg = validConfig()
	cfg.RateLimit.Burst = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero burst")
	}

	cfg = validConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.Burst = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled rate limit should skip checks: %v", err)
	}
}

func TestIsSupportedDriver(t *testing.T) {
	for _, d := range []string{"mysql", "postgres"} {
		if !IsSupportedDriver(d) {
			t.Errorf("%q should be supported", d)
		}
	}
	if IsSupportedDriver("oracle") {
		t.Error("oracle should not be supported")
	}
}
