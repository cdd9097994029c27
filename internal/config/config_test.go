package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfigYAML = `
server:
  host: 127.0.0.1
  port: 8080
  mode: debug

database:
  driver: sqlite
  sqlite:
    path: data/test.db

log:
  level: info
  format: text

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
  token_expiry: 24h
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeTestConfig(t, validConfigYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}
	if cfg.SMTP.Enabled {
		t.Error("SMTP.Enabled = true, want false by default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, validConfigYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__LOG__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 from env override", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q from env override", cfg.Log.Level, "debug")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantContain string
	}{
		{
			name:        "invalid mode",
			mutate:      func(c *Config) { c.Server.Mode = "production" },
			wantContain: "server.mode",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			wantContain: "server.port",
		},
		{
			name:        "empty host",
			mutate:      func(c *Config) { c.Server.Host = "  " },
			wantContain: "server.host",
		},
		{
			name:        "unknown driver",
			mutate:      func(c *Config) { c.Database.Driver = "mysql" },
			wantContain: "database.driver",
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.Database.Driver = "sqlite"
				c.Database.SQLite.Path = ""
			},
			wantContain: "database.sqlite.path",
		},
		{
			name: "postgres without host",
			mutate: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.Postgres.Port = 5432
				c.Database.Postgres.User = "app"
				c.Database.Postgres.DBName = "app"
				c.Database.Postgres.SSLMode = "disable"
			},
			wantContain: "database.postgres.host",
		},
		{
			name: "postgres weak sslmode in release",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.Auth.JWTSecret = "Abcdef0123456789!bcdef0123456789"
				c.Database.Driver = "postgres"
				c.Database.Postgres.Host = "db"
				c.Database.Postgres.Port = 5432
				c.Database.Postgres.User = "app"
				c.Database.Postgres.DBName = "app"
				c.Database.Postgres.SSLMode = "disable"
			},
			wantContain: "sslmode",
		},
		{
			name:        "missing jwt secret",
			mutate:      func(c *Config) { c.Auth.JWTSecret = "" },
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "short jwt secret",
			mutate:      func(c *Config) { c.Auth.JWTSecret = "too-short" },
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "missing token expiry",
			mutate:      func(c *Config) { c.Auth.TokenExpiry = "" },
			wantContain: "auth.token_expiry",
		},
		{
			name:        "negative token expiry",
			mutate:      func(c *Config) { c.Auth.TokenExpiry = "-1h" },
			wantContain: "auth.token_expiry",
		},
		{
			name: "weak jwt secret in release mode",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.Auth.JWTSecret = strings.Repeat("a", 32)
			},
			wantContain: "character classes",
		},
		{
			name: "smtp enabled without host",
			mutate: func(c *Config) {
				c.SMTP.Enabled = true
				c.SMTP.Port = 587
				c.SMTP.From = "hr@example.com"
			},
			wantContain: "smtp.host",
		},
		{
			name: "smtp enabled without from",
			mutate: func(c *Config) {
				c.SMTP.Enabled = true
				c.SMTP.Host = "mail.example.com"
				c.SMTP.Port = 587
			},
			wantContain: "smtp.from",
		},
		{
			name: "smtp invalid port",
			mutate: func(c *Config) {
				c.SMTP.Enabled = true
				c.SMTP.Host = "mail.example.com"
				c.SMTP.Port = 0
				c.SMTP.From = "hr@example.com"
			},
			wantContain: "smtp.port",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.Log.Level = "verbose" },
			wantContain: "log.level",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			wantContain: "log.format",
		},
		{
			name:        "invalid server timeout",
			mutate:      func(c *Config) { c.Server.Timeout = "soon" },
			wantContain: "server.timeout",
		},
		{
			name:        "invalid cors max_age",
			mutate:      func(c *Config) { c.Server.CORS.MaxAge = "-5m" },
			wantContain: "server.cors.max_age",
		},
		{
			name:        "invalid pool lifetime",
			mutate:      func(c *Config) { c.Database.Pool.ConnMaxLifetime = "0s" },
			wantContain: "conn_max_lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantContain)
			}
		})
	}
}

func TestValidate_NormalizesFields(t *testing.T) {
	cfg := baseValidConfig()
	cfg.Server.Mode = " debug "
	cfg.Server.Host = " localhost "
	cfg.Log.Level = " INFO "
	cfg.Log.Format = " JSON "
	cfg.Auth.JWTSecret = "  0123456789abcdef0123456789abcdef  "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Mode != "debug" {
		t.Errorf("Server.Mode = %q, want trimmed %q", cfg.Server.Mode, "debug")
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want trimmed %q", cfg.Server.Host, "localhost")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want normalized %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want normalized %q", cfg.Log.Format, "json")
	}
	if cfg.Auth.JWTSecret != "0123456789abcdef0123456789abcdef" {
		t.Errorf("Auth.JWTSecret = %q, want trimmed", cfg.Auth.JWTSecret)
	}
}

func TestCountSecretClasses(t *testing.T) {
	tests := []struct {
		secret string
		want   int
	}{
		{"", 0},
		{"abc", 1},
		{"abcABC", 2},
		{"abcABC123", 3},
		{"abcABC123!@#", 4},
		{"12345", 1},
	}

	for _, tt := range tests {
		if got := CountSecretClasses(tt.secret); got != tt.want {
			t.Errorf("CountSecretClasses(%q) = %d, want %d", tt.secret, got, tt.want)
		}
	}
}

func baseValidConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "data/test.db"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Auth: AuthConfig{
			JWTSecret:   "0123456789abcdef0123456789abcdef",
			TokenExpiry: "24h",
		},
	}
}
