package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func testDBLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func sqliteConfig(t *testing.T, pool PoolConfig) *DatabaseConfig {
	t.Helper()
	return &DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{Path: filepath.Join(t.TempDir(), "hrkit.db")},
		Pool:   pool,
	}
}

func openAndPing(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestSetupDatabase_SQLite(t *testing.T) {
	cfg := sqliteConfig(t, PoolConfig{
		MaxIdleConns:    5,
		MaxOpenConns:    50,
		ConnMaxLifetime: "30m",
	})

	db, err := SetupDatabase(cfg, testDBLogger(slog.LevelDebug))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}
	openAndPing(t, db)

	sqlDB, _ := db.DB()
	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 50 {
		t.Errorf("MaxOpenConnections = %d; want 50", stats.MaxOpenConnections)
	}
}

func TestSetupDatabase_PoolDefaults(t *testing.T) {
	// All-zero pool settings fall back to the defaults.
	db, err := SetupDatabase(sqliteConfig(t, PoolConfig{}), testDBLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}
	openAndPing(t, db)

	sqlDB, _ := db.DB()
	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 100 {
		t.Errorf("MaxOpenConnections = %d; want 100 (default)", stats.MaxOpenConnections)
	}
}

func TestSetupDatabase_UnsupportedDriver(t *testing.T) {
	_, err := SetupDatabase(&DatabaseConfig{Driver: "mysql"}, testDBLogger(slog.LevelInfo))
	if err == nil {
		t.Fatal("SetupDatabase() expected error for unsupported driver, got nil")
	}

	want := `unsupported database driver: mysql`
	if err.Error() != want {
		t.Errorf("error = %q; want %q", err.Error(), want)
	}
}

func TestSetupDatabase_ConnMaxLifetimeErrors(t *testing.T) {
	tests := []struct {
		name     string
		lifetime string
	}{
		{"unparseable", "not-a-duration"},
		{"non-positive", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sqliteConfig(t, PoolConfig{
				MaxIdleConns:    5,
				MaxOpenConns:    50,
				ConnMaxLifetime: tt.lifetime,
			})

			_, err := SetupDatabase(cfg, testDBLogger(slog.LevelInfo))
			if err == nil {
				t.Fatalf("SetupDatabase() expected error for lifetime %q, got nil", tt.lifetime)
			}
			if !strings.Contains(err.Error(), "pool.conn_max_lifetime") {
				t.Fatalf("SetupDatabase() error = %v, want it to name pool.conn_max_lifetime", err)
			}
		})
	}
}

func TestSetupDatabase_DebugLogMode(t *testing.T) {
	cfg := sqliteConfig(t, PoolConfig{
		MaxIdleConns:    5,
		MaxOpenConns:    20,
		ConnMaxLifetime: "10m",
	})

	// Debug-level logger switches GORM to Info log mode (logs all SQL).
	// The mode itself cannot be introspected; verify setup still works.
	db, err := SetupDatabase(cfg, testDBLogger(slog.LevelDebug))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}
	openAndPing(t, db)
}

func TestEffectiveDefaults(t *testing.T) {
	if got := effectiveMaxIdleConns(0); got != 10 {
		t.Errorf("effectiveMaxIdleConns(0) = %d; want 10", got)
	}
	if got := effectiveMaxIdleConns(5); got != 5 {
		t.Errorf("effectiveMaxIdleConns(5) = %d; want 5", got)
	}
	if got := effectiveMaxOpenConns(0); got != 100 {
		t.Errorf("effectiveMaxOpenConns(0) = %d; want 100", got)
	}
	if got := effectiveMaxOpenConns(50); got != 50 {
		t.Errorf("effectiveMaxOpenConns(50) = %d; want 50", got)
	}
	if got := effectiveConnMaxLifetime(""); got != "1h" {
		t.Errorf("effectiveConnMaxLifetime(\"\") = %q; want \"1h\"", got)
	}
	if got := effectiveConnMaxLifetime("   "); got != "1h" {
		t.Errorf("effectiveConnMaxLifetime(\"   \") = %q; want \"1h\"", got)
	}
	if got := effectiveConnMaxLifetime("30m"); got != "30m" {
		t.Errorf("effectiveConnMaxLifetime(\"30m\") = %q; want \"30m\"", got)
	}
}
