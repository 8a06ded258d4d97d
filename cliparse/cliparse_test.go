// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// noEnvFile keeps a stray .env in the package directory out of the tests
func noEnvFile(t *testing.T) string {
	t.Helper()
	return "--env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != "." {
		t.Errorf("expected data dir ., got %s", cfg.DataDir)
	}
	if cfg.StoreType != StoreCSV {
		t.Errorf("expected csv store, got %s", cfg.StoreType)
	}
	if cfg.AdminFile != "Admin.csv" {
		t.Errorf("expected Admin.csv, got %s", cfg.AdminFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info, got %s", cfg.LogLevel)
	}
	if cfg.RetainStaleSymbols {
		t.Error("stale symbols should be released by default")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("ELECTION_DATA_DIR", "/srv/election")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RETAIN_STALE_SYMBOLS", "true")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_FILE", "")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != "/srv/election" {
		t.Errorf("expected /srv/election, got %s", cfg.DataDir)
	}
	if cfg.DatabaseURL != filepath.Join("/srv/election", "election.db") {
		t.Errorf("unexpected sqlite default %s", cfg.DatabaseURL)
	}
	if cfg.AdminFile != filepath.Join("/srv/election", "Admin.csv") {
		t.Errorf("unexpected admin file %s", cfg.AdminFile)
	}
	if !cfg.RetainStaleSymbols {
		t.Error("RETAIN_STALE_SYMBOLS should be honored")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("STORE_TYPE", "postgres")
	t.Setenv("RETAIN_STALE_SYMBOLS", "true")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-s", "csv", "--retain-stale-symbols=false", "-d", "data"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StoreType != StoreCSV {
		t.Errorf("CLI should override env: expected csv, got %s", cfg.StoreType)
	}
	if cfg.RetainStaleSymbols {
		t.Error("CLI should override RETAIN_STALE_SYMBOLS")
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected data, got %s", cfg.DataDir)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_FILE=/etc/election/admins.csv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable for the whole process
	t.Setenv("ADMIN_FILE", "")
	os.Unsetenv("ADMIN_FILE")

	cfg, err := ParseFlags([]string{"--env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminFile != "/etc/election/admins.csv" {
		t.Errorf("expected admin file from env file, got %s", cfg.AdminFile)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown store", []string{"-s", "mongo"}, nil},
		{"postgres without url", []string{"-s", "postgres"}, map[string]string{"DATABASE_URL": ""}},
		{"bad log level", []string{"--log-level", "loud"}, nil},
		{"bad retain env", nil, map[string]string{"RETAIN_STALE_SYMBOLS": "maybe"}},
		{"unknown flag", []string{"--port", "80"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := append([]string{noEnvFile(t)}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
