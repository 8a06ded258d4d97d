// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Store types
const (
	StoreCSV      = "csv"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	DataDir            string
	StoreType          string
	DatabaseURL        string
	AdminFile          string
	LogLevel           string
	RetainStaleSymbols bool
}

// ParseFlags reads flags, then a .env file, then the environment.
// Flags given on the command line win over both.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := pflag.NewFlagSet("election-desk", pflag.ContinueOnError)

	fs.StringVarP(&cfg.DataDir, "data-dir", "d", "", "Directory holding the record files")
	fs.StringVarP(&cfg.StoreType, "store", "s", "", "Record store (csv, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", "", "Database URL for the sqlite or postgres store")
	fs.StringVar(&cfg.AdminFile, "admin-file", "", "Admin credentials file (default: <data-dir>/Admin.csv)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.RetainStaleSymbols, "retain-stale-symbols", false, "Keep amended party symbols reserved")
	fs.StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading env variables")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Variables already in the environment are not overwritten
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("ELECTION_DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "."
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreCSV
		}
	}
	switch cfg.StoreType {
	case StoreCSV, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("unknown store type %q (use csv, sqlite or postgres)", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.StoreType {
		case StoreSQLite:
			cfg.DatabaseURL = filepath.Join(cfg.DataDir, "election.db")
		case StorePostgres:
			return Config{}, errors.New("database URL required for postgres (use --database-url or DATABASE_URL env)")
		}
	}

	if cfg.AdminFile == "" {
		cfg.AdminFile = os.Getenv("ADMIN_FILE")
		if cfg.AdminFile == "" {
			cfg.AdminFile = filepath.Join(cfg.DataDir, "Admin.csv")
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if !fs.Changed("retain-stale-symbols") {
		if v := os.Getenv("RETAIN_STALE_SYMBOLS"); v != "" {
			retain, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid RETAIN_STALE_SYMBOLS env variable")
			}
			cfg.RetainStaleSymbols = retain
		}
	}

	return cfg, nil
}
