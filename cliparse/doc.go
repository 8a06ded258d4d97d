// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DataDir: Directory holding Candidate.csv, Voter.csv and result.csv (default: .)
  - StoreType: csv, sqlite or postgres (default: csv)
  - DatabaseURL: Connection string; defaults to <data-dir>/election.db for sqlite, required for postgres
  - AdminFile: Admin credentials file (default: <data-dir>/Admin.csv)
  - LogLevel: debug, info, warn or error (default: info)
  - RetainStaleSymbols: Keep a party symbol reserved after it is amended away

# CLI Flags

	-d, --data-dir              Data directory
	-s, --store                 Record store
	--database-url              Database URL
	--admin-file                Admin credentials file
	--log-level                 Log level
	--retain-stale-symbols      Keep amended symbols reserved
	--env-file                  Environment file (default: .env)

# Environment Variables

The env file is loaded first; it never overrides variables that are
already set. Flags then fall back to:

	ELECTION_DATA_DIR     → --data-dir
	STORE_TYPE            → --store
	DATABASE_URL          → --database-url
	ADMIN_FILE            → --admin-file
	LOG_LEVEL             → --log-level
	RETAIN_STALE_SYMBOLS  → --retain-stale-symbols

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for an unknown store type or log level, an
unparseable RETAIN_STALE_SYMBOLS, or a postgres store without a URL.
*/
package cliparse
