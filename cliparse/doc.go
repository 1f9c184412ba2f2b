// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv);
real environment variables take precedence over it, and CLI flags take
precedence over both.

# Config Fields

  - Port: Server listen port (default: 5020)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - TokenSecret: Secret for session token HMAC (required)
  - SeedFile: Optional JSON file to seed the song catalog

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type (sqlite or postgres)
	--seed        Song catalog seed file
	--token-secret Session token secret

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_FILE     → --seed
	TOKEN_SECRET  → --token-secret

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - TOKEN_SECRET must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
