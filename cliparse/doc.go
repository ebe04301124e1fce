// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string or file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - PublicURL: Base URL embedded in join links and QR codes
  - AdminKeySalt: Secret for admin key HMAC (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-u            Public base URL
	-admin-salt   Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	PUBLIC_URL     → -u
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables. When PUBLIC_URL is
unset it defaults to http://localhost:<port>.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - ADMIN_KEY_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
