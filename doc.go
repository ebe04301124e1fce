// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the POTUS Party API server.

POTUS Party is a live, host-moderated photo guessing game: the host shows
a photo over a video call, every player submits a free-text guess, the
host reveals the answer, and the engine fuzzy-matches guesses, keeps
score, and at game end elects a POTUS and Vice-POTUS runners-up.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=party.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3318 -d party.db -admin-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PUBLIC_URL (-u): Base URL for join links and QR codes

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (games, guesses, admin, sharing)
  - game: the engine (round gating, judging, scores, winner election)
  - match: fuzzy answer matching
  - storage: Store interface with SQL and in-memory implementations
  - realtime: websocket hub broadcasting game state
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: IDs, secret words, admin key HMAC
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
