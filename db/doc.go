// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - game: Game identity, secrets, current round pointer, completion flag
  - player: Players of a game with running scores
  - round: One question/answer cycle per game
  - guess: One guess per player per round, with its verdict

# Relationships

	game 1──* player
	game 1──* round
	player 1──* guess (one per round, enforced by UNIQUE)

All foreign keys use ON DELETE CASCADE.

The DDL is restricted to the dialect shared by SQLite and PostgreSQL,
so both supported drivers run the same statements.
*/
package db
