// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to types and syntax shared by SQLite and PostgreSQL so
// the same schema runs against either driver.
const schema = `
-- Games
CREATE TABLE IF NOT EXISTS game (
    id TEXT PRIMARY KEY,
    secret_word TEXT NOT NULL,
    admin_secret_word TEXT NOT NULL,
    current_round INTEGER NOT NULL DEFAULT 1,
    is_complete BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_game_admin_secret ON game(admin_secret_word);

-- Players
CREATE TABLE IF NOT EXISTS player (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    photo_url TEXT NOT NULL,
    score INTEGER NOT NULL DEFAULT 0,
    secret_word TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_player_game_id ON player(game_id);

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    round_number INTEGER NOT NULL,
    correct_answer TEXT,
    complete BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (game_id, round_number)
);

CREATE INDEX IF NOT EXISTS idx_round_game_id ON round(game_id);

-- Guesses: at most one per (player, game, round)
CREATE TABLE IF NOT EXISTS guess (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL REFERENCES player(id) ON DELETE CASCADE,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    round_number INTEGER NOT NULL,
    guess TEXT NOT NULL,
    is_correct BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (player_id, game_id, round_number)
);

CREATE INDEX IF NOT EXISTS idx_guess_game_round ON guess(game_id, round_number);
`
