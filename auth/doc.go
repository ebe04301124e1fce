// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and identifier generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(gameID, salt)
	err := auth.ValidateAdminKey(gameID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same game ID and salt always produce the same key. This allows validation
without storing the key in the database.

# Game IDs

Game IDs are lowercase US state names:

	id, err := auth.GenerateGameID()

Collisions with live games are expected; callers check the store and retry.

# Secret Words

Players and admins join with themed secret words:

	word, err := auth.GenerateSecretWord(false) // e.g. "liberty-3f2a"
	word, err = auth.GenerateSecretWord(true)   // e.g. "democracy-91bc"

The word lists are disjoint, so a player word can never be mistaken for an
admin word. A 4-hex-char suffix keeps words unique within a game.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
