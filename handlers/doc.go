// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the POTUS Party API.

# Handler Types

Each handler is a struct with its store, engine, hub, and config
dependencies:

  - GameHandler: game lifecycle (create, fetch, join) and admin login
  - GuessHandler: guess submission
  - AdminHandler: host operations (answer, override, next round, winners)
  - PlayerHandler: player photo updates
  - ShareHandler: QR join codes and placeholder avatars

Handlers are created via constructor functions:

	gameHandler := handlers.NewGameHandler(store, svc, hub, cfg)

# Game Flow

	POST /api/games                    → CreateGame (returns admin_key)
	POST /api/games/join               → JoinGame (name reuse, case-insensitive)
	POST /api/games/{gameId}/guess     → SubmitGuess (open round only)
	POST /api/games/{gameId}/answer    → SubmitAnswer (judges and scores)
	POST /api/games/{gameId}/override  → OverrideGuess (complete round only)
	POST /api/games/{gameId}/nextRound → NextRound
	GET  /api/games/{gameId}/winners   → Winners (ends the game)

Admin operations require the X-Admin-Key header. The key is an HMAC of
the game ID, returned by CreateGame or recovered through AdminLogin with
the game's admin secret word.

# Error Mapping

Engine errors map to stable statuses in writeGameError: unknown
game/player/round → 404, round state violations → 409, everything else
→ 500. Validation failures are 400, bad credentials 401.

# Broadcasts

After every successful mutation the handler rebuilds the aggregate
GameWithPlayers view and broadcasts it to the game's websocket clients.
Broadcast failures are logged and ignored; clients can always poll.
*/
package handlers
