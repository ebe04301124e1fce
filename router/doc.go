// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the POTUS Party API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Game lifecycle (public):

	POST /api/games           - Create game
	GET  /api/games/{gameId}  - Game with players and current round
	POST /api/games/join      - Join by name and game ID
	POST /api/admin/login     - Recover admin key by admin secret word

Player operations (public):

	POST /api/games/{gameId}/guess      - Submit or replace a guess
	PUT  /api/players/{playerId}/photo  - Update photo URL

Host operations (require X-Admin-Key):

	POST /api/games/{gameId}/answer    - Reveal answer, judge, score
	POST /api/games/{gameId}/override  - Override a verdict
	POST /api/games/{gameId}/nextRound - Advance to the next round
	GET  /api/games/{gameId}/winners   - End game, elect POTUS

Sharing and live updates:

	GET /api/games/{gameId}/qr  - PNG QR code for the join URL
	GET /api/games/{gameId}/ws  - Websocket for state broadcasts
	GET /api/placeholder/{name} - Placeholder avatar redirect

# Handler Initialization

The router builds the engine, the websocket hub, and the handler
instances with dependency injection:

	svc := game.NewService(store)
	hub := realtime.NewHub()
	gameHandler := handlers.NewGameHandler(store, svc, hub, cfg)

All handlers receive the store and configuration they need.
*/
package router
