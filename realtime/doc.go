// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime pushes live game state to connected clients.

A single Hub tracks websocket subscribers per game:

	hub := realtime.NewHub()
	hub.Serve(w, r, gameID)       // in the websocket handler
	hub.Broadcast(gameID, view)   // after any mutation

Broadcasts are advisory. Clients that fall behind have updates dropped
and are expected to poll GET /api/games/{gameId} to resync, so the game
works even with no websocket connection at all.
*/
package realtime
