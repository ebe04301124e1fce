// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/potus-party/server/cliparse"
	"github.com/potus-party/server/game"
	"github.com/potus-party/server/handlers"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/realtime"
	"github.com/potus-party/server/storage"
)

func NewRouter(store storage.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	svc := game.NewService(store)
	hub := realtime.NewHub()

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(store, svc, hub, cfg)
	guessHandler := handlers.NewGuessHandler(store, svc, hub)
	adminHandler := handlers.NewAdminHandler(store, svc, hub, cfg)
	playerHandler := handlers.NewPlayerHandler(store, svc, hub)
	shareHandler := handlers.NewShareHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game lifecycle (public)
	mux.HandleFunc("POST /api/games", middleware.WithLogging(gameHandler.CreateGame))
	mux.HandleFunc("GET /api/games/{gameId}", middleware.WithLogging(gameHandler.GetGame))
	mux.HandleFunc("POST /api/games/join", middleware.WithLogging(gameHandler.JoinGame))
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(gameHandler.AdminLogin))

	// Player operations (public)
	mux.HandleFunc("POST /api/games/{gameId}/guess", middleware.WithLogging(guessHandler.SubmitGuess))
	mux.HandleFunc("PUT /api/players/{playerId}/photo", middleware.WithLogging(playerHandler.UpdatePhoto))

	// Host operations (X-Admin-Key required)
	mux.HandleFunc("POST /api/games/{gameId}/answer", middleware.WithLogging(adminHandler.SubmitAnswer))
	mux.HandleFunc("POST /api/games/{gameId}/override", middleware.WithLogging(adminHandler.OverrideGuess))
	mux.HandleFunc("POST /api/games/{gameId}/nextRound", middleware.WithLogging(adminHandler.NextRound))
	mux.HandleFunc("GET /api/games/{gameId}/winners", middleware.WithLogging(adminHandler.Winners))

	// Sharing
	mux.HandleFunc("GET /api/games/{gameId}/qr", middleware.WithLogging(shareHandler.QRCode))
	mux.HandleFunc("GET /api/placeholder/{name}", middleware.WithLogging(shareHandler.Placeholder))

	// Live updates (logging middleware would hold the connection open in
	// its duration log, so the websocket route is registered bare)
	mux.HandleFunc("GET /api/games/{gameId}/ws", func(w http.ResponseWriter, r *http.Request) {
		gameID := r.PathValue("gameId")
		if gameID == "" {
			http.Error(w, "game_id is required", http.StatusBadRequest)
			return
		}
		hub.Serve(w, r, gameID)
	})

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("potus-party API v1"))
	})

	return mux
}
