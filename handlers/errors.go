// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/potus-party/server/game"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/realtime"
)

// writeGameError maps engine errors to stable HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Game, player, or round not found")
	case errors.Is(err, game.ErrRoundClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Round is already complete")
	case errors.Is(err, game.ErrRoundAlreadyComplete):
		middleware.ErrorResponse(w, http.StatusConflict, "Round already has an answer")
	case errors.Is(err, game.ErrRoundNotComplete):
		middleware.ErrorResponse(w, http.StatusConflict, "Round is not complete yet")
	default:
		slog.Error("engine operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// broadcastGame pushes the fresh aggregate view to websocket clients.
// Failures are logged, never surfaced: broadcasts are advisory and
// clients can always poll.
func broadcastGame(ctx context.Context, svc *game.Service, hub *realtime.Hub, gameID string) {
	view, err := svc.GameWithPlayers(ctx, gameID)
	if err != nil {
		slog.Error("failed to build broadcast view", "game_id", gameID, "error", err)
		return
	}
	hub.Broadcast(gameID, view)
}
