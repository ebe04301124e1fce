// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/potus-party/server/game"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/models"
	"github.com/potus-party/server/realtime"
	"github.com/potus-party/server/storage"
)

type PlayerHandler struct {
	store storage.Store
	svc   *game.Service
	hub   *realtime.Hub
}

func NewPlayerHandler(store storage.Store, svc *game.Service, hub *realtime.Hub) *PlayerHandler {
	return &PlayerHandler{store: store, svc: svc, hub: hub}
}

// UpdatePhoto handles PUT /api/players/{playerId}/photo
func (h *PlayerHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerId")
	if playerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player_id is required")
		return
	}

	var req models.UpdatePlayerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PhotoURL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "photo_url is required")
		return
	}

	player, err := h.store.SetPlayerPhoto(r.Context(), playerID, req.PhotoURL)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		slog.Error("failed to update photo", "player_id", playerID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update photo")
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, player.GameID)

	middleware.JSONResponse(w, http.StatusOK, player)
}
