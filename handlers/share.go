// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/potus-party/server/cliparse"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/storage"
)

type ShareHandler struct {
	store storage.Store
	cfg   cliparse.Config
}

func NewShareHandler(store storage.Store, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{store: store, cfg: cfg}
}

// QRCode handles GET /api/games/{gameId}/qr
// Returns a PNG the host can show on the call so players can scan to join.
func (h *ShareHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	if _, err := h.store.GetGame(r.Context(), gameID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
			return
		}
		slog.Error("failed to query game", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	joinURL := h.cfg.PublicURL + "/join/" + url.PathEscape(gameID)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to encode QR code", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Placeholder handles GET /api/placeholder/{name}
// Redirects to a generated initials avatar for players without a photo.
func (h *ShareHandler) Placeholder(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	target := "https://ui-avatars.com/api/?background=random&name=" + url.QueryEscape(name)
	http.Redirect(w, r, target, http.StatusFound)
}
