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

type GuessHandler struct {
	store storage.Store
	svc   *game.Service
	hub   *realtime.Hub
}

func NewGuessHandler(store storage.Store, svc *game.Service, hub *realtime.Hub) *GuessHandler {
	return &GuessHandler{store: store, svc: svc, hub: hub}
}

// SubmitGuess handles POST /api/games/{gameId}/guess
func (h *GuessHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	var req models.SubmitGuessRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player_id is required")
		return
	}
	if req.Guess == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "guess is required")
		return
	}

	round := req.Round
	if round == 0 {
		// Default to the game's current round.
		g, err := h.store.GetGame(r.Context(), gameID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
				return
			}
			slog.Error("failed to query game", "game_id", gameID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		round = g.CurrentRound
	}

	guess, err := h.svc.SubmitGuess(r.Context(), gameID, req.PlayerID, round, req.Guess)
	if err != nil {
		writeGameError(w, err)
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, gameID)

	middleware.JSONResponse(w, http.StatusOK, guess)
}
