// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/potus-party/server/auth"
	"github.com/potus-party/server/cliparse"
	"github.com/potus-party/server/game"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/models"
	"github.com/potus-party/server/realtime"
	"github.com/potus-party/server/storage"
)

// AdminHandler serves the host-only game operations. Every endpoint
// requires a valid X-Admin-Key for the game in the path.
type AdminHandler struct {
	store storage.Store
	svc   *game.Service
	hub   *realtime.Hub
	cfg   cliparse.Config
}

func NewAdminHandler(store storage.Store, svc *game.Service, hub *realtime.Hub, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, svc: svc, hub: hub, cfg: cfg}
}

// authorize extracts the game ID and validates the admin key. Writes the
// error response itself and returns "" when the request must not proceed.
func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) string {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return ""
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(gameID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return ""
	}

	return gameID
}

// SubmitAnswer handles POST /api/games/{gameId}/answer
func (h *AdminHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	gameID := h.authorize(w, r)
	if gameID == "" {
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CorrectAnswer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "correct_answer is required")
		return
	}

	round := req.Round
	if round == 0 {
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

	result, err := h.svc.SubmitAnswer(r.Context(), gameID, round, req.CorrectAnswer)
	if err != nil {
		writeGameError(w, err)
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, gameID)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// OverrideGuess handles POST /api/games/{gameId}/override
func (h *AdminHandler) OverrideGuess(w http.ResponseWriter, r *http.Request) {
	gameID := h.authorize(w, r)
	if gameID == "" {
		return
	}

	var req models.OverrideGuessRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player_id is required")
		return
	}
	if req.Round < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round is required")
		return
	}

	guess, err := h.svc.OverrideVerdict(r.Context(), gameID, req.PlayerID, req.Round, req.IsCorrect)
	if err != nil {
		writeGameError(w, err)
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, gameID)

	slog.Info("verdict overridden",
		"game_id", gameID,
		"player_id", req.PlayerID,
		"round", req.Round,
		"is_correct", req.IsCorrect,
	)

	middleware.JSONResponse(w, http.StatusOK, guess)
}

// NextRound handles POST /api/games/{gameId}/nextRound
func (h *AdminHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	gameID := h.authorize(w, r)
	if gameID == "" {
		return
	}

	round, err := h.svc.AdvanceRound(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, gameID)

	middleware.JSONResponse(w, http.StatusOK, round)
}

// Winners handles GET /api/games/{gameId}/winners
// Ends the game: marks it complete and elects POTUS and Vice-POTUS.
func (h *AdminHandler) Winners(w http.ResponseWriter, r *http.Request) {
	gameID := h.authorize(w, r)
	if gameID == "" {
		return
	}

	winners, err := h.svc.FinishGame(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	broadcastGame(r.Context(), h.svc, h.hub, gameID)

	slog.Info("game finished", "game_id", gameID)

	middleware.JSONResponse(w, http.StatusOK, winners)
}
