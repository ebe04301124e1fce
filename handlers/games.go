// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/potus-party/server/auth"
	"github.com/potus-party/server/cliparse"
	"github.com/potus-party/server/game"
	"github.com/potus-party/server/middleware"
	"github.com/potus-party/server/models"
	"github.com/potus-party/server/realtime"
	"github.com/potus-party/server/storage"
)

// maxGameIDAttempts bounds the retry loop when picking a free state name.
const maxGameIDAttempts = 100

type GameHandler struct {
	store storage.Store
	svc   *game.Service
	hub   *realtime.Hub
	cfg   cliparse.Config
}

func NewGameHandler(store storage.Store, svc *game.Service, hub *realtime.Hub, cfg cliparse.Config) *GameHandler {
	return &GameHandler{store: store, svc: svc, hub: hub, cfg: cfg}
}

// CreateGame handles POST /api/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	// Body is optional; hosts may request a specific game ID.
	var req models.CreateGameRequest
	_ = middleware.ParseJSONBody(r, &req)

	gameID, err := h.pickGameID(r, req.GameID)
	if err != nil {
		if errors.Is(err, errGameIDTaken) {
			middleware.ErrorResponse(w, http.StatusConflict, "Game ID is already in use")
			return
		}
		slog.Error("failed to pick game ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	secretWord, err := auth.GenerateSecretWord(false)
	if err != nil {
		slog.Error("failed to generate secret word", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}
	adminSecretWord, err := auth.GenerateSecretWord(true)
	if err != nil {
		slog.Error("failed to generate admin secret word", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	g := &models.Game{
		ID:              gameID,
		SecretWord:      secretWord,
		AdminSecretWord: adminSecretWord,
		CurrentRound:    1,
	}
	if err := h.store.CreateGame(r.Context(), g); err != nil {
		slog.Error("failed to insert game", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	// Every game starts with round 1 open.
	if _, err := h.store.CreateRound(r.Context(), gameID, 1); err != nil {
		slog.Error("failed to create first round", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	adminKey := auth.GenerateAdminKey(gameID, h.cfg.AdminKeySalt)

	slog.Info("game created", "game_id", gameID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateGameResponse{
		Game:     *g,
		AdminKey: adminKey,
	})
}

var errGameIDTaken = errors.New("game id taken")

func (h *GameHandler) pickGameID(r *http.Request, requested string) (string, error) {
	if requested != "" {
		_, err := h.store.GetGame(r.Context(), requested)
		if errors.Is(err, storage.ErrNotFound) {
			return strings.ToLower(requested), nil
		}
		if err != nil {
			return "", err
		}
		return "", errGameIDTaken
	}

	for i := 0; i < maxGameIDAttempts; i++ {
		id, err := auth.GenerateGameID()
		if err != nil {
			return "", err
		}
		_, err = h.store.GetGame(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("no free game ID after repeated attempts")
}

// GetGame handles GET /api/games/{gameId}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	view, err := h.svc.GameWithPlayers(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// JoinGame handles POST /api/games/join
func (h *GameHandler) JoinGame(w http.ResponseWriter, r *http.Request) {
	var req models.JoinGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PlayerName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player_name is required")
		return
	}
	if req.GameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	gameID := strings.ToLower(req.GameID)
	if _, err := h.store.GetGame(r.Context(), gameID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
			return
		}
		slog.Error("failed to query game", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	player, err := h.findOrCreatePlayer(r, gameID, req)
	if err != nil {
		slog.Error("failed to join game", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to join game")
		return
	}

	view, err := h.svc.GameWithPlayers(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	h.hub.Broadcast(gameID, view)

	slog.Info("player joined", "game_id", gameID, "player_id", player.ID, "name", player.Name)

	middleware.JSONResponse(w, http.StatusOK, models.JoinGameResponse{
		Player: *player,
		Game:   *view,
	})
}

// findOrCreatePlayer reuses an existing player on a case-insensitive name
// match so a disconnected player can rejoin and keep their score.
func (h *GameHandler) findOrCreatePlayer(r *http.Request, gameID string, req models.JoinGameRequest) (*models.Player, error) {
	players, err := h.store.ListPlayersByGame(r.Context(), gameID)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if strings.EqualFold(players[i].Name, req.PlayerName) {
			return &players[i], nil
		}
	}

	secretWord, err := auth.GenerateSecretWord(false)
	if err != nil {
		return nil, err
	}

	photoURL := req.PhotoURL
	if photoURL == "" {
		photoURL = models.DefaultPhotoPath + url.PathEscape(req.PlayerName)
	}

	p := &models.Player{
		ID:         uuid.NewString(),
		GameID:     gameID,
		Name:       req.PlayerName,
		PhotoURL:   photoURL,
		SecretWord: secretWord,
	}
	if err := h.store.CreatePlayer(r.Context(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// AdminLogin handles POST /api/admin/login
func (h *GameHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AdminSecretWord == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin_secret_word is required")
		return
	}

	g, err := h.store.GetGameByAdminSecretWord(r.Context(), req.AdminSecretWord)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin secret word")
			return
		}
		slog.Error("failed to query game by admin secret", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := h.svc.GameWithPlayers(r.Context(), g.ID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("admin logged in", "game_id", g.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Game:     *view,
		AdminKey: auth.GenerateAdminKey(g.ID, h.cfg.AdminKeySalt),
		IsAdmin:  true,
	})
}
