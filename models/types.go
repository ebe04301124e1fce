// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DefaultPhotoPath is the route prefix used for generated placeholder avatars.
const DefaultPhotoPath = "/api/placeholder/"

// Request types

type CreateGameRequest struct {
	// GameID lets a host request a specific game ID; normally left empty so
	// the server picks a free state name.
	GameID string `json:"game_id,omitempty"`
}

type JoinGameRequest struct {
	PlayerName string `json:"player_name"`
	GameID     string `json:"game_id"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

type AdminLoginRequest struct {
	AdminSecretWord string `json:"admin_secret_word"`
}

type SubmitGuessRequest struct {
	PlayerID string `json:"player_id"`
	Round    int    `json:"round"`
	Guess    string `json:"guess"`
}

type SubmitAnswerRequest struct {
	Round         int    `json:"round"`
	CorrectAnswer string `json:"correct_answer"`
}

type OverrideGuessRequest struct {
	PlayerID  string `json:"player_id"`
	Round     int    `json:"round"`
	IsCorrect bool   `json:"is_correct"`
}

type UpdatePlayerRequest struct {
	PhotoURL string `json:"photo_url"`
}

// Response types

type CreateGameResponse struct {
	Game     Game   `json:"game"`
	AdminKey string `json:"admin_key"`
}

type JoinGameResponse struct {
	Player Player          `json:"player"`
	Game   GameWithPlayers `json:"game"`
}

type AdminLoginResponse struct {
	Game     GameWithPlayers `json:"game"`
	AdminKey string          `json:"admin_key"`
	IsAdmin  bool            `json:"is_admin"`
}

// Domain types

type Game struct {
	ID              string `json:"id"`
	SecretWord      string `json:"secret_word"`
	AdminSecretWord string `json:"-"` // Never expose in JSON
	CurrentRound    int    `json:"current_round"`
	IsComplete      bool   `json:"is_complete"`
}

type Player struct {
	ID         string `json:"id"`
	GameID     string `json:"game_id"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photo_url"`
	Score      int    `json:"score"`
	SecretWord string `json:"-"` // Never expose in JSON
}

type Round struct {
	ID            string  `json:"id"`
	GameID        string  `json:"game_id"`
	RoundNumber   int     `json:"round_number"`
	CorrectAnswer *string `json:"correct_answer,omitempty"` // nil until the admin reveals it
	Complete      bool    `json:"complete"`
}

type Guess struct {
	ID        string `json:"id"`
	PlayerID  string `json:"player_id"`
	GameID    string `json:"game_id"`
	Round     int    `json:"round"`
	Guess     string `json:"guess"`
	IsCorrect bool   `json:"is_correct"`
}

// PlayerWithGuess decorates a player with their current-round guess and
// any title they hold.
type PlayerWithGuess struct {
	Player
	CurrentGuess *Guess `json:"current_guess,omitempty"`
	IsPotus      bool   `json:"is_potus"`
	IsVicePotus  bool   `json:"is_vice_potus"`
}

// GameWithPlayers is the aggregate view clients poll (and the websocket
// hub broadcasts) after every mutation.
type GameWithPlayers struct {
	Game
	Players      []PlayerWithGuess `json:"players"`
	CurrentRound *Round            `json:"round,omitempty"`
}

// Winners is the result of electing a POTUS and Vice-POTUS runners-up.
type Winners struct {
	Potus       *Player  `json:"potus"`
	VicePotuses []Player `json:"vice_potuses"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
