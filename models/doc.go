// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateGameRequest: optional game_id
  - JoinGameRequest: player_name, game_id, photo_url
  - AdminLoginRequest: admin_secret_word
  - SubmitGuessRequest: player_id, round, guess
  - SubmitAnswerRequest: round, correct_answer
  - OverrideGuessRequest: player_id, round, is_correct

# Response Types

Types for JSON responses:

  - CreateGameResponse: game, admin_key
  - JoinGameResponse: player, game
  - AdminLoginResponse: game, admin_key, is_admin
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Game: game identity, join/admin secrets, current round pointer
  - Player: display name, photo, running score
  - Round: one question/answer cycle; correct_answer is nil while open
  - Guess: one player's text for one round plus its verdict
  - PlayerWithGuess / GameWithPlayers: aggregate view for clients
  - Winners: elected POTUS and Vice-POTUS runners-up

Secrets (Game.AdminSecretWord, Player.SecretWord) are never serialized.
*/
package models
