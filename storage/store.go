// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"

	"github.com/potus-party/server/models"
)

// ErrNotFound is returned when a referenced game, player, round, or guess
// does not exist. It is never retried internally; callers surface it.
var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator the game engine runs against.
// Implementations must keep at most one guess per (player, round) and
// apply score changes as signed deltas, never overwrites.
type Store interface {
	// Games
	CreateGame(ctx context.Context, g *models.Game) error
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	GetGameByAdminSecretWord(ctx context.Context, secret string) (*models.Game, error)
	SetGameCurrentRound(ctx context.Context, gameID string, round int) (*models.Game, error)
	CompleteGame(ctx context.Context, gameID string) (*models.Game, error)

	// Players
	CreatePlayer(ctx context.Context, p *models.Player) error
	GetPlayer(ctx context.Context, playerID string) (*models.Player, error)
	ListPlayersByGame(ctx context.Context, gameID string) ([]models.Player, error)
	AdjustPlayerScore(ctx context.Context, playerID string, delta int) (*models.Player, error)
	SetPlayerPhoto(ctx context.Context, playerID, photoURL string) (*models.Player, error)

	// Rounds
	CreateRound(ctx context.Context, gameID string, roundNumber int) (*models.Round, error)
	GetRound(ctx context.Context, gameID string, roundNumber int) (*models.Round, error)
	SetRoundAnswerAndComplete(ctx context.Context, gameID string, roundNumber int, answer string) (*models.Round, error)

	// Guesses
	GetGuess(ctx context.Context, playerID, gameID string, roundNumber int) (*models.Guess, error)
	ListGuesses(ctx context.Context, gameID string, roundNumber int) ([]models.Guess, error)
	UpsertGuess(ctx context.Context, playerID, gameID string, roundNumber int, text string) (*models.Guess, error)
	SetGuessVerdict(ctx context.Context, guessID string, isCorrect bool) (*models.Guess, error)
}
