// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/potus-party/server/models"
)

// SQLStore is a Store over database/sql. The queries are written to run
// unchanged on both SQLite (modernc driver) and PostgreSQL (lib/pq):
// $N placeholders in strictly ascending order, no dialect-specific types.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Games

func (s *SQLStore) CreateGame(ctx context.Context, g *models.Game) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game (id, secret_word, admin_secret_word, current_round, is_complete)
		VALUES ($1, $2, $3, $4, $5)
	`, g.ID, g.SecretWord, g.AdminSecretWord, g.CurrentRound, g.IsComplete)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (s *SQLStore) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, secret_word, admin_secret_word, current_round, is_complete
		FROM game WHERE id = $1
	`, gameID)
	return scanGame(row)
}

func (s *SQLStore) GetGameByAdminSecretWord(ctx context.Context, secret string) (*models.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, secret_word, admin_secret_word, current_round, is_complete
		FROM game WHERE admin_secret_word = $1
	`, secret)
	return scanGame(row)
}

func (s *SQLStore) SetGameCurrentRound(ctx context.Context, gameID string, round int) (*models.Game, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE game SET current_round = $1 WHERE id = $2
	`, round, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to update game round: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetGame(ctx, gameID)
}

func (s *SQLStore) CompleteGame(ctx context.Context, gameID string) (*models.Game, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE game SET is_complete = $1 WHERE id = $2
	`, true, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete game: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetGame(ctx, gameID)
}

// Players

func (s *SQLStore) CreatePlayer(ctx context.Context, p *models.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO player (id, game_id, name, photo_url, score, secret_word)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.GameID, p.Name, p.PhotoURL, p.Score, p.SecretWord)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (s *SQLStore) GetPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, game_id, name, photo_url, score, secret_word
		FROM player WHERE id = $1
	`, playerID)
	return scanPlayer(row)
}

func (s *SQLStore) ListPlayersByGame(ctx context.Context, gameID string) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_id, name, photo_url, score, secret_word
		FROM player WHERE game_id = $1 ORDER BY name
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.GameID, &p.Name, &p.PhotoURL, &p.Score, &p.SecretWord); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *SQLStore) AdjustPlayerScore(ctx context.Context, playerID string, delta int) (*models.Player, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE player SET score = score + $1 WHERE id = $2
	`, delta, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust score: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, playerID)
}

func (s *SQLStore) SetPlayerPhoto(ctx context.Context, playerID, photoURL string) (*models.Player, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE player SET photo_url = $1 WHERE id = $2
	`, photoURL, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, playerID)
}

// Rounds

func (s *SQLStore) CreateRound(ctx context.Context, gameID string, roundNumber int) (*models.Round, error) {
	r := &models.Round{
		ID:          uuid.NewString(),
		GameID:      gameID,
		RoundNumber: roundNumber,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO round (id, game_id, round_number, complete)
		VALUES ($1, $2, $3, $4)
	`, r.ID, r.GameID, r.RoundNumber, false)
	if err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}
	return r, nil
}

func (s *SQLStore) GetRound(ctx context.Context, gameID string, roundNumber int) (*models.Round, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, game_id, round_number, correct_answer, complete
		FROM round WHERE game_id = $1 AND round_number = $2
	`, gameID, roundNumber)
	return scanRound(row)
}

func (s *SQLStore) SetRoundAnswerAndComplete(ctx context.Context, gameID string, roundNumber int, answer string) (*models.Round, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE round SET correct_answer = $1, complete = $2
		WHERE game_id = $3 AND round_number = $4
	`, answer, true, gameID, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to complete round: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetRound(ctx, gameID, roundNumber)
}

// Guesses

func (s *SQLStore) GetGuess(ctx context.Context, playerID, gameID string, roundNumber int) (*models.Guess, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, player_id, game_id, round_number, guess, is_correct
		FROM guess WHERE player_id = $1 AND game_id = $2 AND round_number = $3
	`, playerID, gameID, roundNumber)
	return scanGuess(row)
}

func (s *SQLStore) ListGuesses(ctx context.Context, gameID string, roundNumber int) ([]models.Guess, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player_id, game_id, round_number, guess, is_correct
		FROM guess WHERE game_id = $1 AND round_number = $2
	`, gameID, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list guesses: %w", err)
	}
	defer rows.Close()

	var guesses []models.Guess
	for rows.Next() {
		var g models.Guess
		if err := rows.Scan(&g.ID, &g.PlayerID, &g.GameID, &g.Round, &g.Guess, &g.IsCorrect); err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}

func (s *SQLStore) UpsertGuess(ctx context.Context, playerID, gameID string, roundNumber int, text string) (*models.Guess, error) {
	existing, err := s.GetGuess(ctx, playerID, gameID, roundNumber)
	if err == nil {
		_, err = s.db.ExecContext(ctx, `
			UPDATE guess SET guess = $1 WHERE id = $2
		`, text, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update guess: %w", err)
		}
		existing.Guess = text
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	g := &models.Guess{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		GameID:   gameID,
		Round:    roundNumber,
		Guess:    text,
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO guess (id, player_id, game_id, round_number, guess, is_correct)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, g.ID, g.PlayerID, g.GameID, g.Round, g.Guess, false)
	if err != nil {
		return nil, fmt.Errorf("failed to insert guess: %w", err)
	}
	return g, nil
}

func (s *SQLStore) SetGuessVerdict(ctx context.Context, guessID string, isCorrect bool) (*models.Guess, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE guess SET is_correct = $1 WHERE id = $2
	`, isCorrect, guessID)
	if err != nil {
		return nil, fmt.Errorf("failed to set verdict: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, player_id, game_id, round_number, guess, is_correct
		FROM guess WHERE id = $1
	`, guessID)
	return scanGuess(row)
}

// Scan helpers

func scanGame(row *sql.Row) (*models.Game, error) {
	var g models.Game
	err := row.Scan(&g.ID, &g.SecretWord, &g.AdminSecretWord, &g.CurrentRound, &g.IsComplete)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanPlayer(row *sql.Row) (*models.Player, error) {
	var p models.Player
	err := row.Scan(&p.ID, &p.GameID, &p.Name, &p.PhotoURL, &p.Score, &p.SecretWord)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanRound(row *sql.Row) (*models.Round, error) {
	var r models.Round
	err := row.Scan(&r.ID, &r.GameID, &r.RoundNumber, &r.CorrectAnswer, &r.Complete)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanGuess(row *sql.Row) (*models.Guess, error) {
	var g models.Guess
	err := row.Scan(&g.ID, &g.PlayerID, &g.GameID, &g.Round, &g.Guess, &g.IsCorrect)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
