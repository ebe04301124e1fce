// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/potus-party/server/db"
	"github.com/potus-party/server/models"
)

// Both implementations must satisfy the same contract, so every test
// runs against each of them.
func stores(t *testing.T) map[string]Store {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return map[string]Store{
		"sql":    NewSQLStore(conn),
		"memory": NewMemStore(),
	}
}

func seedGame(t *testing.T, s Store, gameID string) {
	t.Helper()
	err := s.CreateGame(context.Background(), &models.Game{
		ID:              gameID,
		SecretWord:      "liberty-0001",
		AdminSecretWord: "democracy-" + gameID,
		CurrentRound:    1,
	})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
}

func seedPlayer(t *testing.T, s Store, gameID, playerID, name string) {
	t.Helper()
	err := s.CreatePlayer(context.Background(), &models.Player{
		ID:       playerID,
		GameID:   gameID,
		Name:     name,
		PhotoURL: "/api/placeholder/" + name,
	})
	if err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
}

func TestGameRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seedGame(t, s, "vermont")

			g, err := s.GetGame(ctx, "vermont")
			if err != nil {
				t.Fatalf("GetGame failed: %v", err)
			}
			if g.SecretWord != "liberty-0001" || g.CurrentRound != 1 || g.IsComplete {
				t.Errorf("Round-tripped game differs: %+v", g)
			}

			if _, err := s.GetGame(ctx, "atlantis"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}

			byAdmin, err := s.GetGameByAdminSecretWord(ctx, "democracy-vermont")
			if err != nil {
				t.Fatalf("GetGameByAdminSecretWord failed: %v", err)
			}
			if byAdmin.ID != "vermont" {
				t.Errorf("Wrong game by admin secret: %s", byAdmin.ID)
			}
			if _, err := s.GetGameByAdminSecretWord(ctx, "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}

			updated, err := s.SetGameCurrentRound(ctx, "vermont", 3)
			if err != nil {
				t.Fatalf("SetGameCurrentRound failed: %v", err)
			}
			if updated.CurrentRound != 3 {
				t.Errorf("CurrentRound = %d, want 3", updated.CurrentRound)
			}

			done, err := s.CompleteGame(ctx, "vermont")
			if err != nil {
				t.Fatalf("CompleteGame failed: %v", err)
			}
			if !done.IsComplete {
				t.Error("Game should be complete")
			}
		})
	}
}

func TestPlayerRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seedGame(t, s, "vermont")
			seedPlayer(t, s, "vermont", "p1", "Bob")
			seedPlayer(t, s, "vermont", "p2", "Alice")

			players, err := s.ListPlayersByGame(ctx, "vermont")
			if err != nil {
				t.Fatalf("ListPlayersByGame failed: %v", err)
			}
			if len(players) != 2 {
				t.Fatalf("Expected 2 players, got %d", len(players))
			}
			// Name order for stable rendering.
			if players[0].Name != "Alice" || players[1].Name != "Bob" {
				t.Errorf("Players not sorted by name: %v, %v", players[0].Name, players[1].Name)
			}

			p, err := s.AdjustPlayerScore(ctx, "p1", 1)
			if err != nil {
				t.Fatalf("AdjustPlayerScore failed: %v", err)
			}
			if p.Score != 1 {
				t.Errorf("Score = %d, want 1", p.Score)
			}
			p, err = s.AdjustPlayerScore(ctx, "p1", -1)
			if err != nil {
				t.Fatalf("AdjustPlayerScore failed: %v", err)
			}
			if p.Score != 0 {
				t.Errorf("Score = %d, want 0", p.Score)
			}

			if _, err := s.AdjustPlayerScore(ctx, "missing", 1); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}

			p, err = s.SetPlayerPhoto(ctx, "p2", "https://example.com/alice.png")
			if err != nil {
				t.Fatalf("SetPlayerPhoto failed: %v", err)
			}
			if p.PhotoURL != "https://example.com/alice.png" {
				t.Errorf("PhotoURL not updated: %s", p.PhotoURL)
			}
		})
	}
}

func TestRoundRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seedGame(t, s, "vermont")

			r, err := s.CreateRound(ctx, "vermont", 1)
			if err != nil {
				t.Fatalf("CreateRound failed: %v", err)
			}
			if r.Complete || r.CorrectAnswer != nil {
				t.Errorf("New round should be open with no answer: %+v", r)
			}

			got, err := s.GetRound(ctx, "vermont", 1)
			if err != nil {
				t.Fatalf("GetRound failed: %v", err)
			}
			if got.ID != r.ID {
				t.Errorf("Round ID mismatch: %s vs %s", got.ID, r.ID)
			}

			if _, err := s.GetRound(ctx, "vermont", 9); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}

			done, err := s.SetRoundAnswerAndComplete(ctx, "vermont", 1, "apple")
			if err != nil {
				t.Fatalf("SetRoundAnswerAndComplete failed: %v", err)
			}
			if !done.Complete || done.CorrectAnswer == nil || *done.CorrectAnswer != "apple" {
				t.Errorf("Round not completed with answer: %+v", done)
			}
		})
	}
}

func TestGuessUpsert(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seedGame(t, s, "vermont")
			seedPlayer(t, s, "vermont", "p1", "Alice")
			if _, err := s.CreateRound(ctx, "vermont", 1); err != nil {
				t.Fatalf("CreateRound failed: %v", err)
			}

			first, err := s.UpsertGuess(ctx, "p1", "vermont", 1, "apple")
			if err != nil {
				t.Fatalf("UpsertGuess failed: %v", err)
			}
			if first.Guess != "apple" || first.IsCorrect {
				t.Errorf("Unexpected guess: %+v", first)
			}

			second, err := s.UpsertGuess(ctx, "p1", "vermont", 1, "banana")
			if err != nil {
				t.Fatalf("Upsert update failed: %v", err)
			}
			if second.ID != first.ID {
				t.Errorf("Upsert created a new row: %s vs %s", second.ID, first.ID)
			}
			if second.Guess != "banana" {
				t.Errorf("Guess text not replaced: %s", second.Guess)
			}

			all, err := s.ListGuesses(ctx, "vermont", 1)
			if err != nil {
				t.Fatalf("ListGuesses failed: %v", err)
			}
			if len(all) != 1 {
				t.Errorf("Expected 1 guess, got %d", len(all))
			}

			verdict, err := s.SetGuessVerdict(ctx, first.ID, true)
			if err != nil {
				t.Fatalf("SetGuessVerdict failed: %v", err)
			}
			if !verdict.IsCorrect {
				t.Error("Verdict not applied")
			}

			got, err := s.GetGuess(ctx, "p1", "vermont", 1)
			if err != nil {
				t.Fatalf("GetGuess failed: %v", err)
			}
			if !got.IsCorrect {
				t.Error("Verdict not persisted")
			}

			if _, err := s.GetGuess(ctx, "p2", "vermont", 1); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
			if _, err := s.SetGuessVerdict(ctx, "missing", true); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}
