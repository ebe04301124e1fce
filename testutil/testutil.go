// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/potus-party/server/auth"
	"github.com/potus-party/server/cliparse"
	"github.com/potus-party/server/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection to :memory: would see a different, empty
	// database. Keep everything on one.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		PublicURL:    "http://localhost:3318",
	}
}

// CreateTestGame inserts a game in round 1 and returns its ID and admin key.
func CreateTestGame(t *testing.T, conn *sql.DB, cfg cliparse.Config) (gameID, adminKey string) {
	t.Helper()

	gameID = "vermont"
	adminKey = auth.GenerateAdminKey(gameID, cfg.AdminKeySalt)

	_, err := conn.Exec(`
		INSERT INTO game (id, secret_word, admin_secret_word, current_round, is_complete)
		VALUES ($1, 'liberty-0001', 'democracy-0001', 1, $2)
	`, gameID, false)
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO round (id, game_id, round_number, complete)
		VALUES ($1, $2, 1, $3)
	`, mustID(t), gameID, false)
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	return gameID, adminKey
}

// CreateTestPlayer adds a player to a game and returns the player ID.
func CreateTestPlayer(t *testing.T, conn *sql.DB, gameID, name string) string {
	t.Helper()

	playerID := mustID(t)
	_, err := conn.Exec(`
		INSERT INTO player (id, game_id, name, photo_url, score, secret_word)
		VALUES ($1, $2, $3, $4, 0, $5)
	`, playerID, gameID, name, "/api/placeholder/"+name, "liberty-"+playerID[:4])
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	return playerID
}

// CreateTestRound inserts a round for the game and returns the round ID.
func CreateTestRound(t *testing.T, conn *sql.DB, gameID string, roundNumber int, complete bool) string {
	t.Helper()

	roundID := mustID(t)
	_, err := conn.Exec(`
		INSERT INTO round (id, game_id, round_number, complete)
		VALUES ($1, $2, $3, $4)
	`, roundID, gameID, roundNumber, complete)
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	return roundID
}

// SubmitTestGuess inserts a guess for a player and returns the guess ID.
func SubmitTestGuess(t *testing.T, conn *sql.DB, gameID, playerID string, round int, guess string) string {
	t.Helper()

	guessID := mustID(t)
	_, err := conn.Exec(`
		INSERT INTO guess (id, player_id, game_id, round_number, guess, is_correct)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, guessID, playerID, gameID, round, guess, false)
	if err != nil {
		t.Fatalf("Failed to create test guess: %v", err)
	}

	return guessID
}

func mustID(t *testing.T) string {
	t.Helper()
	id, err := auth.GenerateID(16)
	if err != nil {
		t.Fatalf("Failed to generate ID: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
