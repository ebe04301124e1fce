// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// stateNames are the candidate game IDs. A game ID is a lowercase
// state name; callers retry on collision.
var stateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"newhampshire", "newjersey", "newmexico", "newyork", "northcarolina",
	"northdakota", "ohio", "oklahoma", "oregon", "pennsylvania",
	"rhodeisland", "southcarolina", "southdakota", "tennessee", "texas",
	"utah", "vermont", "virginia", "washington", "westvirginia",
	"wisconsin", "wyoming",
}

var playerWords = []string{
	"freedom", "liberty", "justice", "equality", "independence", "unity",
}

var adminWords = []string{
	"constitution", "democracy", "administration", "government",
	"presidential", "executive",
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateGameID picks a random state name to serve as a game ID.
// Uniqueness is the caller's problem: check the store and retry.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(stateNames))))
	if err != nil {
		return "", fmt.Errorf("failed to pick game ID: %w", err)
	}
	return stateNames[n.Int64()], nil
}

// GenerateSecretWord builds a themed secret word with a random hex
// suffix, e.g. "liberty-3f2a". Admin words come from a separate list so
// a player word can never collide with an admin word.
func GenerateSecretWord(admin bool) (string, error) {
	words := playerWords
	if admin {
		words = adminWords
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", fmt.Errorf("failed to pick secret word: %w", err)
	}
	suffix, err := GenerateID(2)
	if err != nil {
		return "", err
	}
	return words[n.Int64()] + "-" + suffix, nil
}

// GenerateAdminKey creates an HMAC-based admin key for a game
// This is deterministic and verifiable
func GenerateAdminKey(gameID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(gameID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the game
func ValidateAdminKey(gameID, adminKey, salt string) error {
	expected := GenerateAdminKey(gameID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
