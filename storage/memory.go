// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/potus-party/server/models"
)

// MemStore is an in-memory Store. It backs tests and single-process
// deployments that don't need durability.
type MemStore struct {
	mu      sync.RWMutex
	games   map[string]*models.Game
	players map[string]*models.Player
	rounds  []*models.Round
	guesses []*models.Guess
}

func NewMemStore() *MemStore {
	return &MemStore{
		games:   make(map[string]*models.Game),
		players: make(map[string]*models.Player),
	}
}

// Games

func (s *MemStore) CreateGame(_ context.Context, g *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *g
	s.games[g.ID] = &cp
	return nil
}

func (s *MemStore) GetGame(_ context.Context, gameID string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *MemStore) GetGameByAdminSecretWord(_ context.Context, secret string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.AdminSecretWord == secret {
			cp := *g
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) SetGameCurrentRound(_ context.Context, gameID string, round int) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	g.CurrentRound = round
	cp := *g
	return &cp, nil
}

func (s *MemStore) CompleteGame(_ context.Context, gameID string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	g.IsComplete = true
	cp := *g
	return &cp, nil
}

// Players

func (s *MemStore) CreatePlayer(_ context.Context, p *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.players[p.ID] = &cp
	return nil
}

func (s *MemStore) GetPlayer(_ context.Context, playerID string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemStore) ListPlayersByGame(_ context.Context, gameID string) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var players []models.Player
	for _, p := range s.players {
		if p.GameID == gameID {
			players = append(players, *p)
		}
	}
	// Stable order for callers that render lists.
	sortPlayersByName(players)
	return players, nil
}

func (s *MemStore) AdjustPlayerScore(_ context.Context, playerID string, delta int) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	if delta != 0 {
		p.Score += delta
	}
	cp := *p
	return &cp, nil
}

func (s *MemStore) SetPlayerPhoto(_ context.Context, playerID, photoURL string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	p.PhotoURL = photoURL
	cp := *p
	return &cp, nil
}

// Rounds

func (s *MemStore) CreateRound(_ context.Context, gameID string, roundNumber int) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &models.Round{
		ID:          uuid.NewString(),
		GameID:      gameID,
		RoundNumber: roundNumber,
	}
	s.rounds = append(s.rounds, r)
	cp := *r
	return &cp, nil
}

func (s *MemStore) GetRound(_ context.Context, gameID string, roundNumber int) (*models.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.findRound(gameID, roundNumber)
	if r == nil {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemStore) SetRoundAnswerAndComplete(_ context.Context, gameID string, roundNumber int, answer string) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.findRound(gameID, roundNumber)
	if r == nil {
		return nil, ErrNotFound
	}
	r.CorrectAnswer = &answer
	r.Complete = true
	cp := *r
	return &cp, nil
}

func (s *MemStore) findRound(gameID string, roundNumber int) *models.Round {
	for _, r := range s.rounds {
		if r.GameID == gameID && r.RoundNumber == roundNumber {
			return r
		}
	}
	return nil
}

// Guesses

func (s *MemStore) GetGuess(_ context.Context, playerID, gameID string, roundNumber int) (*models.Guess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := s.findGuess(playerID, gameID, roundNumber)
	if g == nil {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *MemStore) ListGuesses(_ context.Context, gameID string, roundNumber int) ([]models.Guess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var guesses []models.Guess
	for _, g := range s.guesses {
		if g.GameID == gameID && g.Round == roundNumber {
			guesses = append(guesses, *g)
		}
	}
	return guesses, nil
}

func (s *MemStore) UpsertGuess(_ context.Context, playerID, gameID string, roundNumber int, text string) (*models.Guess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g := s.findGuess(playerID, gameID, roundNumber); g != nil {
		g.Guess = text
		cp := *g
		return &cp, nil
	}

	g := &models.Guess{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		GameID:   gameID,
		Round:    roundNumber,
		Guess:    text,
	}
	s.guesses = append(s.guesses, g)
	cp := *g
	return &cp, nil
}

func (s *MemStore) SetGuessVerdict(_ context.Context, guessID string, isCorrect bool) (*models.Guess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.guesses {
		if g.ID == guessID {
			g.IsCorrect = isCorrect
			cp := *g
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) findGuess(playerID, gameID string, roundNumber int) *models.Guess {
	for _, g := range s.guesses {
		if g.PlayerID == playerID && g.GameID == gameID && g.Round == roundNumber {
			return g
		}
	}
	return nil
}

func sortPlayersByName(players []models.Player) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
}
