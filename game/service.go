// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/potus-party/server/match"
	"github.com/potus-party/server/models"
	"github.com/potus-party/server/storage"
)

// Service is the round evaluation and scoring engine. It sequences the
// fuzzy judge, the round state machine, and the score ledger against the
// storage collaborator, serializing all operations per game.
type Service struct {
	store storage.Store
	pick  func(n int) int // tie-break picker, swappable in tests

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		pick:  rand.IntN,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockGame serializes engine operations for one game. Round transitions,
// batch judging, and score deltas all race without this.
func (s *Service) lockGame(gameID string) func() {
	s.mu.Lock()
	l, ok := s.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[gameID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// SubmitGuess records or replaces a player's guess for a round. Legal
// only while the round is open; resubmission overwrites the text of the
// existing guess, so there is never more than one per (player, round).
func (s *Service) SubmitGuess(ctx context.Context, gameID, playerID string, roundNumber int, text string) (*models.Guess, error) {
	defer s.lockGame(gameID)()

	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return nil, notFound(err)
	}

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, notFound(err)
	}
	if player.GameID != gameID {
		return nil, ErrNotFound
	}

	round, err := s.store.GetRound(ctx, gameID, roundNumber)
	if err != nil {
		return nil, notFound(err)
	}
	if round.Complete {
		return nil, ErrRoundClosed
	}

	return s.store.UpsertGuess(ctx, playerID, gameID, roundNumber, text)
}

// SubmitAnswer sets a round's correct answer, completes it, and judges
// every guess in one pass. Each matching guess is marked correct and its
// player's score incremented by one; a guess already marked correct is
// skipped, so judging can never double-count.
func (s *Service) SubmitAnswer(ctx context.Context, gameID string, roundNumber int, answer string) (*models.Round, error) {
	defer s.lockGame(gameID)()

	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return nil, notFound(err)
	}

	round, err := s.store.GetRound(ctx, gameID, roundNumber)
	if err != nil {
		return nil, notFound(err)
	}
	if round.Complete {
		return nil, ErrRoundAlreadyComplete
	}

	round, err = s.store.SetRoundAnswerAndComplete(ctx, gameID, roundNumber, answer)
	if err != nil {
		return nil, notFound(err)
	}

	guesses, err := s.store.ListGuesses(ctx, gameID, roundNumber)
	if err != nil {
		return nil, err
	}

	for _, g := range guesses {
		if g.IsCorrect || !match.IsMatch(answer, g.Guess) {
			continue
		}
		if _, err := s.store.SetGuessVerdict(ctx, g.ID, true); err != nil {
			return nil, err
		}
		if _, err := s.store.AdjustPlayerScore(ctx, g.PlayerID, 1); err != nil {
			return nil, err
		}
		slog.Info("guess judged correct",
			"game_id", gameID,
			"round", roundNumber,
			"player_id", g.PlayerID,
		)
	}

	return round, nil
}

// OverrideVerdict lets the admin correct a verdict after judging. Legal
// only once the round is complete. A player with no guess gets the
// placeholder guess synthesized first, so the admin can credit someone
// who never typed anything. The score moves only when the verdict
// actually changes, which makes repeated identical overrides no-ops.
func (s *Service) OverrideVerdict(ctx context.Context, gameID, playerID string, roundNumber int, isCorrect bool) (*models.Guess, error) {
	defer s.lockGame(gameID)()

	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return nil, notFound(err)
	}

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, notFound(err)
	}
	if player.GameID != gameID {
		return nil, ErrNotFound
	}

	round, err := s.store.GetRound(ctx, gameID, roundNumber)
	if err != nil {
		return nil, notFound(err)
	}
	if !round.Complete {
		return nil, ErrRoundNotComplete
	}

	guess, err := s.store.GetGuess(ctx, playerID, gameID, roundNumber)
	if errors.Is(err, storage.ErrNotFound) {
		guess, err = s.store.UpsertGuess(ctx, playerID, gameID, roundNumber, NoGuessPlaceholder)
	}
	if err != nil {
		return nil, err
	}

	if guess.IsCorrect == isCorrect {
		return guess, nil
	}

	guess, err = s.store.SetGuessVerdict(ctx, guess.ID, isCorrect)
	if err != nil {
		return nil, err
	}

	delta := -1
	if isCorrect {
		delta = 1
	}
	if _, err := s.store.AdjustPlayerScore(ctx, playerID, delta); err != nil {
		return nil, err
	}

	slog.Info("verdict overridden",
		"game_id", gameID,
		"round", roundNumber,
		"player_id", playerID,
		"is_correct", isCorrect,
	)

	return guess, nil
}

// AdvanceRound opens the next round and repoints the game's current
// round. Legal only when the current round is complete.
func (s *Service) AdvanceRound(ctx context.Context, gameID string) (*models.Round, error) {
	defer s.lockGame(gameID)()

	g, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, notFound(err)
	}

	current, err := s.store.GetRound(ctx, gameID, g.CurrentRound)
	if err != nil {
		return nil, notFound(err)
	}
	if !current.Complete {
		return nil, ErrRoundNotComplete
	}

	next, err := s.store.CreateRound(ctx, gameID, g.CurrentRound+1)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.SetGameCurrentRound(ctx, gameID, next.RoundNumber); err != nil {
		return nil, err
	}

	slog.Info("round advanced", "game_id", gameID, "round", next.RoundNumber)

	return next, nil
}

// Winners elects POTUS and Vice-POTUS from the game's current scores.
// With a tied top score the POTUS is picked at random among the tied
// players, so two invocations may crown different winners; callers that
// need a stable result call once and keep it.
func (s *Service) Winners(ctx context.Context, gameID string) (*models.Winners, error) {
	defer s.lockGame(gameID)()

	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return nil, notFound(err)
	}

	players, err := s.store.ListPlayersByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	w := electWinners(players, s.pick)
	return &w, nil
}

// FinishGame marks the game complete and resolves the final winners.
func (s *Service) FinishGame(ctx context.Context, gameID string) (*models.Winners, error) {
	if _, err := s.store.CompleteGame(ctx, gameID); err != nil {
		return nil, notFound(err)
	}
	return s.Winners(ctx, gameID)
}

// GameWithPlayers assembles the aggregate view clients poll: the game,
// its current round, and every player decorated with their current-round
// guess and title flags.
func (s *Service) GameWithPlayers(ctx context.Context, gameID string) (*models.GameWithPlayers, error) {
	defer s.lockGame(gameID)()

	g, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, notFound(err)
	}

	players, err := s.store.ListPlayersByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	current, err := s.store.GetRound(ctx, gameID, g.CurrentRound)
	if errors.Is(err, storage.ErrNotFound) {
		current = nil
	} else if err != nil {
		return nil, err
	}

	winners := electWinners(players, s.pick)

	view := &models.GameWithPlayers{
		Game:         *g,
		Players:      make([]models.PlayerWithGuess, 0, len(players)),
		CurrentRound: current,
	}

	for _, p := range players {
		pg := models.PlayerWithGuess{Player: p}

		guess, err := s.store.GetGuess(ctx, p.ID, gameID, g.CurrentRound)
		if err == nil {
			pg.CurrentGuess = guess
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		pg.IsPotus = winners.Potus != nil && winners.Potus.ID == p.ID
		for _, vp := range winners.VicePotuses {
			if vp.ID == p.ID {
				pg.IsVicePotus = true
				break
			}
		}

		view.Players = append(view.Players, pg)
	}

	return view, nil
}

// notFound translates the storage sentinel into the engine's taxonomy.
func notFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
