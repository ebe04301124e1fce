// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "errors"

// Every rejection is a precondition violation detected before any
// mutation, so a failed operation leaves no partial state. Handlers map
// these to stable HTTP statuses.
var (
	// ErrNotFound: referenced game, player, round, or guess does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRoundClosed: guess submitted against a completed round.
	ErrRoundClosed = errors.New("round is closed to guesses")

	// ErrRoundAlreadyComplete: answer submitted twice; the first answer stands.
	ErrRoundAlreadyComplete = errors.New("round already has an answer")

	// ErrRoundNotComplete: override or round advance attempted while the
	// round is still open.
	ErrRoundNotComplete = errors.New("round is not complete")
)

// NoGuessPlaceholder is the guess text synthesized when an admin credits
// a player who never submitted anything.
const NoGuessPlaceholder = "(No guess submitted)"
