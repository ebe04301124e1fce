// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game implements the round evaluation and scoring engine.

# Round Lifecycle

A round is open until the admin submits the correct answer, which judges
every guess, applies score deltas, and completes the round in one
serialized operation:

	open ──SubmitAnswer──▶ complete

Guesses may only be submitted or replaced while the round is open;
verdicts may only be overridden once it is complete. A completed round
never reopens.

# Scoring

All score movement is delta-based: +1 when a guess is judged or
overridden to correct, −1 when an override revokes a correct verdict,
nothing otherwise. Judging skips guesses already marked correct and
overrides skip unchanged verdicts, so neither path can ever count the
same verdict twice.

# Winners

Winners elects a POTUS (highest score) and Vice-POTUS runners-up. A tie
at the top is broken uniformly at random; the picker is injectable so
tests stay deterministic.

# Errors

Rejections use sentinel errors (ErrNotFound, ErrRoundClosed,
ErrRoundAlreadyComplete, ErrRoundNotComplete) checked with errors.Is.
Every rejection happens before any mutation.

# Concurrency

Service serializes all operations per game with a keyed mutex. The
engine itself is synchronous; it suspends only at the storage boundary.
*/
package game
