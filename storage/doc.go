// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists games, players, rounds, and guesses.

Store is the interface the game engine consumes. Two implementations:

  - SQLStore: database/sql, portable across SQLite (modernc.org/sqlite)
    and PostgreSQL (lib/pq). The production store.
  - MemStore: mutex-guarded maps. Used by tests and throwaway deployments.

Lookups that miss return ErrNotFound, which callers compare with
errors.Is. Score changes are expressed as signed deltas through
AdjustPlayerScore so concurrent, serialized deltas commute; there is
deliberately no way to overwrite a score outright.

The engine serializes operations per game, so Store implementations do
not need cross-call transactional guarantees beyond single-statement
atomicity.
*/
package storage
