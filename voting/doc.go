// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the vote ledger and the selection engine.

# Vote Ledger

Ledger records one vote per (user, song) pair with toggle semantics:
casting a vote for a song the user already voted for retracts it.

	ledger := voting.NewLedger(db)
	action, err := ledger.CastOrRetract(userID, songID)

action is ActionAdded or ActionRemoved. Each user holds at most
MaxVotesPerUser (20) active votes; a cast past the cap fails with
ErrVoteLimitExceeded. The cap is enforced by a guarded INSERT inside a
transaction together with the (user_id, song_id) primary key, so two
concurrent casts cannot exceed it.

Read views:

	ids, err   := ledger.VotedSongIDs(userID)   // set of voted song ids
	songs, err := ledger.VotedSongs(userID)     // "my votes" view
	all, err   := ledger.AvailableSongs(userID) // full catalog + voted flag

ResetAll deletes every vote (administrative, idempotent).

# Selection Engine

Engine derives the two aggregate views:

	engine := voting.NewEngine(db)
	board, err := engine.Leaderboard()
	final, err := engine.FinalSelection(voting.SelectionSize)

Leaderboard returns the full catalog ordered by vote count descending,
zero-vote songs included, ties in catalog order. FinalSelection returns
the voted songs ranked by count, padded with uniformly random zero-vote
songs up to the target size. The random source is a swappable func so
tests can make the padding deterministic.

# Errors

ErrInvalidArgument for empty/invalid identifiers, ErrVoteLimitExceeded
for a cast past the cap. Store failures are wrapped and bubble up to the
HTTP boundary unmodified.
*/
package voting
