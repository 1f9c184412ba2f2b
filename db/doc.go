// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and catalog seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable across postgres (production) and sqlite (dev/test).

# Tables

The schema includes:

  - app_user: Registered accounts (username unique, hashed password)
  - song: The song catalog (incremental integer ids)
  - vote: One row per (user, song) endorsement
  - playlist: Playlist metadata, owned by a user
  - playlist_song: Ordered playlist contents
  - submission: Song submissions pending moderation

# Relationships

	playlist 1──* playlist_song
	app_user 1──* vote (by user_id)
	song     1──* vote (by song_id, soft reference)

The (user_id, song_id) primary key on vote guarantees at most one vote per
user per song; the application additionally caps each user at 20 active votes.

# Seeding

SeedSongs populates the catalog from a JSON file:

	n, err := db.SeedSongs(conn, "data/songs.json")

Songs already present (matched by name) are skipped.
*/
package db
